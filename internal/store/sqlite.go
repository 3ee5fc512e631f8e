package store

import (
	"fmt"

	"github.com/jhoffmann/masterblog/internal/db"
	"github.com/jhoffmann/masterblog/internal/model"
	"github.com/jhoffmann/masterblog/internal/util/compression"
)

// SQLiteBackend stores the collection in a posts table, content compressed.
// Save rewrites the whole table in one transaction so the backend keeps the
// same whole-collection contract as the file variant.
type SQLiteBackend struct {
	db         db.DB
	compressor compression.Compressor
}

func NewSQLiteBackend(database db.DB) *SQLiteBackend {
	return &SQLiteBackend{
		db:         database,
		compressor: compression.ZstdCompressor{},
	}
}

func (b *SQLiteBackend) Load() ([]model.Post, error) {
	rows, err := b.db.Query(`SELECT id, title, content FROM posts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var post model.Post
		var compressed []byte

		if err := rows.Scan(&post.ID, &post.Title, &compressed); err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}

		content, err := b.compressor.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("error decompressing content: %w", err)
		}
		post.Content = string(content)

		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (b *SQLiteBackend) Save(posts []model.Post) error {
	tx, err := b.db.Get().Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM posts`); err != nil {
		tx.Rollback()
		return fmt.Errorf("error clearing posts: %w", err)
	}

	for i, post := range posts {
		compressed, err := b.compressor.Compress([]byte(post.Content))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error compressing content: %w", err)
		}

		if _, err := tx.Exec(
			`INSERT INTO posts (id, position, title, content) VALUES (?, ?, ?, ?)`,
			post.ID, i, post.Title, compressed,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("error saving post %d: %w", post.ID, err)
		}
	}

	return tx.Commit()
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
