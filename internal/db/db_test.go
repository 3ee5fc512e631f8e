package db

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSQLiteInitAndQueries(t *testing.T) {
	SetLogger(zerolog.Nop())

	database := NewSQLite(":memory:")
	if err := database.InitDB(); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec(
		`INSERT INTO posts (id, position, title, content) VALUES (?, ?, ?, ?)`,
		1, 0, "First post", []byte("body"),
	); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	rows, err := database.Query(`SELECT id, title FROM posts`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	if !rows.Next() {
		t.Fatal("Expected one row")
	}
	var id int
	var title string
	if err := rows.Scan(&id, &title); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if id != 1 || title != "First post" {
		t.Errorf("Unexpected row: id=%d title=%q", id, title)
	}
}

func TestInitDBFailure(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	// A database file in a directory that does not exist cannot be opened,
	// so schema creation fails.
	database := NewSQLite(filepath.Join(t.TempDir(), "missing-dir", "blog.db"))
	if err := database.InitDB(); err == nil {
		database.Close()
		t.Fatal("Expected InitDB to fail")
	}

	if strings.Contains(buf.String(), "Database initialized") {
		t.Errorf("Success logged despite failed initialization: %s", buf.String())
	}
}

func TestInitDBIsIdempotent(t *testing.T) {
	SetLogger(zerolog.Nop())

	database := NewSQLite(":memory:")
	if err := database.InitDB(); err != nil {
		t.Fatalf("First InitDB failed: %v", err)
	}
	defer database.Close()

	// CREATE TABLE IF NOT EXISTS must tolerate a second run.
	second := NewSQLite(":memory:")
	if err := second.InitDB(); err != nil {
		t.Fatalf("Second InitDB failed: %v", err)
	}
	second.Close()
}
