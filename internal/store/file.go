package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoffmann/masterblog/internal/model"
)

// FileBackend persists the collection as a single pretty-printed JSON array,
// rewritten wholesale on every save. A missing file is an empty collection;
// so is a malformed one, after a logged warning.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load() ([]model.Post, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			storeLogger.Warn().Err(err).Str("path", b.path).Msg("Error reading storage file, starting empty")
		}
		return []model.Post{}, nil
	}

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		storeLogger.Warn().Err(err).Str("path", b.path).Msg("Malformed storage file, starting empty")
		return []model.Post{}, nil
	}

	return posts, nil
}

func (b *FileBackend) Save(posts []model.Post) error {
	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(b.path, data, 0o644)
}

func (b *FileBackend) Close() error {
	return nil
}
