package store

import "github.com/jhoffmann/masterblog/internal/model"

// MemoryBackend keeps the collection in process memory only. Everything is
// lost on restart, which is the intended behavior of the in-memory variant.
type MemoryBackend struct{}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() ([]model.Post, error) {
	return []model.Post{}, nil
}

func (b *MemoryBackend) Save(posts []model.Post) error {
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
