package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhoffmann/masterblog/internal/model"
)

func TestFileBackendLoad(t *testing.T) {
	t.Run("Missing file is an empty collection", func(t *testing.T) {
		backend := NewFileBackend(filepath.Join(t.TempDir(), "missing.json"))

		posts, err := backend.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(posts) != 0 {
			t.Errorf("Expected empty collection, got %+v", posts)
		}
	})

	t.Run("Malformed file is an empty collection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		backend := NewFileBackend(path)
		posts, err := backend.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(posts) != 0 {
			t.Errorf("Expected empty collection, got %+v", posts)
		}
	})
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "posts.json")
	backend := NewFileBackend(path)

	want := []model.Post{
		{ID: 1, Title: "First post", Content: "This is the first post."},
		{ID: 2, Title: "Second post", Content: "This is the second post."},
	}

	if err := backend.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh backend must read back the identical collection.
	got, err := NewFileBackend(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d posts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Post %d mismatch: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	t.Run("Pretty-printed output", func(t *testing.T) {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !strings.Contains(string(data), "\n    ") {
			t.Errorf("Expected indented JSON, got: %s", data)
		}
	})

	t.Run("Save rewrites the whole file", func(t *testing.T) {
		if err := backend.Save([]model.Post{}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		posts, err := backend.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(posts) != 0 {
			t.Errorf("Expected empty collection after rewrite, got %+v", posts)
		}
	})
}

func TestFileBackendWithStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")

	s, err := New(NewFileBackend(path))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if _, err := s.Create("Third", "Body"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// A second store over the same file sees the persisted state.
	reloaded, err := New(NewFileBackend(path))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	posts := reloaded.All()
	if len(posts) != 2 || posts[0].ID != 2 || posts[1].ID != 3 {
		t.Errorf("Unexpected persisted posts: %+v", posts)
	}
}
