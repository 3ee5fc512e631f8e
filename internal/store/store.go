// Package store owns the ordered post collection and its CRUD, sort,
// pagination and search semantics. Persistence is delegated to a Backend
// that loads and saves the whole collection at once.
package store

import (
	"github.com/rs/zerolog"

	"github.com/jhoffmann/masterblog/internal/model"
)

// Backend persists the post collection. The contract is deliberately
// whole-collection: Load returns everything, Save rewrites everything.
type Backend interface {
	Load() ([]model.Post, error)
	Save(posts []model.Post) error
	Close() error
}

var storeLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	storeLogger = l
}
