package store

import (
	"fmt"
	"os"

	"github.com/jhoffmann/masterblog/internal/config"
	"github.com/jhoffmann/masterblog/internal/db"
)

// Backend names accepted in the configuration.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
)

// OpenBackend builds the named storage backend from the configuration.
// S3 credentials come from the environment, not the config file.
func OpenBackend(cfg *config.Config, name string) (Backend, error) {
	switch name {
	case BackendMemory:
		return NewMemoryBackend(), nil
	case BackendFile:
		return NewFileBackend(cfg.Storage.File.Path), nil
	case BackendSQLite:
		database := db.NewSQLite(cfg.Storage.SQLite.Path)
		if err := database.InitDB(); err != nil {
			return nil, err
		}
		return NewSQLiteBackend(database), nil
	case BackendS3:
		return NewS3Backend(
			os.Getenv("S3_ACCESS_KEY_ID"),
			os.Getenv("S3_SECRET_ACCESS_KEY"),
			cfg.Storage.S3.Region,
			cfg.Storage.S3.Endpoint,
			cfg.Storage.S3.Bucket,
			cfg.Storage.S3.Key,
		)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", name)
	}
}
