package storage

import (
	"context"
	"fmt"
	"io"

	"castingfy/internal/config"
)

// Storage persists uploaded media and returns a public URL for each
// object. Keys are relative paths like "gallery/<user>/<uuid>.jpg".
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New builds the storage backend selected in config.
func New(ctx context.Context) (Storage, error) {
	cfg := config.GetConfig()

	switch cfg.Storage.Type {
	case "s3":
		return NewS3Storage(ctx)
	case "local", "":
		return NewLocalStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}
