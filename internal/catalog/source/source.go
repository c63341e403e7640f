// Package source provides catalog snapshot sources. A snapshot is a JSON
// array of medication records fetched once at startup.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/medcloud/rxdex/internal/db"
)

// Source fetches a raw catalog snapshot.
type Source interface {
	// Fetch returns the snapshot bytes. Called once at startup.
	Fetch(ctx context.Context) ([]byte, error)
	// Name describes the source for logs and error messages.
	Name() string
}

// File reads the snapshot from a local JSON file.
type File struct {
	path string
}

// NewFile creates a file source.
func NewFile(path string) *File {
	return &File{path: path}
}

// Fetch reads the snapshot file.
func (f *File) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(f.path))
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", f.path, err)
	}
	return data, nil
}

// Name returns the source description.
func (f *File) Name() string { return "file:" + f.path }

// Redis reads the snapshot from a single Redis key, seeded out of band
// (see cmd/rxdex-load).
type Redis struct {
	kv  db.KVStore
	key string
}

// NewRedis creates a Redis source.
func NewRedis(kv db.KVStore, key string) *Redis {
	return &Redis{kv: kv, key: key}
}

// Fetch reads the snapshot key.
func (r *Redis) Fetch(ctx context.Context) ([]byte, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read catalog key %s: %w", r.key, err)
	}
	return data, nil
}

// Name returns the source description.
func (r *Redis) Name() string { return "redis:" + r.key }
