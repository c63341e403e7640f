// Package db defines the key-value store contract used to fetch and seed
// catalog snapshots. Consumers depend on the narrow sub-interfaces.
package db

import (
	"context"
	"time"
)

// Store is the database facade.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
