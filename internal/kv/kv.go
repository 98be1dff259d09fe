// Package kv provides the durable keyspace that backs every collection.
// Values are UTF-8 JSON text; one key per collection. The keyspace has no
// transactions: concurrent read-modify-write cycles from separate processes
// can lose updates, and callers own that trade-off.
package kv

import (
	"context"
	"fmt"
)

// Driver identifies a concrete keyspace implementation.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory only (tests / ephemeral)
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file (default)
	DriverPostgres Driver = "postgres" // PostgreSQL server
)

// Keyspace is the minimal durable store abstraction used by higher layers.
// Get reports presence explicitly so an absent key is distinguishable from
// an empty value. Set failures must be surfaced to the caller; nothing in
// this package retries or drops a write silently.
type Keyspace interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Options carries backend construction parameters.
type Options struct {
	Driver      Driver
	SQLitePath  string // sqlite driver only
	PostgresDSN string // postgres driver only
}

// Open selects and constructs a keyspace backend. An empty driver defaults
// to sqlite.
func Open(opts Options) (Keyspace, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(opts.SQLitePath)
	case DriverPostgres:
		return NewPostgres(opts.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown keyspace driver %s", driver)
	}
}
