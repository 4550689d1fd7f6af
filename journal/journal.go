// Package journal persists the account and pair collections in a
// key/value store. Each collection is written whole, as JSON, under a
// fixed key after every change.
package journal

import (
	"context"
	"fmt"
	"time"
)

// Keys the two collections are stored under.
const (
	KeyAccounts = "riskAccounts"
	KeyPairs    = "tradingPairs"
)

// Store is a minimal durable key/value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Stamper is implemented by stores that record when each key was last
// written.
type Stamper interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

var _ Stamper = (*SQLite)(nil)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Open returns the store for kind at path. The memory backend ignores
// path.
func Open(kind, path string) (Store, error) {
	switch kind {
	case BackendSQLite:
		return NewSQLite(path)
	case BackendBadger:
		return NewBadger(path)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store type %q", kind)
}
