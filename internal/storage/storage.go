// Package storage provides the local key-value store that holds the
// persisted wizard snapshot and chat log.
//
// Values are opaque JSON blobs. FileStore keeps one file per key;
// SQLiteStore keeps a single kv table using pure-Go SQLite (modernc.org/sqlite).
package storage

import (
	"context"
	"fmt"
	"path/filepath"
)

// Store is the persistence port used by the wizard and chat features.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open creates the store selected by driver rooted at dir.
func Open(driver, dir string) (Store, error) {
	switch driver {
	case "", DriverFile:
		return NewFileStore(dir)
	case DriverSQLite:
		return NewSQLiteStore(filepath.Join(dir, "promptcraft.db"))
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
