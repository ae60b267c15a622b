// Package store persists ledger snapshots under a key, either as files in a
// directory or as rows in a PostgreSQL table.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/pcquote"
)

// ErrNotFound is returned when no snapshot is stored under the key.
var ErrNotFound = errors.New("not found")

// DefaultKey is the key of the clerk's working session.
const DefaultKey = "session"

// Store saves and restores ledger snapshots.
type Store interface {
	Load(ctx context.Context, key string) (pcquote.Snapshot, error)
	Save(ctx context.Context, key string, s pcquote.Snapshot) error
	// Delete removes the snapshot, deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Kinds of store.
const (
	KindFile     = "file"
	KindPostgres = "postgres"
)

// Config selects and configures a Store.
type Config struct {
	Kind        string `yaml:"kind"`
	Dir         string `yaml:"dir"`
	DatabaseURL string `yaml:"database_url"`
}

// DefaultDir returns the directory used by the file store when none is
// configured.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".pcquote"
	}
	return filepath.Join(dir, "pcquote")
}

// Open returns the store described by cfg. An empty kind is a file store.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Kind {
	case "", KindFile:
		dir := cfg.Dir
		if dir == "" {
			dir = DefaultDir()
		}
		return NewFileStore(dir)
	case KindPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("postgres store requires a database url")
		}
		return NewPgStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
}
