package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/pcquote"
)

// FileStore keeps one JSON file per key in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory of the store.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Load reads the snapshot stored under the key.
func (s *FileStore) Load(ctx context.Context, key string) (pcquote.Snapshot, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", path, err)
	}
	snap, err := pcquote.DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not load snapshot %q: %w", path, err)
	}
	return snap, nil
}

// Save writes the snapshot, replacing the previous one atomically.
func (s *FileStore) Save(ctx context.Context, key string, snap pcquote.Snapshot) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := pcquote.EncodeSnapshot(&buf, snap); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	return nil
}

// Delete removes the snapshot file.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not delete snapshot %q: %w", path, err)
	}
	return nil
}

// Close does nothing.
func (s *FileStore) Close() error { return nil }
