// Package storage provides the named storage slots that back the preset
// collection. A slot holds one opaque document; callers read the whole value,
// modify it and write it back.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get when nothing has been stored under a key yet.
var ErrNotFound = errors.New("storage: key not found")

// Backend stores whole documents under string keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Watcher is implemented by backends that can report external changes to a key.
type Watcher interface {
	// Watch sends on the returned channel whenever key changes on disk. The
	// channel is closed when ctx is done.
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the backend named by kind rooted at path. For the file backend
// path is a directory, for sqlite it is the database file. A nil logger means
// slog.Default.
func Open(kind, path string, logger *slog.Logger) (Backend, error) {
	switch strings.ToLower(kind) {
	case "", BackendFile:
		return NewFileBackend(path, logger)
	case BackendSQLite:
		return NewSQLiteBackend(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}

// validKey rejects keys that could escape the storage directory.
func validKey(key string) error {
	if key == "" {
		return errors.New("storage: empty key")
	}
	if strings.ContainsAny(key, `/\`) || key != filepath.Base(key) || key == "." || key == ".." {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
