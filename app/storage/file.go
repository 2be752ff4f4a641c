package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileBackend keeps each key in <dir>/<key>.json. Writes go to a temp file in
// the same directory and are renamed into place.
type FileBackend struct {
	dir    string
	logger *slog.Logger
}

// NewFileBackend creates dir if needed.
func NewFileBackend(dir string, logger *slog.Logger) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("storage: empty directory")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir, logger: componentLogger(logger, "storage.file")}, nil
}

// Path returns the file backing key.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.Path(key), err)
	}
	return data, nil
}

func (b *FileBackend) Put(_ context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o640); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, b.Path(key)); err != nil {
		return fmt.Errorf("replacing %s: %w", b.Path(key), err)
	}
	b.logger.Debug("stored key", "key", key, "bytes", len(value))
	return nil
}

func (b *FileBackend) Close() error { return nil }

// Watch watches the storage directory (the file itself is replaced on every
// write, so watching it directly would lose the inode).
func (b *FileBackend) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(b.dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	target := b.Path(key)
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				b.logger.WarnContext(ctx, "Error watching storage", "err", err)
			}
		}
	}()
	return out, nil
}
