package storage

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend, used by tests and dry runs.
type MemoryBackend struct {
	mu    sync.Mutex
	slots map[string][]byte

	// PutErr, when set, is returned by every Put.
	PutErr error
	// GetErr, when set, is returned by every Get.
	GetErr error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.GetErr != nil {
		return nil, b.GetErr
	}
	v, ok := b.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (b *MemoryBackend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PutErr != nil {
		return b.PutErr
	}
	b.slots[key] = append([]byte(nil), value...)
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
