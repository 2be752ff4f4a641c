package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/storage"
)

// HistoryKey is the storage slot holding recently created projects.
const HistoryKey = "projects"

// DefaultHistoryLimit is how many entries History keeps.
const DefaultHistoryLimit = 20

// Entry records one created project.
type Entry struct {
	Path      string    `json:"path"`
	Preset    string    `json:"preset"`
	Info      *Info     `json:"info,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// History is the most-recent-first list of created projects. A path appears
// at most once; recording it again moves it to the front.
type History struct {
	backend storage.Backend
	logger  *slog.Logger
	limit   int
	now     func() time.Time

	mu sync.Mutex
}

func NewHistory(backend storage.Backend, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{
		backend: backend,
		logger:  logger.With("component", "project.history"),
		limit:   DefaultHistoryLimit,
		now:     time.Now,
	}
}

// List returns the recorded projects, newest first.
func (h *History) List(ctx context.Context) ([]Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries, err := h.load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "history.list", err)
	}
	return entries, nil
}

// Last returns the most recently created project.
func (h *History) Last(ctx context.Context) (Entry, bool, error) {
	entries, err := h.List(ctx)
	if err != nil || len(entries) == 0 {
		return Entry{}, false, err
	}
	return entries[0], true, nil
}

// Record adds e to the front of the history. A zero CreatedAt is set to now.
func (h *History) Record(ctx context.Context, e Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "history.record", err)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = h.now()
	}

	out := make([]Entry, 0, len(entries)+1)
	out = append(out, e)
	for _, old := range entries {
		if old.Path != e.Path {
			out = append(out, old)
		}
	}
	if h.limit > 0 && len(out) > h.limit {
		out = out[:h.limit]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "history.record", err)
	}
	if err := h.backend.Put(ctx, HistoryKey, data); err != nil {
		return apperr.Wrap(apperr.KindStorage, "history.record", err)
	}
	h.logger.DebugContext(ctx, "Project recorded", "path", e.Path, "preset", e.Preset)
	return nil
}

func (h *History) load(ctx context.Context) ([]Entry, error) {
	data, err := h.backend.Get(ctx, HistoryKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding project history: %w", err)
	}
	return entries, nil
}
