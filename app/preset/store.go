package preset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/storage"
)

// StorageKey is the slot holding the serialized preset collection.
const StorageKey = "presets"

// Store persists presets as one JSON document. Every call reads the full
// collection from the backend; nothing is cached between calls.
//
// Name uniqueness is not enforced here: callers check IsNameUnique before
// inserting or renaming.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger
}

// NewStore wraps backend. A nil logger uses slog.Default().
func NewStore(backend storage.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger.With("component", "preset.store")}
}

// List returns every stored preset in stored order. A missing slot is an empty
// collection.
func (s *Store) List(ctx context.Context) ([]Preset, error) {
	presets, err := s.load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "preset.list", err)
	}
	return presets, nil
}

// Get returns the preset named name.
func (s *Store) Get(ctx context.Context, name string) (Preset, bool, error) {
	presets, err := s.load(ctx)
	if err != nil {
		return Preset{}, false, apperr.Wrap(apperr.KindStorage, "preset.get", err)
	}
	if i := indexOf(presets, name); i >= 0 {
		return presets[i], true, nil
	}
	return Preset{}, false, nil
}

// Save inserts p, or replaces the preset with the same name in place.
func (s *Store) Save(ctx context.Context, p Preset) error {
	presets, err := s.load(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "preset.save", err)
	}
	presets = upsert(presets, p.clone())
	if err := s.store(ctx, presets); err != nil {
		return apperr.Wrap(apperr.KindStorage, "preset.save", err)
	}
	s.logger.DebugContext(ctx, "Saved preset", "name", p.Name, "count", len(presets))
	return nil
}

// Replace removes oldName and stores p in a single write, keeping the old
// entry's position. When oldName is absent it behaves like Save.
func (s *Store) Replace(ctx context.Context, oldName string, p Preset) error {
	presets, err := s.load(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "preset.replace", err)
	}
	p = p.clone()
	if i := indexOf(presets, oldName); i >= 0 {
		presets[i] = p
		// Drop any other entry that already carried the new name.
		out := presets[:0]
		for j, existing := range presets {
			if j != i && existing.Name == p.Name {
				continue
			}
			out = append(out, existing)
		}
		presets = out
	} else {
		presets = upsert(presets, p)
	}
	if err := s.store(ctx, presets); err != nil {
		return apperr.Wrap(apperr.KindStorage, "preset.replace", err)
	}
	s.logger.DebugContext(ctx, "Replaced preset", "old", oldName, "new", p.Name)
	return nil
}

// Delete removes the preset named name. Deleting an unknown name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	presets, err := s.load(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "preset.delete", err)
	}
	i := indexOf(presets, name)
	if i < 0 {
		return nil
	}
	presets = append(presets[:i], presets[i+1:]...)
	if err := s.store(ctx, presets); err != nil {
		return apperr.Wrap(apperr.KindStorage, "preset.delete", err)
	}
	s.logger.DebugContext(ctx, "Deleted preset", "name", name)
	return nil
}

// IsNameUnique reports whether no stored preset is called name. A preset
// named exclude is ignored, so a preset being edited does not collide with itself.
func (s *Store) IsNameUnique(ctx context.Context, name, exclude string) (bool, error) {
	presets, err := s.load(ctx)
	if err != nil {
		return false, apperr.Wrap(apperr.KindStorage, "preset.unique", err)
	}
	for _, p := range presets {
		if p.Name == name && (exclude == "" || p.Name != exclude) {
			return false, nil
		}
	}
	return true, nil
}

func (s *Store) load(ctx context.Context) ([]Preset, error) {
	data, err := s.backend.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []Preset{}, nil
	}
	if err != nil {
		return nil, err
	}
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}
	if presets == nil {
		// Stored as JSON null.
		presets = []Preset{}
	}
	return presets, nil
}

func (s *Store) store(ctx context.Context, presets []Preset) error {
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	return s.backend.Put(ctx, StorageKey, data)
}

func indexOf(presets []Preset, name string) int {
	for i, p := range presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func upsert(presets []Preset, p Preset) []Preset {
	if i := indexOf(presets, p.Name); i >= 0 {
		presets[i] = p
		return presets
	}
	return append(presets, p)
}
