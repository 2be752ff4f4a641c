// Package workflow validates preset edits and applies them to the store.
//
// Each call moves through Editing -> Validating -> Rejected | Persisting ->
// Saved | Failed. Validation happens entirely before the first store mutation.
package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
)

// Validation reasons. They double as i18n lookups in the presentation layer.
const (
	ReasonNameExists     = "name exists"
	ReasonNameRequired   = "name required"
	ReasonFolderRequired = "folder required"
	ReasonAppRequired    = "app required"
)

// Draft is the user's form input.
type Draft struct {
	Name     string
	Path     []string
	EditorID string
	Command  string
}

// FromPreset fills a Draft for editing p.
func FromPreset(p preset.Preset) Draft {
	return Draft{
		Name:     p.Name,
		Path:     append([]string(nil), p.Path...),
		EditorID: p.EditorID,
		Command:  p.Command,
	}
}

// Store is the subset of *preset.Store the workflow needs.
type Store interface {
	Save(ctx context.Context, p preset.Preset) error
	Replace(ctx context.Context, oldName string, p preset.Preset) error
	Delete(ctx context.Context, name string) error
	IsNameUnique(ctx context.Context, name, exclude string) (bool, error)
}

// Editor runs the add, edit and delete use cases.
type Editor struct {
	store  Store
	logger *slog.Logger
}

func NewEditor(store Store, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{store: store, logger: logger.With("component", "workflow")}
}

// Add validates d and stores it as a new preset.
func (e *Editor) Add(ctx context.Context, d Draft) (preset.Preset, error) {
	p, err := e.validate(ctx, "preset.add", d, "", true)
	if err != nil {
		return preset.Preset{}, err
	}
	if err := e.store.Save(ctx, p); err != nil {
		return preset.Preset{}, err
	}
	e.logger.InfoContext(ctx, "Preset added", "name", p.Name)
	return p, nil
}

// Edit validates d and replaces the preset currently named original. A rename
// is applied as one store write, so a failure never drops the old entry.
func (e *Editor) Edit(ctx context.Context, original string, d Draft) (preset.Preset, error) {
	p, err := e.validate(ctx, "preset.edit", d, original, normalizeName(d.Name) != original)
	if err != nil {
		return preset.Preset{}, err
	}
	if p.Name != original {
		err = e.store.Replace(ctx, original, p)
	} else {
		err = e.store.Save(ctx, p)
	}
	if err != nil {
		return preset.Preset{}, err
	}
	e.logger.InfoContext(ctx, "Preset updated", "name", p.Name, "previous", original)
	return p, nil
}

// Delete removes the preset named name.
func (e *Editor) Delete(ctx context.Context, name string) error {
	if err := e.store.Delete(ctx, name); err != nil {
		return err
	}
	e.logger.InfoContext(ctx, "Preset deleted", "name", name)
	return nil
}

// Validate runs the add-form checks without touching the store beyond the
// uniqueness lookup.
func (e *Editor) Validate(ctx context.Context, d Draft) error {
	_, err := e.validate(ctx, "preset.add", d, "", true)
	return err
}

// validate applies the checks in order; the first failure wins.
func (e *Editor) validate(ctx context.Context, op string, d Draft, exclude string, checkUnique bool) (preset.Preset, error) {
	name := normalizeName(d.Name)

	if checkUnique {
		unique, err := e.store.IsNameUnique(ctx, name, exclude)
		if err != nil {
			return preset.Preset{}, err
		}
		if !unique {
			return preset.Preset{}, apperr.New(apperr.KindNameCollision, op, ReasonNameExists)
		}
	}
	if name == "" {
		return preset.Preset{}, apperr.New(apperr.KindValidation, op, ReasonNameRequired)
	}
	paths := compactPaths(d.Path)
	if len(paths) == 0 {
		return preset.Preset{}, apperr.New(apperr.KindValidation, op, ReasonFolderRequired)
	}
	editor := strings.TrimSpace(d.EditorID)
	if editor == "" {
		return preset.Preset{}, apperr.New(apperr.KindValidation, op, ReasonAppRequired)
	}

	return preset.Preset{
		Name:     name,
		Path:     paths,
		EditorID: editor,
		Command:  strings.TrimSpace(d.Command),
	}, nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// compactPaths drops blank entries, keeping order.
func compactPaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
