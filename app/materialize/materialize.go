// Package materialize turns a preset and a project name into a folder on disk,
// runs the preset's init command inside it and opens it in the editor.
//
// The steps are strictly ordered and not transactional: a failure after the
// folder exists leaves it in place.
package materialize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
)

// Validation reasons.
const (
	ReasonNoPreset     = "no preset selected"
	ReasonNameRequired = "name required"
	ReasonNoBaseFolder = "no base folder"
)

// Runner executes an init command in a directory.
type Runner interface {
	Run(ctx context.Context, command, dir string) error
}

// Launcher opens a directory in an editor application.
type Launcher interface {
	Launch(ctx context.Context, editorID, path string) error
}

// Materializer creates projects. Zero-valued function fields fall back to the
// os package.
type Materializer struct {
	Runner   Runner
	Launcher Launcher

	// Home resolves the user's home directory for "~" expansion.
	Home func() (string, error)
	// MkdirAll creates the project folder.
	MkdirAll func(path string, perm os.FileMode) error
	// Timeout bounds the init command. Zero means no limit.
	Timeout time.Duration

	Logger *slog.Logger
}

func New(runner Runner, launcher Launcher, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{
		Runner:   runner,
		Launcher: launcher,
		Home:     os.UserHomeDir,
		MkdirAll: os.MkdirAll,
		Logger:   logger.With("component", "materialize"),
	}
}

// ResolveTarget returns the folder a project named projectName would be
// created in for p, without touching the filesystem.
func (m *Materializer) ResolveTarget(p *preset.Preset, projectName string) (string, error) {
	const op = "project.resolve"
	if p == nil {
		return "", apperr.New(apperr.KindValidation, op, ReasonNoPreset)
	}
	name := strings.TrimSpace(projectName)
	if name == "" {
		return "", apperr.New(apperr.KindValidation, op, ReasonNameRequired)
	}
	base := p.BasePath()
	if strings.TrimSpace(base) == "" {
		return "", apperr.New(apperr.KindValidation, op, ReasonNoBaseFolder)
	}

	home := ""
	if needsHome(base) {
		h, err := m.home()
		if err != nil {
			return "", apperr.Wrap(apperr.KindFilesystem, op, fmt.Errorf("home directory: %w", err))
		}
		home = h
	}
	return filepath.Join(ExpandHome(base, home), name), nil
}

// CreateProject materializes projectName from p and returns the created path.
//
// Order: create folder, run the init command (if any) inside it, launch the
// editor. A failing init command prevents the launch. Nothing is rolled back.
func (m *Materializer) CreateProject(ctx context.Context, p *preset.Preset, projectName string) (string, error) {
	target, err := m.ResolveTarget(p, projectName)
	if err != nil {
		return "", err
	}
	logger := m.logger().With("preset", p.Name, "target", target)

	if err := m.mkdirAll(target, 0o755); err != nil {
		logger.ErrorContext(ctx, "Failed to create project folder", "error", err)
		return "", apperr.Wrap(apperr.KindFilesystem, "project.mkdir", err)
	}
	logger.InfoContext(ctx, "Created project folder")

	if p.HasCommand() {
		if err := m.runInit(ctx, strings.TrimSpace(p.Command), target); err != nil {
			logger.ErrorContext(ctx, "Init command failed", "error", err)
			return "", apperr.Wrap(apperr.KindCommand, "project.init", err)
		}
		logger.InfoContext(ctx, "Init command finished")
	}

	if m.Launcher == nil {
		return "", apperr.New(apperr.KindLaunch, "project.launch", "no launcher configured")
	}
	if err := m.Launcher.Launch(ctx, p.EditorID, target); err != nil {
		logger.ErrorContext(ctx, "Failed to open editor", "editor", p.EditorID, "error", err)
		return "", apperr.Wrap(apperr.KindLaunch, "project.launch", err)
	}
	logger.InfoContext(ctx, "Opened project", "editor", p.EditorID)
	return target, nil
}

func (m *Materializer) runInit(ctx context.Context, command, dir string) error {
	if m.Runner == nil {
		return errors.New("no command runner configured")
	}
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}
	return m.Runner.Run(ctx, command, dir)
}

func (m *Materializer) home() (string, error) {
	if m.Home == nil {
		return os.UserHomeDir()
	}
	return m.Home()
}

func (m *Materializer) mkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAll == nil {
		return os.MkdirAll(path, perm)
	}
	return m.MkdirAll(path, perm)
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}
