package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
)

const logFileName = "ngi.log"

// logLevel resolves the configured level; --debug always wins.
func logLevel(configured string) slog.Level {
	if cli.IsDebugEnabled() {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(configured))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// newLogger returns a tint logger on w, colored only when w is a terminal.
func newLogger(w *os.File, configured string) *slog.Logger {
	level := &slog.LevelVar{}
	level.Set(logLevel(configured))
	noColor := !isatty.IsTerminal(w.Fd()) && !isatty.IsCygwinTerminal(w.Fd())
	return slog.New(tint.NewHandler(colorable.NewColorable(w), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

// newFileLogger appends to the log file in the config directory.
func newFileLogger(configured string) (*slog.Logger, func(), error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return fileLogger(f, configured), func() { f.Close() }, nil
}

func fileLogger(w io.Writer, configured string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel(configured),
		TimeFormat: time.DateTime,
		NoColor:    true,
	}))
}
