// Package shell runs init commands and opens editor applications.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Runner executes an opaque shell command string in dir.
type Runner struct {
	// Stdout and Stderr receive the command's output. When nil, output is
	// captured and the tail is attached to the error on failure.
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	goos string
}

// NewRunner returns a Runner for the host OS.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Logger: logger.With("component", "shell"), goos: runtime.GOOS}
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Code   int
	Output string // tail of captured output, if any
}

func (e *ExitError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("exit status %d: %s", e.Code, e.Output)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// ShellCommand returns the program and arguments used to run command on goos.
func ShellCommand(goos, command string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// Run starts command through the platform shell and waits for it. The
// process is killed when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, command, dir string) error {
	name, args := ShellCommand(r.os(), command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = 2 * time.Second

	var captured bytes.Buffer
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = &captured
	}
	if cmd.Stderr == nil {
		cmd.Stderr = &captured
	}

	start := time.Now()
	r.logger().DebugContext(ctx, "Running command", "command", command, "dir", dir)
	err := cmd.Run()
	r.logger().DebugContext(ctx, "Command finished", "command", command, "elapsed", time.Since(start), "err", err)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("command [%s] interrupted: %w", firstWord(command), ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode(), Output: tail(captured.String(), 5)}
	}
	return fmt.Errorf("command [%s] failed to start: %w", firstWord(command), err)
}

func (r *Runner) os() string {
	if r.goos == "" {
		return runtime.GOOS
	}
	return r.goos
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// tail returns the last n non-empty lines of s joined by "; ".
func tail(s string, n int) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "; ")
}
