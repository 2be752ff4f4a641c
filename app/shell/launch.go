package shell

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens a folder in an editor application addressed by identifier.
type Launcher struct {
	Logger *slog.Logger

	goos string
}

func NewLauncher(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{Logger: logger.With("component", "launcher"), goos: runtime.GOOS}
}

// LaunchCommand returns the program and arguments that open target with the
// application editorID on goos.
//
//   - darwin: bundle identifiers go through `open -b`, anything ending in
//     ".app" or containing a slash through `open -a`.
//   - windows: `cmd /C start "" <editor> <target>`.
//   - others: ".desktop" ids go through gtk-launch, anything else is run as
//     an executable with target as its argument.
func LaunchCommand(goos, editorID, target string) (string, []string) {
	switch goos {
	case "darwin":
		if strings.HasSuffix(editorID, ".app") || strings.Contains(editorID, "/") {
			return "open", []string{"-a", editorID, target}
		}
		return "open", []string{"-b", editorID, target}
	case "windows":
		return "cmd", []string{"/C", "start", "", editorID, target}
	default:
		if strings.HasSuffix(editorID, ".desktop") {
			return "gtk-launch", []string{editorID, target}
		}
		return editorID, []string{target}
	}
}

// Launch starts the editor. On darwin and windows the helper exits once the
// application is running, so it is waited for; elsewhere the editor itself is
// the child and is left running.
func (l *Launcher) Launch(ctx context.Context, editorID, target string) error {
	goos := l.goos
	if goos == "" {
		goos = runtime.GOOS
	}
	name, args := LaunchCommand(goos, editorID, target)
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.DebugContext(ctx, "Launching editor", "program", name, "args", args)

	if goos == "darwin" || goos == "windows" || name == "gtk-launch" {
		out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
		if err != nil {
			if msg := strings.TrimSpace(string(out)); msg != "" {
				return fmt.Errorf("%s: %w: %s", name, err, msg)
			}
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}

	// Detached editor: do not tie its lifetime to ctx.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
