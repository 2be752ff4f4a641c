// Package apps enumerates launchable applications so forms can offer editor
// identifiers. Nothing validates identifiers against this list.
package apps

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"howett.net/plist"
)

// Application is a display name plus the identifier the launcher accepts.
type Application struct {
	Name string
	ID   string
}

// Lister supplies the installed applications.
type Lister interface {
	List(ctx context.Context) ([]Application, error)
}

// Scanner finds .app bundles and .desktop entries under Dirs.
type Scanner struct {
	Dirs   []string
	Logger *slog.Logger
}

// NewScanner returns a Scanner over DefaultDirs for the host.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	home, _ := os.UserHomeDir()
	return &Scanner{
		Dirs:   DefaultDirs(runtime.GOOS, home, os.Getenv("XDG_DATA_HOME"), os.Getenv("XDG_DATA_DIRS")),
		Logger: logger.With("component", "apps"),
	}
}

// DefaultDirs returns the application directories searched on goos.
func DefaultDirs(goos, home, dataHome, dataDirs string) []string {
	switch goos {
	case "darwin":
		dirs := []string{"/Applications", "/System/Applications"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Applications"))
		}
		return dirs
	case "windows":
		return nil
	}

	if dataHome == "" && home != "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	var dirs []string
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}
	return dirs
}

// List scans every directory one level deep. Missing directories are
// skipped. Results are sorted by name and de-duplicated by ID; the first
// directory wins.
func (s *Scanner) List(ctx context.Context) ([]Application, error) {
	seen := make(map[string]bool)
	var out []Application
	for _, dir := range s.Dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				s.logger().DebugContext(ctx, "Skipping application dir", "dir", dir, "error", err)
			}
			continue
		}
		for _, e := range entries {
			app, ok := readEntry(dir, e.Name())
			if !ok || seen[app.ID] {
				continue
			}
			seen[app.ID] = true
			out = append(out, app)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func readEntry(dir, name string) (Application, bool) {
	path := filepath.Join(dir, name)
	switch {
	case strings.HasSuffix(name, ".app"):
		return readBundle(path, name), true
	case strings.HasSuffix(name, ".desktop"):
		return readDesktopFile(path, name)
	}
	return Application{}, false
}

type bundleInfo struct {
	Identifier string `plist:"CFBundleIdentifier"`
}

// readBundle uses CFBundleIdentifier from Contents/Info.plist, in XML or
// binary form. A missing or unreadable plist falls back to the bundle name,
// which `open -a` also accepts.
func readBundle(path, name string) Application {
	app := Application{Name: strings.TrimSuffix(name, ".app"), ID: name}
	data, err := os.ReadFile(filepath.Join(path, "Contents", "Info.plist"))
	if err != nil {
		return app
	}
	var info bundleInfo
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return app
	}
	if id := strings.TrimSpace(info.Identifier); id != "" {
		app.ID = id
	}
	return app
}

// readDesktopFile reads Name= from the [Desktop Entry] group. Hidden and
// NoDisplay entries are skipped. The file name is the identifier, as
// gtk-launch expects.
func readDesktopFile(path, name string) (Application, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Application{}, false
	}
	app := Application{ID: name}
	inEntry := false
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Name":
			app.Name = strings.TrimSpace(value)
		case "NoDisplay", "Hidden":
			if strings.EqualFold(strings.TrimSpace(value), "true") {
				return Application{}, false
			}
		}
	}
	if app.Name == "" {
		app.Name = strings.TrimSuffix(name, ".desktop")
	}
	return app, true
}

// Filter returns the applications whose name or ID contains query, ignoring case.
func Filter(list []Application, query string) []Application {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	var out []Application
	for _, a := range list {
		if strings.Contains(strings.ToLower(a.Name), q) || strings.Contains(strings.ToLower(a.ID), q) {
			out = append(out, a)
		}
	}
	return out
}
