package apps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

const infoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>Code</string>
	<key>CFBundleIdentifier</key>
	<string>com.microsoft.VSCode</string>
</dict>
</plist>`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanner_List(t *testing.T) {
	macDir := t.TempDir()
	writeFile(t, filepath.Join(macDir, "Visual Studio Code.app", "Contents", "Info.plist"), infoPlist)
	require.NoError(t, os.MkdirAll(filepath.Join(macDir, "No Plist.app", "Contents"), 0o755))
	writeFile(t, filepath.Join(macDir, "Broken.app", "Contents", "Info.plist"), "not a plist")
	writeFile(t, filepath.Join(macDir, "README.txt"), "ignored")

	xdgDir := t.TempDir()
	writeFile(t, filepath.Join(xdgDir, "zed.desktop"), "[Desktop Entry]\nName=Zed\nExec=zed %U\n[Desktop Action new]\nName=New Window\n")
	writeFile(t, filepath.Join(xdgDir, "hidden.desktop"), "[Desktop Entry]\nName=Hidden\nNoDisplay=true\n")
	writeFile(t, filepath.Join(xdgDir, "unnamed.desktop"), "[Desktop Entry]\nExec=x\n")

	dupDir := t.TempDir()
	writeFile(t, filepath.Join(dupDir, "zed.desktop"), "[Desktop Entry]\nName=Zed Duplicate\n")

	s := &Scanner{Dirs: []string{macDir, xdgDir, dupDir, filepath.Join(t.TempDir(), "missing")}}
	got, err := s.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Application{
		{Name: "Broken", ID: "Broken.app"},
		{Name: "No Plist", ID: "No Plist.app"},
		{Name: "unnamed", ID: "unnamed.desktop"},
		{Name: "Visual Studio Code", ID: "com.microsoft.VSCode"},
		{Name: "Zed", ID: "zed.desktop"},
	}, got)
}

func TestScanner_BinaryPlist(t *testing.T) {
	data, err := plist.Marshal(map[string]any{
		"CFBundleName":       "Code",
		"CFBundleIdentifier": "com.microsoft.VSCode",
	}, plist.BinaryFormat)
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Visual Studio Code.app", "Contents", "Info.plist"), string(data))

	got, err := (&Scanner{Dirs: []string{dir}}).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Application{{Name: "Visual Studio Code", ID: "com.microsoft.VSCode"}}, got)
}

func TestScanner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&Scanner{Dirs: []string{t.TempDir()}}).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultDirs(t *testing.T) {
	assert.Equal(t,
		[]string{"/Applications", "/System/Applications", "/Users/u/Applications"},
		DefaultDirs("darwin", "/Users/u", "", ""))

	assert.Equal(t,
		[]string{"/home/u/.local/share/applications", "/usr/local/share/applications", "/usr/share/applications"},
		DefaultDirs("linux", "/home/u", "", ""))

	assert.Equal(t,
		[]string{"/data/applications", "/opt/share/applications"},
		DefaultDirs("linux", "/home/u", "/data", "/opt/share:"))

	assert.Empty(t, DefaultDirs("windows", `C:\Users\u`, "", ""))
}

func TestFilter(t *testing.T) {
	list := []Application{
		{Name: "Visual Studio Code", ID: "com.microsoft.VSCode"},
		{Name: "Zed", ID: "dev.zed.Zed"},
	}
	assert.Equal(t, list, Filter(list, " "))
	assert.Equal(t, list[:1], Filter(list, "vscode"))
	assert.Equal(t, list[1:], Filter(list, "ZED"))
	assert.Empty(t, Filter(list, "emacs"))
}
