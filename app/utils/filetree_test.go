package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndRenderFileTree(t *testing.T) {
	root := BuildFileTree([]Entry{
		{Path: "README.md"},
		{Path: "src", IsDir: true},
		{Path: filepath.Join("src", "main.go")},
		{Path: "empty", IsDir: true},
	})

	want := "┣ 📂 empty\n" +
		"┣ 📂 src\n" +
		"┃  ┗ 📜 main.go\n" +
		"┗ 📜 README.md\n"
	assert.Equal(t, want, RenderFileTree(root, "", true, true))
}

func TestScanDir_DepthAndOpaqueDirs(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{
		"a/b/c/deep.txt",
		".git/HEAD",
		"top.txt",
	} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}

	entries, err := ScanDir(dir, 2)
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, filepath.ToSlash(e.Path))
	}
	assert.ElementsMatch(t, []string{".git", "a", "a/b", "top.txt"}, paths)
}

func TestSummarizeDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-app")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))

	got, err := SummarizeDir(dir, 2)
	require.NoError(t, err)
	assert.Equal(t, "📂 my-app\n┣ 📂 pkg\n┗ 📜 go.mod\n", got)

	_, err = SummarizeDir(filepath.Join(dir, "missing"), 2)
	assert.Error(t, err)
}
