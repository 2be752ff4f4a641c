package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/storage"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetect_PackageJSON(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "package.json"), `{
		"name": "my-app",
		"dependencies": {"next": "15.0.0", "react": "19.0.0"},
		"devDependencies": {"tailwindcss": "4.0.0", "left-pad": "1.0.0"}
	}`)

	info, ok := Detect(dir)
	require.True(t, ok)
	assert.Equal(t, "my-app", info.Name)
	assert.Equal(t, "nextjs", info.Type)
	assert.Equal(t, []string{"nextjs", "react", "tailwindcss"}, info.Packages)
	assert.Equal(t, "nextjs (nextjs, react, tailwindcss)", info.String())
}

func TestDetect_PlainNPM(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "package.json"), `not json`)

	info, ok := Detect(dir)
	require.True(t, ok)
	assert.Equal(t, "npm", info.Type)
	assert.Equal(t, filepath.Base(dir), info.Name)
	assert.Empty(t, info.Packages)
}

func TestDetect_Markers(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"go.mod", "go"},
		{"Cargo.toml", "rust"},
		{"pyproject.toml", "python"},
		{"Gemfile", "ruby"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			dir := t.TempDir()
			write(t, filepath.Join(dir, tt.file), "")
			info, ok := Detect(dir)
			require.True(t, ok)
			assert.Equal(t, tt.want, info.Type)
		})
	}
}

func TestDetect_Git(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, ".git", "config"), `[core]
	bare = false
[remote "origin"]
	url = git@github.com:acme/site.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`)

	info, ok := Detect(dir)
	require.True(t, ok)
	assert.Equal(t, "git", info.Type)
	assert.Equal(t, "git@github.com:acme/site.git", info.Remote)

	// A marker file takes precedence over git as the type.
	write(t, filepath.Join(dir, "go.mod"), "module x")
	info, ok = Detect(dir)
	require.True(t, ok)
	assert.Equal(t, "go", info.Type)
	assert.Equal(t, "git@github.com:acme/site.git", info.Remote)
}

func TestDetect_Empty(t *testing.T) {
	_, ok := Detect(t.TempDir())
	assert.False(t, ok)
}

func TestHistory_RecordAndList(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(storage.NewMemoryBackend(), nil)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	h.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }

	_, ok, err := h.Last(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, h.Record(ctx, Entry{Path: "/p/a", Preset: "web"}))
	require.NoError(t, h.Record(ctx, Entry{Path: "/p/b", Preset: "api"}))
	require.NoError(t, h.Record(ctx, Entry{Path: "/p/a", Preset: "web"}))

	list, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "/p/a", list[0].Path)
	assert.True(t, base.Add(3*time.Minute).Equal(list[0].CreatedAt))
	assert.Equal(t, "/p/b", list[1].Path)

	last, ok, err := h.Last(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/p/a", last.Path)
}

func TestHistory_Limit(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(storage.NewMemoryBackend(), nil)
	h.limit = 3
	for i := range 5 {
		require.NoError(t, h.Record(ctx, Entry{Path: fmt.Sprintf("/p/%d", i)}))
	}
	list, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "/p/4", list[0].Path)
	assert.Equal(t, "/p/2", list[2].Path)
}

func TestHistory_StorageErrors(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	h := NewHistory(backend, nil)

	backend.PutErr = fmt.Errorf("disk full")
	err := h.Record(ctx, Entry{Path: "/p"})
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	backend.PutErr = nil
	require.NoError(t, backend.Put(ctx, HistoryKey, []byte("{")))
	_, err = h.List(ctx)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}
