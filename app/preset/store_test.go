package preset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/storage"
)

func setupTestStore(t *testing.T) (*Store, *storage.MemoryBackend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	return NewStore(backend, nil), backend
}

func webPreset() Preset {
	return Preset{
		Name:     "web",
		Path:     []string{"~/Projects"},
		EditorID: "com.example.editor",
		Command:  "git init",
	}
}

func TestStore_ListEmpty(t *testing.T) {
	store, _ := setupTestStore(t)

	presets, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, presets)
	assert.NotNil(t, presets)
}

func TestStore_ListToleratesNull(t *testing.T) {
	store, backend := setupTestStore(t)
	require.NoError(t, backend.Put(context.Background(), StorageKey, []byte("null")))

	presets, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestStore_ListCorrupt(t *testing.T) {
	store, backend := setupTestStore(t)
	require.NoError(t, backend.Put(context.Background(), StorageKey, []byte("{not json")))

	_, err := store.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestStore_IsNameUniqueAroundSave(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"web", "a", "名前", " spaced "} {
		t.Run(name, func(t *testing.T) {
			store, _ := setupTestStore(t)
			p := webPreset()
			p.Name = name

			unique, err := store.IsNameUnique(ctx, name, "")
			require.NoError(t, err)
			assert.True(t, unique, "unique before save")

			require.NoError(t, store.Save(ctx, p))

			unique, err = store.IsNameUnique(ctx, name, "")
			require.NoError(t, err)
			assert.False(t, unique, "not unique after save")

			unique, err = store.IsNameUnique(ctx, name, name)
			require.NoError(t, err)
			assert.True(t, unique, "own name is excluded")
		})
	}
}

func TestStore_SaveUpsertsInPlace(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	require.NoError(t, store.Save(ctx, webPreset()))
	require.NoError(t, store.Save(ctx, Preset{Name: "go", Path: []string{"/src"}, EditorID: "vim"}))

	updated := webPreset()
	updated.Command = "npm init -y"
	require.NoError(t, store.Save(ctx, updated))

	presets, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "web", presets[0].Name)
	assert.Equal(t, "npm init -y", presets[0].Command)
	assert.Equal(t, "go", presets[1].Name)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)
	require.NoError(t, store.Save(ctx, webPreset()))

	require.NoError(t, store.Delete(ctx, "web"))
	presets, err := store.List(ctx)
	require.NoError(t, err)
	for _, p := range presets {
		assert.NotEqual(t, "web", p.Name)
	}

	assert.NoError(t, store.Delete(ctx, "web"), "deleting a missing name is a no-op")
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestStore_ReplaceRenames(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)
	require.NoError(t, store.Save(ctx, Preset{Name: "first", Path: []string{"/a"}, EditorID: "x"}))
	require.NoError(t, store.Save(ctx, webPreset()))
	require.NoError(t, store.Save(ctx, Preset{Name: "last", Path: []string{"/b"}, EditorID: "y"}))

	renamed := webPreset()
	renamed.Name = "site"
	require.NoError(t, store.Replace(ctx, "web", renamed))

	presets, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 3)
	assert.Equal(t, []string{"first", "site", "last"}, names(presets))
	assert.Equal(t, renamed, presets[1])

	_, found, err := store.Get(ctx, "web")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_ReplaceIsSingleWrite(t *testing.T) {
	ctx := context.Background()
	store, backend := setupTestStore(t)
	require.NoError(t, store.Save(ctx, webPreset()))

	backend.PutErr = errors.New("disk full")
	renamed := webPreset()
	renamed.Name = "site"
	err := store.Replace(ctx, "web", renamed)
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	// The failed write must not have lost the original entry.
	backend.PutErr = nil
	p, found, err := store.Get(ctx, "web")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, webPreset(), p)
}

func TestStore_ReplaceMissingOldNameAppends(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	require.NoError(t, store.Replace(ctx, "ghost", webPreset()))
	presets, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, names(presets))
}

func TestStore_SaveDoesNotAliasPath(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)
	p := webPreset()
	require.NoError(t, store.Save(ctx, p))
	p.Path[0] = "/mutated"

	got, _, err := store.Get(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, "~/Projects", got.BasePath())
}

func TestStore_ReadErrorIsStorageKind(t *testing.T) {
	store, backend := setupTestStore(t)
	backend.GetErr = errors.New("io error")

	_, err := store.List(context.Background())
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	err = store.Save(context.Background(), webPreset())
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	_, err = store.IsNameUnique(context.Background(), "web", "")
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestStore_FileFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir, nil)
	require.NoError(t, err)
	store := NewStore(backend, nil)
	require.NoError(t, store.Save(ctx, webPreset()))

	raw, err := backend.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"web","path":["~/Projects"],"ideBundleId":"com.example.editor","command":"git init"}]`, string(raw))
	assert.FileExists(t, filepath.Join(dir, "presets.json"))
}

func TestPreset_Helpers(t *testing.T) {
	assert.Equal(t, "", Preset{}.BasePath())
	assert.Equal(t, "/a", Preset{Path: []string{"/a", "/b"}}.BasePath())
	assert.False(t, Preset{Command: "   "}.HasCommand())
	assert.True(t, Preset{Command: "git init"}.HasCommand())
}

func names(presets []Preset) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Name
	}
	return out
}
