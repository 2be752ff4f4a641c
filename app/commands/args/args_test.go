package args

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/project"
	"github.com/Guerrilla-Interactive/nextgen-init/app/storage"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

type fakeProcs struct {
	ran      []string
	launched []string
	// writes is created inside the project folder by Run, if set.
	writes string
}

func (f *fakeProcs) Run(_ context.Context, command, dir string) error {
	f.ran = append(f.ran, command+"@"+dir)
	if f.writes != "" {
		return os.WriteFile(filepath.Join(dir, f.writes), nil, 0o644)
	}
	return nil
}

func (f *fakeProcs) Launch(_ context.Context, editorID, path string) error {
	f.launched = append(f.launched, editorID+"@"+path)
	return nil
}

type fakeApps []apps.Application

func (f fakeApps) List(context.Context) ([]apps.Application, error) { return f, nil }

type testEnv struct {
	*Env
	out, errOut *bytes.Buffer
	procs       *fakeProcs
	copied      []string
	base        string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	dir := t.TempDir()
	cfg := config.Default()
	cfg.BasePath = filepath.Join(dir, "projects")
	cfg.Editor = "com.example.editor"

	backend := storage.NewMemoryBackend()
	store := preset.NewStore(backend, nil)
	procs := &fakeProcs{}
	m := materialize.New(procs, procs, nil)

	te := &testEnv{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		procs:  procs,
		base:   cfg.BasePath,
	}
	te.Env = &Env{
		Ctx:          context.Background(),
		Config:       &cfg,
		ConfigPath:   filepath.Join(dir, "config.yaml"),
		Store:        store,
		Editor:       workflow.NewEditor(store, nil),
		Materializer: m,
		Apps:         fakeApps{{Name: "Zed", ID: "dev.zed.Zed"}, {Name: "Code", ID: "com.microsoft.VSCode"}},
		History:      project.NewHistory(backend, nil),
		Out:          te.out,
		Err:          te.errOut,
		CopyToClipboard: func(s string) error {
			te.copied = append(te.copied, s)
			return nil
		},
	}
	return te
}

func (te *testEnv) run(t *testing.T, argv ...string) error {
	t.Helper()
	parsed := cli.ParseCommandLineArgs(argv, Checker{})
	require.Empty(t, parsed.Errors)
	return Run(te.Env, parsed)
}

func TestRegistry_AllCommandsRegistered(t *testing.T) {
	for _, name := range []string{
		"preset add", "preset list", "preset edit", "preset delete",
		"create", "quick list", "apps list",
		"config list", "config get", "config set", "commands", "recent",
	} {
		assert.True(t, CommandExists(name), name)
	}
	assert.Panics(t, func() { RegisterCommand(&CreateCommand{}) })
}

func TestChecker_IsBoolFlag(t *testing.T) {
	assert.True(t, Checker{}.IsBoolFlag("create", "copy"))
	assert.True(t, Checker{}.IsBoolFlag("create", "c"))
	assert.False(t, Checker{}.IsBoolFlag("preset add", "c"))
	assert.False(t, Checker{}.IsBoolFlag("nope", "copy"))
}

func TestPresetAddListEditDelete(t *testing.T) {
	te := setupEnv(t)

	require.NoError(t, te.run(t, "preset", "add", "web", "--path", "~/Projects", "--command", "git init"))
	assert.Contains(t, te.out.String(), "Preset saved")

	p, found, err := te.Store.Get(context.Background(), "web")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, preset.Preset{Name: "web", Path: []string{"~/Projects"}, EditorID: "com.example.editor", Command: "git init"}, p)

	te.out.Reset()
	require.NoError(t, te.run(t, "preset", "list"))
	assert.Contains(t, te.out.String(), "web\n")
	assert.Contains(t, te.out.String(), "git init")

	te.out.Reset()
	require.NoError(t, te.run(t, "preset", "edit", "web", "--name", "site", "--command", ""))
	assert.Contains(t, te.out.String(), "Preset updated")
	_, found, _ = te.Store.Get(context.Background(), "web")
	assert.False(t, found)
	p, found, _ = te.Store.Get(context.Background(), "site")
	require.True(t, found)
	assert.Equal(t, "", p.Command)
	assert.Equal(t, []string{"~/Projects"}, p.Path)

	te.out.Reset()
	require.NoError(t, te.run(t, "preset", "delete", "site"))
	assert.Contains(t, te.out.String(), "Preset deleted")
	list, err := te.Store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPresetAdd_DefaultsFromConfig(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "preset", "add", "plain"))

	p, found, err := te.Store.Get(context.Background(), "plain")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{te.base}, p.Path)
	assert.Equal(t, "com.example.editor", p.EditorID)
}

func TestPresetAdd_DuplicateIsReported(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "preset", "add", "web"))

	err := te.run(t, "preset", "add", "web", "--command", "other")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, te.errOut.String(), "Preset name already exists")

	p, _, _ := te.Store.Get(context.Background(), "web")
	assert.Empty(t, p.Command)
}

func TestPresetEdit_Unknown(t *testing.T) {
	te := setupEnv(t)
	err := te.run(t, "preset", "edit", "ghost", "--name", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no preset named "ghost"`)
}

func TestPresetList_Empty(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "preset", "list"))
	assert.Contains(t, te.out.String(), "No presets")
}

func TestCreate_StoredPreset(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "preset", "add", "web", "--command", "git init"))
	te.out.Reset()

	require.NoError(t, te.run(t, "create", "web", "my-app", "--copy"))

	target := filepath.Join(te.base, "my-app")
	assert.DirExists(t, target)
	assert.Equal(t, []string{"git init@" + target}, te.procs.ran)
	assert.Equal(t, []string{"com.example.editor@" + target}, te.procs.launched)
	assert.Equal(t, []string{target}, te.copied)
	assert.Contains(t, te.out.String(), "Project created")
	assert.Contains(t, te.out.String(), "📂 my-app")
}

func TestCreate_QuickPreset(t *testing.T) {
	te := setupEnv(t)
	te.Config.CommandMappings = "go => go mod init example.com/app"

	require.NoError(t, te.run(t, "create", "go", "svc"))
	target := filepath.Join(te.base, "svc")
	assert.Equal(t, []string{"go mod init example.com/app@" + target}, te.procs.ran)
	assert.Empty(t, te.copied)
}

func TestCreate_RecordsHistoryAndDetectsType(t *testing.T) {
	te := setupEnv(t)
	te.procs.writes = "go.mod"
	require.NoError(t, te.run(t, "preset", "add", "svc", "--command", "go mod init x"))

	require.NoError(t, te.run(t, "create", "svc", "billing"))
	assert.Contains(t, te.out.String(), "Detected: go")

	te.out.Reset()
	require.NoError(t, te.run(t, "recent"))
	target := filepath.Join(te.base, "billing")
	assert.Contains(t, te.out.String(), target+"  svc  go")
}

func TestRecent_Empty(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "recent"))
	assert.Contains(t, te.out.String(), "No projects created yet.")
}

func TestCreate_UnknownPreset(t *testing.T) {
	te := setupEnv(t)
	err := te.run(t, "create", "nope", "x")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, te.errOut.String(), "No preset selected")
	assert.Empty(t, te.procs.launched)
}

func TestRun_MissingArgs(t *testing.T) {
	te := setupEnv(t)
	err := te.run(t, "create", "web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument: project-name")
}

func TestQuickList(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "quick", "list"))
	assert.Contains(t, te.out.String(), "No quick presets")

	te.out.Reset()
	te.Config.CommandMappings = "next => npx create-next-app ."
	require.NoError(t, te.run(t, "quick", "list"))
	assert.Contains(t, te.out.String(), "next\n")
	assert.Contains(t, te.out.String(), "npx create-next-app .")
}

func TestAppsList(t *testing.T) {
	te := setupEnv(t)
	require.NoError(t, te.run(t, "apps", "list", "zed"))
	assert.Equal(t, "Zed  dev.zed.Zed\n", te.out.String())
}

func TestConfigCommands(t *testing.T) {
	te := setupEnv(t)

	require.NoError(t, te.run(t, "config", "set", "editor", "dev.zed.Zed"))
	saved, err := config.Load(te.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "dev.zed.Zed", saved.Editor)

	te.out.Reset()
	require.NoError(t, te.run(t, "config", "get", "editor"))
	assert.Equal(t, "dev.zed.Zed\n", te.out.String())

	te.out.Reset()
	require.NoError(t, te.run(t, "config", "list"))
	assert.Contains(t, te.out.String(), `editor = "dev.zed.Zed"`)

	assert.Error(t, te.run(t, "config", "set", "storage.backend", "redis"))
	_, err = os.Stat(te.ConfigPath)
	assert.NoError(t, err)
}

func TestHelp(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	WriteCommandHelp(&buf, "preset add")
	assert.Contains(t, buf.String(), "Usage: ngi preset add <name>")
	assert.Contains(t, buf.String(), "--path, -p <value>")

	buf.Reset()
	WriteGeneralHelp(&buf)
	assert.Contains(t, buf.String(), "create")
	assert.Contains(t, buf.String(), "preset list")
}
