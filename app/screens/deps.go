package screens

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/project"
	"github.com/Guerrilla-Interactive/nextgen-init/app/screens/shared"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

// Deps are the services screens call into. Every I/O call runs inside a
// tea.Cmd so the UI never blocks.
type Deps struct {
	Ctx          context.Context
	Config       config.Config
	Store        *preset.Store
	Editor       *workflow.Editor
	Materializer *materialize.Materializer
	Apps         apps.Lister
	History      *project.History
	// Watch reports external changes to the preset collection. Optional.
	Watch func(ctx context.Context) (<-chan struct{}, error)
	// Clipboard copies text. Optional.
	Clipboard func(string) error
	Logger    *slog.Logger
}

func (d *Deps) ctx() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// PresetsLoadedMsg carries a fresh copy of the stored presets.
type PresetsLoadedMsg struct {
	Presets []preset.Preset
	Err     error
}

// AppsLoadedMsg carries the installed applications.
type AppsLoadedMsg struct {
	Apps []apps.Application
	Err  error
}

// LastProjectMsg carries the most recently created project from history.
type LastProjectMsg struct {
	Entry project.Entry
}

// PresetsChangedMsg reports that the preset collection changed on disk.
type PresetsChangedMsg struct {
	ch <-chan struct{}
}

// PresetSavedMsg is the outcome of the preset form.
type PresetSavedMsg struct {
	Action notify.Action
	Preset preset.Preset
	Err    error
}

// PresetDeletedMsg is the outcome of a delete confirmation.
type PresetDeletedMsg struct {
	Name string
	Err  error
}

// ProjectCreatedMsg is the outcome of the create project form.
type ProjectCreatedMsg struct {
	Path string
	Err  error
}

// InitCmd loads presets and applications and starts watching for changes.
func InitCmd(d *Deps) tea.Cmd {
	return tea.Batch(LoadPresetsCmd(d), LoadAppsCmd(d), LoadLastProjectCmd(d), WatchPresetsCmd(d))
}

// LoadLastProjectCmd reads the newest history entry.
func LoadLastProjectCmd(d *Deps) tea.Cmd {
	if d.History == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok, err := d.History.Last(d.ctx())
		if err != nil {
			d.logger().Warn("Failed to read project history", "error", err)
			return nil
		}
		if !ok {
			return nil
		}
		return LastProjectMsg{Entry: e}
	}
}

// LoadPresetsCmd reads the preset collection.
func LoadPresetsCmd(d *Deps) tea.Cmd {
	return func() tea.Msg {
		list, err := d.Store.List(d.ctx())
		return PresetsLoadedMsg{Presets: list, Err: err}
	}
}

// LoadAppsCmd enumerates installed applications.
func LoadAppsCmd(d *Deps) tea.Cmd {
	if d.Apps == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := d.Apps.List(d.ctx())
		return AppsLoadedMsg{Apps: list, Err: err}
	}
}

// WatchPresetsCmd subscribes to preset changes and waits for the first one.
func WatchPresetsCmd(d *Deps) tea.Cmd {
	if d.Watch == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := d.Watch(d.ctx())
		if err != nil {
			d.logger().Warn("Cannot watch presets", "error", err)
			return nil
		}
		return waitForChange(ch)()
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return PresetsChangedMsg{ch: ch}
	}
}

// HandleMsg applies results of asynchronous commands to the model.
func HandleMsg(m app.Model, msg tea.Msg, d *Deps) (app.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PresetsLoadedMsg:
		if msg.Err != nil {
			d.logger().Error("Failed to load presets", "error", msg.Err)
			return shared.Show(m, notify.FromError(m.Locale, notify.ActionLoad, msg.Err)), nil
		}
		m.Presets = sortPresets(msg.Presets)
		m = clampCreateSelection(m)
		m = refreshList(m)
		return m, nil

	case AppsLoadedMsg:
		if msg.Err != nil {
			d.logger().Warn("Failed to list applications", "error", msg.Err)
			return m, nil
		}
		m.Apps = msg.Apps
		return m, nil

	case LastProjectMsg:
		if m.LastCreatedPath == "" {
			m.LastCreatedPath = msg.Entry.Path
		}
		return m, nil

	case PresetsChangedMsg:
		d.logger().Debug("Presets changed on disk")
		return m, tea.Batch(LoadPresetsCmd(d), waitForChange(msg.ch))

	case PresetSavedMsg:
		m.FormBusy = false
		if msg.Err != nil {
			return shared.Show(m, notify.FromError(m.Locale, msg.Action, msg.Err)), nil
		}
		m = shared.Show(m, notify.Success(m.Locale, msg.Action, msg.Preset.Name))
		if msg.Action == notify.ActionEdit {
			m.CurrentScreen = app.ScreenPresetList
		} else {
			m.CurrentScreen = app.ScreenHome
		}
		return m, LoadPresetsCmd(d)

	case PresetDeletedMsg:
		m.ConfirmDelete = ""
		if msg.Err != nil {
			return shared.Show(m, notify.FromError(m.Locale, notify.ActionDelete, msg.Err)), nil
		}
		return shared.Show(m, notify.Success(m.Locale, notify.ActionDelete, msg.Name)), LoadPresetsCmd(d)

	case ProjectCreatedMsg:
		m.Creating = false
		m.CancelCreate = nil
		if msg.Err != nil {
			return shared.Show(m, notify.FromError(m.Locale, notify.ActionCreate, msg.Err)), nil
		}
		m = shared.Show(m, notify.Success(m.Locale, notify.ActionCreate, msg.Path))
		m.LastCreatedPath = msg.Path
		m.ProjectName.Reset()
		m.CurrentScreen = app.ScreenHome
		m.HomeIndex = 0
		return m, nil
	}
	return m, nil
}

func sortPresets(list []preset.Preset) []preset.Preset {
	out := append([]preset.Preset(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
