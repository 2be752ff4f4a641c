package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/project"
	"github.com/Guerrilla-Interactive/nextgen-init/app/screens/shared"
)

// createOptions lists stored presets followed by quick presets whose label
// no stored preset already uses.
func createOptions(m app.Model) []preset.Preset {
	seen := make(map[string]bool, len(m.Presets))
	out := make([]preset.Preset, 0, len(m.Presets)+len(m.QuickPresets))
	for _, p := range m.Presets {
		seen[p.Name] = true
		out = append(out, p)
	}
	for _, p := range m.QuickPresets {
		if !seen[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func isQuick(m app.Model, index int) bool {
	return index >= len(m.Presets)
}

func clampCreateSelection(m app.Model) app.Model {
	n := len(createOptions(m))
	if m.PresetIndex >= n {
		m.PresetIndex = max(n-1, 0)
	}
	return m
}

// OpenCreateProject switches to the create project form.
func OpenCreateProject(m app.Model) (app.Model, tea.Cmd) {
	m.CurrentScreen = app.ScreenCreateProject
	m = clampCreateSelection(m)
	cmd := m.ProjectName.Focus()
	return m, cmd
}

// selectedPreset returns the chosen preset or nil when there are none.
func selectedPreset(m app.Model) *preset.Preset {
	opts := createOptions(m)
	if m.PresetIndex < 0 || m.PresetIndex >= len(opts) {
		return nil
	}
	p := opts[m.PresetIndex]
	return &p
}

// UpdateScreenCreateProject handles the project name input and preset choice.
func UpdateScreenCreateProject(m app.Model, msg tea.KeyMsg, d *Deps) (app.Model, tea.Cmd) {
	if m.Creating {
		// Only cancellation is accepted while the init command runs.
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Back) {
			if m.CancelCreate != nil {
				m.CancelCreate()
			}
		}
		return m, nil
	}

	n := len(createOptions(m))
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.ProjectName.Blur()
		m.CurrentScreen = app.ScreenHome
		return m, nil
	case msg.Type == tea.KeyUp:
		if n > 0 {
			m.PresetIndex = (m.PresetIndex + n - 1) % n
		}
		return m, nil
	case msg.Type == tea.KeyDown:
		if n > 0 {
			m.PresetIndex = (m.PresetIndex + 1) % n
		}
		return m, nil
	case key.Matches(msg, keys.Enter):
		return startCreate(m, d)
	}

	var cmd tea.Cmd
	m.ProjectName, cmd = m.ProjectName.Update(msg)
	return m, cmd
}

func startCreate(m app.Model, d *Deps) (app.Model, tea.Cmd) {
	p := selectedPreset(m)
	stored := p != nil && !isQuick(m, m.PresetIndex)
	name := m.ProjectName.Value()

	ctx, cancel := context.WithCancel(d.ctx())
	m.Creating = true
	m.CancelCreate = cancel
	return m, func() tea.Msg {
		defer cancel()
		if stored {
			// The list may be stale; a preset deleted meanwhile counts as no selection.
			fresh, ok, err := d.Store.Get(ctx, p.Name)
			if err != nil {
				return ProjectCreatedMsg{Err: err}
			}
			p = nil
			if ok {
				p = &fresh
			}
		}
		path, err := d.Materializer.CreateProject(ctx, p, name)
		if err == nil {
			recordProject(ctx, d, p.Name, path)
		}
		return ProjectCreatedMsg{Path: path, Err: err}
	}
}

// recordProject adds path to the history. Failures are only logged.
func recordProject(ctx context.Context, d *Deps, presetName, path string) {
	if d.History == nil {
		return
	}
	entry := project.Entry{Path: path, Preset: presetName}
	if info, ok := project.Detect(path); ok {
		entry.Info = &info
	}
	if err := d.History.Record(ctx, entry); err != nil {
		d.logger().Warn("Could not record project", "path", path, "error", err)
	}
}

// ViewScreenCreateProject renders the form with the selected preset's details.
func ViewScreenCreateProject(m app.Model, d *Deps) string {
	loc := m.Locale
	header := app.TitleStyle.Render(i18n.T(loc, i18n.ProjectCreate))

	var left strings.Builder
	left.WriteString(app.SubtitleStyle.Render(i18n.T(loc, i18n.ProjectName)) + "\n")
	left.WriteString(m.ProjectName.View() + "\n\n")
	left.WriteString(app.SubtitleStyle.Render(i18n.T(loc, i18n.ProjectSelectPreset)) + "\n")

	opts := createOptions(m)
	if len(opts) == 0 {
		left.WriteString(app.ChoiceStyle.Render("  "+i18n.T(loc, i18n.PresetNone)) + "\n")
		left.WriteString(app.HelpStyle.Render("  "+i18n.T(loc, i18n.PresetAddFirst)) + "\n")
	}
	for i, p := range opts {
		line := app.ChoiceStyle.Render("  " + p.Name)
		if i == m.PresetIndex {
			line = app.HighlightStyle.Render("> " + p.Name)
		}
		if isQuick(m, i) {
			line += app.PathStyle.Render(" (quick)")
		}
		left.WriteString(line + "\n")
	}

	leftWidth := shared.ComputeLeftPanelWidth(m.TerminalWidth)
	leftPanel := app.PanelStyle.Width(leftWidth).Render(strings.TrimRight(left.String(), "\n"))

	rightWidth := shared.ComputeRightPanelWidth(m.TerminalWidth, leftWidth, 2)
	rightPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Width(rightWidth).
		Render(presetDetails(m, d, selectedPreset(m), rightWidth-4))

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, "  ", rightPanel)

	parts := []string{header, body}
	if m.Creating {
		parts = append(parts, app.HighlightStyle.Render(i18n.T(loc, i18n.ProjectCreating)))
		parts = append(parts, shared.Footer("esc cancel"))
	} else {
		if t := shared.Toast(m); t != "" {
			parts = append(parts, t)
		}
		parts = append(parts, shared.Footer("↑/↓ preset", "enter "+strings.ToLower(i18n.T(loc, i18n.CommonCreate)), "esc back"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// presetDetails shows where the project will be created and what runs there.
func presetDetails(m app.Model, d *Deps, p *preset.Preset, width int) string {
	loc := m.Locale
	if p == nil {
		return app.HelpStyle.Render(i18n.T(loc, i18n.ProjectNoPreset))
	}

	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render(i18n.T(loc, i18n.PresetDetails)) + "\n\n")

	target := p.BasePath()
	name := strings.TrimSpace(m.ProjectName.Value())
	if name == "" {
		name = "<" + strings.ToLower(i18n.T(loc, i18n.ProjectName)) + ">"
	}
	if d != nil && d.Materializer != nil {
		if resolved, err := d.Materializer.ResolveTarget(p, name); err == nil {
			target = resolved
		}
	}
	command := p.Command
	if !p.HasCommand() {
		command = i18n.T(loc, i18n.PresetNoCommand)
	}

	fmt.Fprintf(&b, "%s: %s\n", i18n.T(loc, i18n.CommonPath), app.PathStyle.Render(target))
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(loc, i18n.CommonApp), p.EditorID)
	fmt.Fprintf(&b, "%s: %s", i18n.T(loc, i18n.CommonCommand), command)
	return shared.WrapText(b.String(), width)
}
