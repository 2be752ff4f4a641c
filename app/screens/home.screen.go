package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/screens/shared"
)

type homeItem struct {
	label i18n.Key
	open  func(app.Model, *Deps) (app.Model, tea.Cmd)
}

var homeItems = []homeItem{
	{i18n.ProjectCreate, func(m app.Model, d *Deps) (app.Model, tea.Cmd) { return OpenCreateProject(m) }},
	{i18n.PresetAdd, func(m app.Model, d *Deps) (app.Model, tea.Cmd) { return OpenAddForm(m, d) }},
	{i18n.PresetManage, func(m app.Model, d *Deps) (app.Model, tea.Cmd) { return OpenPresetList(m), nil }},
	{i18n.CommonQuit, func(m app.Model, d *Deps) (app.Model, tea.Cmd) { return m, tea.Quit }},
}

// UpdateScreenHome handles the top-level menu.
func UpdateScreenHome(m app.Model, msg tea.KeyMsg, d *Deps) (app.Model, tea.Cmd) {
	n := len(homeItems)
	switch {
	case key.Matches(msg, keys.Quit), msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.HomeIndex = (m.HomeIndex + n - 1) % n
	case key.Matches(msg, keys.Down):
		m.HomeIndex = (m.HomeIndex + 1) % n
	case key.Matches(msg, keys.Enter):
		return homeItems[m.HomeIndex].open(m, d)
	case key.Matches(msg, keys.Copy):
		if m.LastCreatedPath != "" && d.Clipboard != nil {
			if err := d.Clipboard(m.LastCreatedPath); err != nil {
				d.logger().Warn("Clipboard copy failed", "error", err)
			}
		}
	}
	return m, nil
}

// ViewScreenHome renders the top-level menu.
func ViewScreenHome(m app.Model) string {
	var b strings.Builder
	for i, item := range homeItems {
		label := i18n.T(m.Locale, item.label)
		if i == m.HomeIndex {
			b.WriteString(app.HighlightStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString(app.ChoiceStyle.Render("  "+label) + "\n")
		}
	}
	panel := app.PanelStyle.Width(shared.ComputeLeftPanelWidth(m.TerminalWidth)).Render(strings.TrimRight(b.String(), "\n"))

	header := app.TitleStyle.Render("nextgen-init") + " " + app.PathStyle.Render(m.Version)
	parts := []string{header, panel}
	if m.LastCreatedPath != "" {
		parts = append(parts, shared.FolderHeader(m.LastCreatedPath)+" "+app.PathStyle.Render(m.LastCreatedPath))
	}
	if t := shared.Toast(m); t != "" {
		parts = append(parts, t)
	}
	footer := helpLine(keys.Up, keys.Down, keys.Enter)
	if m.LastCreatedPath != "" {
		footer = append(footer, helpLine(keys.Copy)...)
	}
	footer = append(footer, "q quit")
	parts = append(parts, shared.Footer(footer...))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
