package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/screens/shared"
)

// OpenPresetList switches to the manage presets screen.
func OpenPresetList(m app.Model) app.Model {
	m.CurrentScreen = app.ScreenPresetList
	m.ConfirmDelete = ""
	return refreshList(m)
}

// refreshList recomputes the filtered view of m.Presets. With an empty filter
// every preset is shown in stored order; otherwise fuzzy matches by score.
func refreshList(m app.Model) app.Model {
	query := strings.TrimSpace(m.ListFilter.Value())
	m.FilteredIndex = make([]int, 0, len(m.Presets))
	if query == "" {
		for i := range m.Presets {
			m.FilteredIndex = append(m.FilteredIndex, i)
		}
	} else {
		names := make([]string, len(m.Presets))
		for i, p := range m.Presets {
			names[i] = p.Name
		}
		for _, match := range fuzzy.Find(query, names) {
			m.FilteredIndex = append(m.FilteredIndex, match.Index)
		}
	}

	m.ListPaginator.SetTotalPages(len(m.FilteredIndex))
	if m.ListIndex >= len(m.FilteredIndex) {
		m.ListIndex = max(len(m.FilteredIndex)-1, 0)
	}
	m.ListPaginator.Page = m.ListIndex / m.ListPaginator.PerPage
	return m
}

// listSelection returns the highlighted preset.
func listSelection(m app.Model) (preset.Preset, bool) {
	if m.ListIndex < 0 || m.ListIndex >= len(m.FilteredIndex) {
		return preset.Preset{}, false
	}
	return m.Presets[m.FilteredIndex[m.ListIndex]], true
}

// UpdateScreenPresetList handles the manage presets screen.
func UpdateScreenPresetList(m app.Model, msg tea.KeyMsg, d *Deps) (app.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	if m.ConfirmDelete != "" {
		switch {
		case key.Matches(msg, keys.Yes):
			return m, deletePresetCmd(d, m.ConfirmDelete)
		case key.Matches(msg, keys.No):
			m.ConfirmDelete = ""
		}
		return m, nil
	}

	if m.Filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.Filtering = false
			m.ListFilter.Blur()
			m.ListFilter.Reset()
			return refreshList(m), nil
		case tea.KeyEnter:
			m.Filtering = false
			m.ListFilter.Blur()
			return m, nil
		case tea.KeyUp, tea.KeyDown:
			return moveListCursor(m, msg.Type == tea.KeyDown), nil
		}
		var cmd tea.Cmd
		m.ListFilter, cmd = m.ListFilter.Update(msg)
		m.ListIndex = 0
		return refreshList(m), cmd
	}

	switch {
	case key.Matches(msg, keys.Back):
		if m.ListFilter.Value() != "" {
			m.ListFilter.Reset()
			return refreshList(m), nil
		}
		m.CurrentScreen = app.ScreenHome
	case key.Matches(msg, keys.Filter):
		m.Filtering = true
		cmd := m.ListFilter.Focus()
		return m, cmd
	case key.Matches(msg, keys.Up):
		m = moveListCursor(m, false)
	case key.Matches(msg, keys.Down):
		m = moveListCursor(m, true)
	case key.Matches(msg, keys.Left):
		if m.ListPaginator.Page > 0 {
			m.ListIndex = (m.ListPaginator.Page - 1) * m.ListPaginator.PerPage
		}
		m.ListPaginator.Page = m.ListIndex / m.ListPaginator.PerPage
	case key.Matches(msg, keys.Right):
		if !m.ListPaginator.OnLastPage() {
			m.ListIndex = (m.ListPaginator.Page + 1) * m.ListPaginator.PerPage
		}
		m.ListPaginator.Page = m.ListIndex / m.ListPaginator.PerPage
	case key.Matches(msg, keys.Add):
		return OpenAddForm(m, d)
	case key.Matches(msg, keys.Edit):
		if p, ok := listSelection(m); ok {
			return OpenEditForm(m, p)
		}
	case key.Matches(msg, keys.Delete):
		if p, ok := listSelection(m); ok {
			m.ConfirmDelete = p.Name
		}
	}
	return m, nil
}

func moveListCursor(m app.Model, down bool) app.Model {
	n := len(m.FilteredIndex)
	if n == 0 {
		return m
	}
	if down {
		m.ListIndex = (m.ListIndex + 1) % n
	} else {
		m.ListIndex = (m.ListIndex + n - 1) % n
	}
	m.ListPaginator.Page = m.ListIndex / m.ListPaginator.PerPage
	return m
}

func deletePresetCmd(d *Deps, name string) tea.Cmd {
	return func() tea.Msg {
		return PresetDeletedMsg{Name: name, Err: d.Editor.Delete(d.ctx(), name)}
	}
}

// ViewScreenPresetList renders the list with the selected preset's details.
func ViewScreenPresetList(m app.Model) string {
	loc := m.Locale
	header := app.TitleStyle.Render(i18n.T(loc, i18n.PresetManage))

	var left strings.Builder
	if m.Filtering || m.ListFilter.Value() != "" {
		left.WriteString(m.ListFilter.View() + "\n\n")
	}
	if len(m.FilteredIndex) == 0 {
		left.WriteString(app.ChoiceStyle.Render(i18n.T(loc, i18n.PresetNone)) + "\n")
		if len(m.Presets) == 0 {
			left.WriteString(app.HelpStyle.Render(i18n.T(loc, i18n.PresetAddFirst)) + "\n")
		}
	}
	start, end := m.ListPaginator.GetSliceBounds(len(m.FilteredIndex))
	leftWidth := shared.ComputeLeftPanelWidth(m.TerminalWidth)
	for i := start; i < end; i++ {
		name := shared.Truncate(m.Presets[m.FilteredIndex[i]].Name, leftWidth-8)
		if i == m.ListIndex {
			left.WriteString(app.HighlightStyle.Render("> "+name) + "\n")
		} else {
			left.WriteString(app.ChoiceStyle.Render("  "+name) + "\n")
		}
	}
	if m.ListPaginator.TotalPages > 1 {
		left.WriteString("\n" + m.ListPaginator.View())
	}
	leftPanel := app.PanelStyle.Width(leftWidth).Render(strings.TrimRight(left.String(), "\n"))

	rightWidth := shared.ComputeRightPanelWidth(m.TerminalWidth, leftWidth, 2)
	var details string
	if p, ok := listSelection(m); ok {
		details = listDetails(loc, p, rightWidth-4)
	}
	rightPanel := lipgloss.NewStyle().Padding(1, 2).Width(rightWidth).Render(details)

	parts := []string{header, lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, "  ", rightPanel)}
	if m.ConfirmDelete != "" {
		prompt := i18n.T(loc, i18n.PresetConfirmDelete) + " " + i18n.Tf(loc, i18n.PresetDeleteMessage, m.ConfirmDelete)
		parts = append(parts, app.ErrorStyle.Render(prompt), shared.Footer(helpLine(keys.Yes, keys.No)...))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	if t := shared.Toast(m); t != "" {
		parts = append(parts, t)
	}
	var footer []string
	if m.Filtering {
		footer = []string{"enter apply", "esc clear"}
	} else {
		footer = helpLine(keys.Up, keys.Down, keys.Left, keys.Right, keys.Filter, keys.Edit, keys.Delete, keys.Add, keys.Back)
	}
	parts = append(parts, shared.Footer(footer...))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func listDetails(loc string, p preset.Preset, width int) string {
	command := p.Command
	if !p.HasCommand() {
		command = i18n.T(loc, i18n.PresetNoCommand)
	}
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render(i18n.T(loc, i18n.PresetDetails)) + "\n\n")
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(loc, i18n.CommonName), p.Name)
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(loc, i18n.CommonPath), app.PathStyle.Render(p.BasePath()))
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(loc, i18n.CommonApp), p.EditorID)
	fmt.Fprintf(&b, "%s: %s", i18n.T(loc, i18n.CommonCommand), command)
	return shared.WrapText(b.String(), width)
}
