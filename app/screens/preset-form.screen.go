package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/screens/shared"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

const maxSuggestions = 5

var fieldLabels = [app.FieldCount]i18n.Key{
	app.FieldName:    i18n.FormPresetName,
	app.FieldPath:    i18n.FormBaseFolder,
	app.FieldEditor:  i18n.FormIDEApp,
	app.FieldCommand: i18n.FormInitCommand,
}

// OpenAddForm shows an empty preset form pre-filled with the configured
// default base folder and editor.
func OpenAddForm(m app.Model, d *Deps) (app.Model, tea.Cmd) {
	m.CurrentScreen = app.ScreenPresetForm
	m.FormMode = app.FormAdd
	m.FormOriginal = ""
	m.FormExtraPaths = nil
	m.FormBusy = false
	m.SuggestIndex = 0
	for i := range m.FormInputs {
		m.FormInputs[i].Reset()
	}
	if d != nil {
		m.FormInputs[app.FieldPath].SetValue(d.Config.BasePath)
		m.FormInputs[app.FieldEditor].SetValue(d.Config.Editor)
	}
	return focusField(m, app.FieldName)
}

// OpenEditForm shows the preset form filled with p.
func OpenEditForm(m app.Model, p preset.Preset) (app.Model, tea.Cmd) {
	m.CurrentScreen = app.ScreenPresetForm
	m.FormMode = app.FormEdit
	m.FormOriginal = p.Name
	m.FormExtraPaths = nil
	if len(p.Path) > 1 {
		m.FormExtraPaths = append([]string(nil), p.Path[1:]...)
	}
	m.FormBusy = false
	m.SuggestIndex = 0
	m.FormInputs[app.FieldName].SetValue(p.Name)
	m.FormInputs[app.FieldPath].SetValue(p.BasePath())
	m.FormInputs[app.FieldEditor].SetValue(p.EditorID)
	m.FormInputs[app.FieldCommand].SetValue(p.Command)
	return focusField(m, app.FieldName)
}

func focusField(m app.Model, field int) (app.Model, tea.Cmd) {
	m.FormFocus = field
	var cmd tea.Cmd
	for i := range m.FormInputs {
		if i == field {
			cmd = m.FormInputs[i].Focus()
		} else {
			m.FormInputs[i].Blur()
		}
	}
	return m, cmd
}

// formDraft collects the inputs. A blank base folder yields no path at all so
// that extra stored elements cannot silently become the base.
func formDraft(m app.Model) workflow.Draft {
	var path []string
	if base := strings.TrimSpace(m.FormInputs[app.FieldPath].Value()); base != "" {
		path = append([]string{base}, m.FormExtraPaths...)
	}
	return workflow.Draft{
		Name:     m.FormInputs[app.FieldName].Value(),
		Path:     path,
		EditorID: strings.TrimSpace(m.FormInputs[app.FieldEditor].Value()),
		Command:  m.FormInputs[app.FieldCommand].Value(),
	}
}

// editorSuggestions lists installed applications matching the editor input.
func editorSuggestions(m app.Model) []apps.Application {
	list := apps.Filter(m.Apps, m.FormInputs[app.FieldEditor].Value())
	if len(list) > maxSuggestions {
		list = list[:maxSuggestions]
	}
	return list
}

// UpdateScreenPresetForm handles the add and edit preset form.
func UpdateScreenPresetForm(m app.Model, msg tea.KeyMsg, d *Deps) (app.Model, tea.Cmd) {
	if m.FormBusy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		return closeForm(m), nil
	case key.Matches(msg, keys.Save):
		return submitForm(m, d)
	case key.Matches(msg, keys.Next):
		return focusField(m, (m.FormFocus+1)%app.FieldCount)
	case key.Matches(msg, keys.Prev):
		return focusField(m, (m.FormFocus+app.FieldCount-1)%app.FieldCount)
	case key.Matches(msg, keys.Enter):
		if m.FormFocus == app.FieldCount-1 {
			return submitForm(m, d)
		}
		return focusField(m, m.FormFocus+1)
	}

	if m.FormFocus == app.FieldEditor {
		switch {
		case key.Matches(msg, keys.Suggest):
			if n := len(editorSuggestions(m)); n > 0 {
				if msg.String() == "ctrl+p" {
					m.SuggestIndex = (m.SuggestIndex + n - 1) % n
				} else {
					m.SuggestIndex = (m.SuggestIndex + 1) % n
				}
			}
			return m, nil
		case key.Matches(msg, keys.Complete):
			if s := editorSuggestions(m); m.SuggestIndex < len(s) {
				m.FormInputs[app.FieldEditor].SetValue(s[m.SuggestIndex].ID)
				m.FormInputs[app.FieldEditor].CursorEnd()
				m.SuggestIndex = 0
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.FormInputs[m.FormFocus], cmd = m.FormInputs[m.FormFocus].Update(msg)
	if m.FormFocus == app.FieldEditor {
		m.SuggestIndex = 0
	}
	return m, cmd
}

func closeForm(m app.Model) app.Model {
	for i := range m.FormInputs {
		m.FormInputs[i].Blur()
	}
	if m.FormMode == app.FormEdit {
		m.CurrentScreen = app.ScreenPresetList
	} else {
		m.CurrentScreen = app.ScreenHome
	}
	return m
}

func submitForm(m app.Model, d *Deps) (app.Model, tea.Cmd) {
	draft := formDraft(m)
	mode, original := m.FormMode, m.FormOriginal
	m.FormBusy = true
	return m, func() tea.Msg {
		if mode == app.FormEdit {
			p, err := d.Editor.Edit(d.ctx(), original, draft)
			return PresetSavedMsg{Action: notify.ActionEdit, Preset: p, Err: err}
		}
		p, err := d.Editor.Add(d.ctx(), draft)
		return PresetSavedMsg{Action: notify.ActionAdd, Preset: p, Err: err}
	}
}

// ViewScreenPresetForm renders the preset form.
func ViewScreenPresetForm(m app.Model) string {
	loc := m.Locale
	title := i18n.T(loc, i18n.PresetAdd)
	if m.FormMode == app.FormEdit {
		title = i18n.T(loc, i18n.PresetEdit) + " " + app.PathStyle.Render(m.FormOriginal)
	}

	var b strings.Builder
	for i := range m.FormInputs {
		label := i18n.T(loc, fieldLabels[i])
		if i == m.FormFocus {
			b.WriteString(app.HighlightStyle.Render(label) + "\n")
		} else {
			b.WriteString(app.SubtitleStyle.Render(label) + "\n")
		}
		b.WriteString(m.FormInputs[i].View() + "\n")
		if i == app.FieldEditor && m.FormFocus == app.FieldEditor {
			for j, a := range editorSuggestions(m) {
				line := shared.Truncate(a.Name+"  "+a.ID, shared.ComputeLeftPanelWidth(m.TerminalWidth)-6)
				if j == m.SuggestIndex {
					b.WriteString(app.HighlightStyle.Render("  › "+line) + "\n")
				} else {
					b.WriteString(app.ChoiceStyle.Render("    "+line) + "\n")
				}
			}
		}
		if i < len(m.FormInputs)-1 {
			b.WriteString("\n")
		}
	}
	if len(m.FormExtraPaths) > 0 {
		b.WriteString("\n" + app.PathStyle.Render("+ "+strings.Join(m.FormExtraPaths, ", ")))
	}

	width := shared.ComputeLeftPanelWidth(m.TerminalWidth) + 16
	panel := app.PanelStyle.Width(width).Render(b.String())

	parts := []string{app.TitleStyle.Render(title), panel}
	if t := shared.Toast(m); t != "" {
		parts = append(parts, t)
	}
	footer := helpLine(keys.Next, keys.Save)
	if m.FormFocus == app.FieldEditor {
		footer = append(footer, helpLine(keys.Suggest, keys.Complete)...)
	}
	footer = append(footer, helpLine(keys.Back)...)
	parts = append(parts, shared.Footer(footer...))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
