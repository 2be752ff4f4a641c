package screens

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
)

const listPerPage = 8

// NewModel builds the initial model for cfg.
func NewModel(cfg config.Config, version string) app.Model {
	loc := cfg.Language

	name := newInput(i18n.T(loc, i18n.ProjectName), 128)

	filter := newInput(i18n.T(loc, i18n.PresetSearch), 64)
	filter.Prompt = "/ "

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = listPerPage
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3600")).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	inputs := make([]textinput.Model, app.FieldCount)
	inputs[app.FieldName] = newInput(i18n.T(loc, i18n.FormPresetName), 64)
	inputs[app.FieldPath] = newInput(i18n.T(loc, i18n.FormBaseFolder), 512)
	inputs[app.FieldEditor] = newInput(i18n.T(loc, i18n.FormIDEApp), 256)
	inputs[app.FieldCommand] = newInput(i18n.T(loc, i18n.FormInitCommand), 1024)

	return app.Model{
		CurrentScreen:  app.ScreenHome,
		TerminalWidth:  80,
		TerminalHeight: 24,
		Locale:         loc,
		Version:        version,
		QuickPresets:   materialize.QuickPresets(cfg),
		ProjectName:    name,
		FormInputs:     inputs,
		ListFilter:     filter,
		ListPaginator:  p,
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 48
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}
