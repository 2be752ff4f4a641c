package app

import (
	"context"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenCreateProject
	ScreenPresetForm
	ScreenPresetList
)

// FormMode says whether the preset form adds or edits.
type FormMode int

const (
	FormAdd FormMode = iota
	FormEdit
)

// Preset form field order.
const (
	FieldName = iota
	FieldPath
	FieldEditor
	FieldCommand
	FieldCount
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen  Screen
	TerminalWidth  int
	TerminalHeight int
	Locale         string
	Version        string

	// Toast is the last notification; cleared on the next key press.
	Toast    notify.Notification
	HasToast bool

	HomeIndex       int
	LastCreatedPath string

	Presets      []preset.Preset
	QuickPresets []preset.Preset
	Apps         []apps.Application

	// Create project form.
	ProjectName  textinput.Model
	PresetIndex  int
	Creating     bool
	CancelCreate context.CancelFunc

	// Preset form.
	FormMode     FormMode
	FormOriginal string
	// FormExtraPaths holds stored path elements beyond the first; the form
	// edits only the base folder but writes these back unchanged.
	FormExtraPaths []string
	FormInputs     []textinput.Model
	FormFocus      int
	FormBusy       bool
	SuggestIndex   int

	// Preset list.
	ListFilter    textinput.Model
	Filtering     bool
	ListIndex     int
	ListPaginator paginator.Model
	ConfirmDelete string
	FilteredIndex []int // indexes into Presets after fuzzy filtering
}

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).MarginTop(1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2).Margin(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	SuccessStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4672"))
	PanelStyle     = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
)
