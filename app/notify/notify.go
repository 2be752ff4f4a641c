// Package notify turns workflow outcomes into the single user-visible
// notification each action ends with.
package notify

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

type Style int

const (
	StyleSuccess Style = iota
	StyleFailure
)

// Notification is a short title plus optional detail.
type Notification struct {
	Style   Style
	Kind    apperr.Kind // zero for successes
	Title   string
	Message string
}

// Action names the user-level operation an outcome belongs to.
type Action int

const (
	ActionLoad Action = iota
	ActionAdd
	ActionEdit
	ActionDelete
	ActionCreate
)

var failureTitles = map[Action]i18n.Key{
	ActionLoad:   i18n.PresetLoadFailed,
	ActionAdd:    i18n.PresetSaveFailed,
	ActionEdit:   i18n.PresetUpdateFailed,
	ActionDelete: i18n.PresetDeleteFailed,
	ActionCreate: i18n.ProjectFailed,
}

var successTitles = map[Action]i18n.Key{
	ActionAdd:    i18n.PresetSaved,
	ActionEdit:   i18n.PresetUpdated,
	ActionDelete: i18n.PresetDeleted,
	ActionCreate: i18n.ProjectCreated,
}

// Validation reasons by action. Both workflows use "name required", so the
// action picks the message.
var reasonKeys = map[Action]map[string]i18n.Key{
	ActionCreate: {
		materialize.ReasonNoPreset:     i18n.ProjectNoPreset,
		materialize.ReasonNameRequired: i18n.ProjectNeedName,
		materialize.ReasonNoBaseFolder: i18n.ProjectNoBaseFolder,
	},
	ActionAdd:  presetReasons,
	ActionEdit: presetReasons,
}

var presetReasons = map[string]i18n.Key{
	workflow.ReasonNameRequired:   i18n.FormNameRequired,
	workflow.ReasonFolderRequired: i18n.FormFolderRequired,
	workflow.ReasonAppRequired:    i18n.FormAppRequired,
}

var kindKeys = map[apperr.Kind]i18n.Key{
	apperr.KindFilesystem: i18n.ProjectFolderFailed,
	apperr.KindCommand:    i18n.ProjectInitFailed,
	apperr.KindLaunch:     i18n.ProjectLaunchFailed,
}

// Success builds the notification for a completed action. detail is shown as
// the message, e.g. the created project path.
func Success(locale string, action Action, detail string) Notification {
	return Notification{
		Style:   StyleSuccess,
		Title:   i18n.T(locale, successTitles[action]),
		Message: detail,
	}
}

// FromError builds the failure notification for err raised by action.
func FromError(locale string, action Action, err error) Notification {
	kind := apperr.KindOf(err)
	n := Notification{Style: StyleFailure, Kind: kind}

	switch kind {
	case apperr.KindNameCollision:
		n.Title = i18n.T(locale, i18n.PresetNameExists)
		n.Message = i18n.T(locale, i18n.PresetChooseName)
	case apperr.KindValidation:
		if key, ok := reasonKeys[action][apperr.Reason(err)]; ok {
			n.Title = i18n.T(locale, key)
		} else {
			n.Title = i18n.T(locale, i18n.FormFillAll)
			n.Message = apperr.Reason(err)
		}
	default:
		n.Title = i18n.T(locale, failureTitles[action])
		n.Message = cause(err)
		if key, ok := kindKeys[kind]; ok {
			n.Message = i18n.T(locale, key) + ": " + n.Message
		}
	}
	return n
}

// cause is the innermost useful error text.
func cause(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return apperr.Reason(err)
}

var (
	successMark = color.New(color.FgGreen, color.Bold).SprintFunc()
	failureMark = color.New(color.FgRed, color.Bold).SprintFunc()
	dim         = color.New(color.Faint).SprintFunc()
)

// Print writes n to w as one or two lines.
func Print(w io.Writer, n Notification) {
	mark := successMark("✓")
	if n.Style == StyleFailure {
		mark = failureMark("✗")
	}
	fmt.Fprintf(w, "%s %s\n", mark, n.Title)
	if n.Message != "" {
		fmt.Fprintf(w, "  %s\n", dim(n.Message))
	}
}

// String renders n without colour.
func (n Notification) String() string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + ": " + n.Message
}
