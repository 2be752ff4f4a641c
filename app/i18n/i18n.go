// Package i18n maps message keys to display strings for the supported
// languages. Lookups are pure; nothing here reads ambient state.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Key identifies a message.
type Key string

const (
	CommonSave    Key = "common.save"
	CommonDelete  Key = "common.delete"
	CommonCancel  Key = "common.cancel"
	CommonCreate  Key = "common.create"
	CommonEdit    Key = "common.edit"
	CommonName    Key = "common.name"
	CommonPath    Key = "common.path"
	CommonCommand Key = "common.command"
	CommonApp     Key = "common.app"
	CommonQuit    Key = "common.quit"
	CommonBack    Key = "common.back"

	PresetAdd           Key = "preset.add"
	PresetEdit          Key = "preset.edit"
	PresetDelete        Key = "preset.delete"
	PresetDetails       Key = "preset.details"
	PresetNameExists    Key = "preset.nameExists"
	PresetChooseName    Key = "preset.chooseName"
	PresetSaved         Key = "preset.saved"
	PresetDeleted       Key = "preset.deleted"
	PresetSaveFailed    Key = "preset.saveFailed"
	PresetLoadFailed    Key = "preset.loadFailed"
	PresetConfirmDelete Key = "preset.confirmDelete"
	PresetDeleteMessage Key = "preset.deleteMessage"
	PresetDeleteFailed  Key = "preset.deleteFailed"
	PresetUpdated       Key = "preset.updated"
	PresetUpdateFailed  Key = "preset.updateFailed"
	PresetNone          Key = "preset.noPresets"
	PresetAddFirst      Key = "preset.addFirst"
	PresetSearch        Key = "preset.searchPlaceholder"
	PresetNoCommand     Key = "preset.noCommand"
	PresetManage        Key = "preset.manage"

	ProjectCreate       Key = "project.create"
	ProjectName         Key = "project.name"
	ProjectCreated      Key = "project.created"
	ProjectFailed       Key = "project.failed"
	ProjectNoPreset     Key = "project.noPreset"
	ProjectNeedName     Key = "project.needName"
	ProjectNoBaseFolder Key = "project.noBaseFolder"
	ProjectCreating     Key = "project.creating"
	ProjectSelectPreset Key = "project.selectPreset"
	ProjectFolderFailed Key = "project.folderFailed"
	ProjectInitFailed   Key = "project.initFailed"
	ProjectLaunchFailed Key = "project.launchFailed"

	FormPresetName     Key = "form.presetName"
	FormBaseFolder     Key = "form.baseFolder"
	FormIDEApp         Key = "form.ideApp"
	FormInitCommand    Key = "form.initCommand"
	FormFillAll        Key = "form.fillAll"
	FormNameRequired   Key = "form.nameRequired"
	FormFolderRequired Key = "form.folderRequired"
	FormAppRequired    Key = "form.appRequired"
)

// Supported lists the available languages; the first is the fallback.
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

var (
	matcher = language.NewMatcher(Supported)
	tables  = []map[Key]string{en, zhCN}
)

// Match returns the index into Supported that best serves locale.
func Match(locale string) int {
	if locale == "" {
		return 0
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return 0
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return 0
	}
	return idx
}

// T returns the message for key in locale, falling back to English and then
// to the key itself.
func T(locale string, key Key) string {
	if s, ok := tables[Match(locale)][key]; ok {
		return s
	}
	if s, ok := en[key]; ok {
		return s
	}
	return string(key)
}

// Tf formats the message for key with args.
func Tf(locale string, key Key, args ...any) string {
	return fmt.Sprintf(T(locale, key), args...)
}
