package args

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/i18n"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
)

// PresetListCommand prints the stored presets.
type PresetListCommand struct{}

func init() {
	RegisterCommand(&PresetListCommand{})
}

func (c *PresetListCommand) Name() string { return "preset list" }

func (c *PresetListCommand) Description() string {
	return "Lists the stored project presets."
}

func (c *PresetListCommand) Usage() string { return "" }
func (c *PresetListCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }
func (c *PresetListCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *PresetListCommand) Execute(env *Env, args cli.CommandArgs) error {
	presets, err := env.Store.List(env.context())
	if err != nil {
		return env.fail(notify.ActionLoad, err)
	}
	if len(presets) == 0 {
		fmt.Fprintln(env.Out, i18n.T(env.locale(), i18n.PresetNone))
		fmt.Fprintln(env.Out, i18n.T(env.locale(), i18n.PresetAddFirst))
		return nil
	}
	sort.SliceStable(presets, func(i, j int) bool {
		return strings.ToLower(presets[i].Name) < strings.ToLower(presets[j].Name)
	})
	writePresets(env, presets)
	return nil
}

var (
	nameColor  = color.New(color.Bold)
	labelColor = color.New(color.Faint)
)

// writePresets prints one block per preset.
func writePresets(env *Env, presets []preset.Preset) {
	loc := env.locale()
	for i, p := range presets {
		if i > 0 {
			fmt.Fprintln(env.Out)
		}
		nameColor.Fprintln(env.Out, p.Name)
		command := p.Command
		if !p.HasCommand() {
			command = i18n.T(loc, i18n.PresetNoCommand)
		}
		for _, row := range [][2]string{
			{i18n.T(loc, i18n.CommonPath), strings.Join(p.Path, ", ")},
			{i18n.T(loc, i18n.CommonApp), p.EditorID},
			{i18n.T(loc, i18n.CommonCommand), command},
		} {
			fmt.Fprintf(env.Out, "  %s %s\n", labelColor.Sprintf("%-8s", row[0]+":"), row[1])
		}
	}
}
