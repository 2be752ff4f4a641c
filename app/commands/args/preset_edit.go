package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

// PresetEditCommand changes fields of an existing preset, renaming it when
// --name is given.
type PresetEditCommand struct{}

func init() {
	RegisterCommand(&PresetEditCommand{})
}

func (c *PresetEditCommand) Name() string { return "preset edit" }

func (c *PresetEditCommand) Description() string {
	return "Edits or renames a project preset."
}

func (c *PresetEditCommand) Usage() string {
	return "<name> [--name <new>] [--path <dir>] [--editor <app-id>] [--command <cmd>]"
}

func (c *PresetEditCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "name", Description: "Current preset name.", Required: true},
	}
}

func (c *PresetEditCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "name", ShortName: "n", Description: "New preset name.", HasValue: true},
		{Name: "path", ShortName: "p", Description: "New base folder. Extra stored folders are kept.", HasValue: true},
		{Name: "editor", ShortName: "e", Description: "New editor application identifier.", HasValue: true},
		{Name: "command", ShortName: "c", Description: "New init command; pass \"\" to clear it.", HasValue: true},
	}
}

func (c *PresetEditCommand) Execute(env *Env, args cli.CommandArgs) error {
	original := args.Arg(0)
	ctx := env.context()

	existing, found, err := env.Store.Get(ctx, original)
	if err != nil {
		return env.fail(notify.ActionLoad, err)
	}
	if !found {
		return fmt.Errorf("no preset named %q", original)
	}

	draft := workflow.FromPreset(existing)
	if v, ok := args.Flag("name", "n"); ok {
		draft.Name = v
	}
	if v, ok := args.Flag("path", "p"); ok {
		if len(draft.Path) == 0 {
			draft.Path = []string{v}
		} else {
			draft.Path[0] = v
		}
	}
	if v, ok := args.Flag("editor", "e"); ok {
		draft.EditorID = v
	}
	if v, ok := args.Flag("command", "c"); ok {
		draft.Command = v
	}

	p, err := env.Editor.Edit(ctx, original, draft)
	if err != nil {
		return env.fail(notify.ActionEdit, err)
	}
	env.succeed(notify.ActionEdit, p.Name)
	return nil
}
