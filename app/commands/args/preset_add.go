package args

import (
	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

// PresetAddCommand stores a new preset.
type PresetAddCommand struct{}

func init() {
	RegisterCommand(&PresetAddCommand{})
}

func (c *PresetAddCommand) Name() string { return "preset add" }

func (c *PresetAddCommand) Description() string {
	return "Adds a project preset."
}

func (c *PresetAddCommand) Usage() string {
	return "<name> --path <dir> --editor <app-id> [--command <cmd>]"
}

func (c *PresetAddCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "name", Description: "Unique preset name.", Required: true},
	}
}

func (c *PresetAddCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "path", ShortName: "p", Description: "Base folder new projects are created in. Defaults to base_path.", HasValue: true},
		{Name: "editor", ShortName: "e", Description: "Editor application identifier. Defaults to editor.", HasValue: true},
		{Name: "command", ShortName: "c", Description: "Shell command run inside each new project.", HasValue: true},
	}
}

func (c *PresetAddCommand) Execute(env *Env, args cli.CommandArgs) error {
	draft := workflow.Draft{Name: args.Arg(0)}
	if env.Config != nil {
		draft.EditorID = env.Config.Editor
		if env.Config.BasePath != "" {
			draft.Path = []string{env.Config.BasePath}
		}
	}
	if v, ok := args.Flag("path", "p"); ok {
		draft.Path = []string{v}
	}
	if v, ok := args.Flag("editor", "e"); ok {
		draft.EditorID = v
	}
	if v, ok := args.Flag("command", "c"); ok {
		draft.Command = v
	}

	p, err := env.Editor.Add(env.context(), draft)
	if err != nil {
		return env.fail(notify.ActionAdd, err)
	}
	env.succeed(notify.ActionAdd, p.Name)
	return nil
}
