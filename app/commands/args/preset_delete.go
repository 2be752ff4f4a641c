package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
)

// PresetDeleteCommand removes a preset.
type PresetDeleteCommand struct{}

func init() {
	RegisterCommand(&PresetDeleteCommand{})
}

func (c *PresetDeleteCommand) Name() string { return "preset delete" }

func (c *PresetDeleteCommand) Description() string {
	return "Deletes a project preset."
}

func (c *PresetDeleteCommand) Usage() string { return "<name>" }

func (c *PresetDeleteCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "name", Description: "Preset to delete.", Required: true},
	}
}

func (c *PresetDeleteCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *PresetDeleteCommand) Execute(env *Env, args cli.CommandArgs) error {
	name := args.Arg(0)
	ctx := env.context()

	_, found, err := env.Store.Get(ctx, name)
	if err != nil {
		return env.fail(notify.ActionLoad, err)
	}
	if !found {
		return fmt.Errorf("no preset named %q", name)
	}
	if err := env.Editor.Delete(ctx, name); err != nil {
		return env.fail(notify.ActionDelete, err)
	}
	env.succeed(notify.ActionDelete, name)
	return nil
}
