package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
)

// QuickListCommand prints the presets derived from command_mappings.
type QuickListCommand struct{}

func init() {
	RegisterCommand(&QuickListCommand{})
}

func (c *QuickListCommand) Name() string { return "quick list" }

func (c *QuickListCommand) Description() string {
	return "Lists quick presets defined by the command_mappings setting."
}

func (c *QuickListCommand) Usage() string { return "" }
func (c *QuickListCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }
func (c *QuickListCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *QuickListCommand) Execute(env *Env, args cli.CommandArgs) error {
	if env.Config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	quick := materialize.QuickPresets(*env.Config)
	if len(quick) == 0 {
		fmt.Fprintln(env.Out, "No quick presets. Add lines like \"next => npx create-next-app .\" to command_mappings.")
		return nil
	}
	writePresets(env, quick)
	return nil
}
