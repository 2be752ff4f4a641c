package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
)

// AppsListCommand prints installed applications and their identifiers.
type AppsListCommand struct{}

func init() {
	RegisterCommand(&AppsListCommand{})
}

func (c *AppsListCommand) Name() string { return "apps list" }

func (c *AppsListCommand) Description() string {
	return "Lists installed applications usable as --editor."
}

func (c *AppsListCommand) Usage() string { return "[filter]" }

func (c *AppsListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "filter", Description: "Only show apps whose name or identifier contains this text."},
	}
}

func (c *AppsListCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *AppsListCommand) Execute(env *Env, args cli.CommandArgs) error {
	if env.Apps == nil {
		return fmt.Errorf("application listing is not available")
	}
	list, err := env.Apps.List(env.context())
	if err != nil {
		return fmt.Errorf("listing applications: %w", err)
	}
	list = apps.Filter(list, args.Arg(0))
	if len(list) == 0 {
		fmt.Fprintln(env.Out, "No applications found.")
		return nil
	}
	width := 0
	for _, a := range list {
		width = max(width, len(a.Name))
	}
	for _, a := range list {
		fmt.Fprintf(env.Out, "%-*s  %s\n", width, a.Name, labelColor.Sprint(a.ID))
	}
	return nil
}
