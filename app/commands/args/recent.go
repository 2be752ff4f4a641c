package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
)

// RecentCommand lists recently created projects.
type RecentCommand struct{}

func init() {
	RegisterCommand(&RecentCommand{})
}

func (c *RecentCommand) Name() string { return "recent" }

func (c *RecentCommand) Description() string {
	return "Lists recently created projects, newest first."
}

func (c *RecentCommand) Usage() string { return "" }

func (c *RecentCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *RecentCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *RecentCommand) Execute(env *Env, args cli.CommandArgs) error {
	if env.History == nil {
		return fmt.Errorf("project history is not available")
	}
	entries, err := env.History.List(env.context())
	if err != nil {
		return env.fail(notify.ActionLoad, err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(env.Out, "No projects created yet.")
		return nil
	}
	for _, e := range entries {
		kind := ""
		if e.Info != nil {
			kind = "  " + labelColor.Sprint(e.Info.String())
		}
		fmt.Fprintf(env.Out, "%s  %s  %s%s\n",
			labelColor.Sprint(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			nameColor.Sprint(e.Path),
			e.Preset,
			kind)
	}
	return nil
}
