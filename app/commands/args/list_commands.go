package args

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
)

// ListCommandsCommand defines the command to list all registered commands.
type ListCommandsCommand struct{}

func init() {
	RegisterCommand(&ListCommandsCommand{})
}

func (c *ListCommandsCommand) Name() string { return "commands" }

func (c *ListCommandsCommand) Description() string {
	return "Lists all available commands."
}

func (c *ListCommandsCommand) Usage() string { return "" }

func (c *ListCommandsCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *ListCommandsCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ListCommandsCommand) Execute(env *Env, args cli.CommandArgs) error {
	writeCommandList(env.Out, c.Name())
	return nil
}

var headingColor = color.New(color.Bold, color.FgHiWhite)

func writeCommandList(w io.Writer, skip string) {
	headingColor.Fprintln(w, "Available Commands:")
	for _, cmd := range GetAllCommands() {
		if cmd.Name() == skip {
			continue
		}
		fmt.Fprintf(w, "  %-15s %s\n", cmd.Name(), cmd.Description())
	}
}

// WriteGeneralHelp prints the top-level help message.
func WriteGeneralHelp(w io.Writer) {
	headingColor.Fprintln(w, "ngi - project presets")
	fmt.Fprintln(w, "Usage: ngi [command] [variables...] [--flags...]")
	fmt.Fprintln(w, "Run without arguments to enter interactive mode.")
	fmt.Fprintln(w)
	writeCommandList(w, "")
	fmt.Fprintln(w, "\nRun 'ngi [command] --help' for more information on a specific command.")
	fmt.Fprintln(w, "\nGlobal Flags: --help, -h, --version, --debug")
}

// WriteCommandHelp displays detailed help for a specific command.
func WriteCommandHelp(w io.Writer, commandName string) {
	cmd, found := GetCommand(commandName)
	if !found {
		fmt.Fprintf(w, "Error: Unknown command '%s'\n", commandName)
		WriteGeneralHelp(w)
		return
	}

	fmt.Fprintf(w, "Usage: ngi %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Fprintf(w, "  %s\n", cmd.Description())

	if defs := cmd.ExpectedArgs(); len(defs) > 0 {
		headingColor.Fprintln(w, "\nArguments:")
		for _, arg := range defs {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Fprintf(w, "  %-22s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		headingColor.Fprintln(w, "\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			required := ""
			if flag.Required {
				required = " (required)"
			}
			fmt.Fprintf(w, "  %-22s %s%s\n", flagUsage, flag.Description, required)
		}
	}
	fmt.Fprintln(w, "\nGlobal Flags: --help, -h, --version, --debug")
}

// Run executes the parsed command against env. Missing required arguments
// are reported before the command runs.
func Run(env *Env, parsed cli.CommandArgs) error {
	cmd, found := GetCommand(parsed.CommandName)
	if !found {
		return fmt.Errorf("unknown command %q", parsed.CommandName)
	}
	if err := checkArgs(cmd, parsed); err != nil {
		return fmt.Errorf("%w\nUsage: ngi %s %s", err, cmd.Name(), cmd.Usage())
	}
	return cmd.Execute(env, parsed)
}
