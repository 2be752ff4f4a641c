// Package args holds the commands reachable directly from the command line.
// Each command registers itself from an init function.
package args

import (
	"fmt"
	"sort"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "preset add").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(env *Env, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<name> --path <dir>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It panics on a duplicate
// name, which can only happen through a programming error.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns all registered commands sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Checker adapts the registry for cli.ParseCommandLineArgs.
type Checker struct{}

func (Checker) CommandExists(name string) bool { return CommandExists(name) }

// IsBoolFlag reports whether flag is declared by command without a value.
func (Checker) IsBoolFlag(command, flag string) bool {
	cmd, ok := GetCommand(command)
	if !ok {
		return false
	}
	for _, f := range cmd.ExpectedFlags() {
		if f.Name == flag || (f.ShortName != "" && f.ShortName == flag) {
			return !f.HasValue
		}
	}
	return false
}

// checkArgs reports missing required positional arguments.
func checkArgs(cmd Command, args cli.CommandArgs) error {
	for i, def := range cmd.ExpectedArgs() {
		if def.Required && i >= len(args.Variables) {
			return fmt.Errorf("missing required argument: %s", def.Name)
		}
	}
	return nil
}
