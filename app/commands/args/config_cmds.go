package args

import (
	"fmt"

	"github.com/fatih/color"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
)

func defaultConfig(env *Env) config.Config {
	if env.Config == nil {
		return config.Default()
	}
	return *env.Config
}

// ConfigListCommand prints every setting.
type ConfigListCommand struct{}

// ConfigGetCommand defines the command to get a configuration value.
type ConfigGetCommand struct{}

// ConfigSetCommand defines the command to set a configuration value.
type ConfigSetCommand struct{}

func init() {
	RegisterCommand(&ConfigListCommand{})
	RegisterCommand(&ConfigGetCommand{})
	RegisterCommand(&ConfigSetCommand{})
}

func (c *ConfigListCommand) Name() string { return "config list" }

func (c *ConfigListCommand) Description() string {
	return "Lists all configuration keys and their values."
}

func (c *ConfigListCommand) Usage() string { return "" }

func (c *ConfigListCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *ConfigListCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigListCommand) Execute(env *Env, args cli.CommandArgs) error {
	cfg := defaultConfig(env)
	if env.ConfigPath != "" {
		fmt.Fprintf(env.Out, "# %s\n", env.ConfigPath)
	}
	key := color.New(color.FgCyan)
	for _, k := range config.Keys() {
		v, _ := cfg.Get(k)
		fmt.Fprintf(env.Out, "%s = %q\n", key.Sprint(k), v)
	}
	return nil
}

func (c *ConfigGetCommand) Name() string { return "config get" }

func (c *ConfigGetCommand) Description() string {
	return "Gets the value of a specific configuration key."
}

func (c *ConfigGetCommand) Usage() string { return "<key>" }

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to get.", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigGetCommand) Execute(env *Env, args cli.CommandArgs) error {
	cfg := defaultConfig(env)
	v, err := cfg.Get(args.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, v)
	return nil
}

func (c *ConfigSetCommand) Name() string { return "config set" }

func (c *ConfigSetCommand) Description() string {
	return "Sets a configuration key to a specific value."
}

func (c *ConfigSetCommand) Usage() string { return "<key> <value>" }

func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to set.", Required: true},
		{Name: "value", Description: "The value to assign to the key.", Required: true},
	}
}

func (c *ConfigSetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigSetCommand) Execute(env *Env, args cli.CommandArgs) error {
	if env.Config == nil || env.ConfigPath == "" {
		return fmt.Errorf("no configuration file location")
	}
	key, value := args.Arg(0), args.Arg(1)
	if err := env.Config.Set(key, value); err != nil {
		return err
	}
	if err := config.Save(env.ConfigPath, *env.Config); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "%s = %q\n", key, value)
	return nil
}
