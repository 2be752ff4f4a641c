package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apperr"
	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/project"
	"github.com/Guerrilla-Interactive/nextgen-init/app/utils"
)

// CreateCommand materializes a project from a stored or quick preset.
type CreateCommand struct{}

func init() {
	RegisterCommand(&CreateCommand{})
}

func (c *CreateCommand) Name() string { return "create" }

func (c *CreateCommand) Description() string {
	return "Creates a project folder from a preset, runs its init command and opens the editor."
}

func (c *CreateCommand) Usage() string {
	return "<preset> <project-name> [--copy]"
}

func (c *CreateCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "preset", Description: "Stored preset name or quick preset label.", Required: true},
		{Name: "project-name", Description: "Name of the new project folder.", Required: true},
	}
}

func (c *CreateCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "copy", ShortName: "c", Description: "Copy the created path to the clipboard."},
	}
}

func (c *CreateCommand) Execute(env *Env, args cli.CommandArgs) error {
	ctx := env.context()
	stored, err := env.Store.List(ctx)
	if err != nil {
		return env.fail(notify.ActionLoad, err)
	}
	quick := materialize.QuickPresets(defaultConfig(env))

	p, ok := materialize.Find(args.Arg(0), stored, quick)
	if !ok {
		return env.fail(notify.ActionCreate, apperr.New(apperr.KindValidation, "project.resolve", materialize.ReasonNoPreset))
	}

	target, err := env.Materializer.CreateProject(ctx, p, args.Arg(1))
	if err != nil {
		return env.fail(notify.ActionCreate, err)
	}
	env.succeed(notify.ActionCreate, target)

	entry := project.Entry{Path: target, Preset: p.Name}
	if info, ok := project.Detect(target); ok {
		entry.Info = &info
		fmt.Fprintf(env.Out, "%s %s\n", labelColor.Sprint("Detected:"), info)
	}
	if env.History != nil {
		if err := env.History.Record(ctx, entry); err != nil && env.Logger != nil {
			env.Logger.Warn("Could not record project", "path", target, "error", err)
		}
	}

	if tree, err := utils.SummarizeDir(target, 2); err == nil {
		fmt.Fprint(env.Out, tree)
	}
	if args.Bool("copy", "c") {
		if err := env.copy(target); err != nil {
			fmt.Fprintf(env.Err, "Could not copy path to clipboard: %v\n", err)
		}
	}
	return nil
}
