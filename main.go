package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/cli"
	commands "github.com/Guerrilla-Interactive/nextgen-init/app/commands/args"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/project"
	"github.com/Guerrilla-Interactive/nextgen-init/app/screens"
	"github.com/Guerrilla-Interactive/nextgen-init/app/shell"
	"github.com/Guerrilla-Interactive/nextgen-init/app/storage"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

// Version is set via linker flags during build.
var Version = "v0.1.0"

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M    app.Model
	Deps *screens.Deps
}

// Init loads presets and applications.
func (pm ProgramModel) Init() tea.Cmd {
	return screens.InitCmd(pm.Deps)
}

// Update routes key presses to the current screen and everything else to
// screens.HandleMsg.
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = msg.Width
		pm.M.TerminalHeight = msg.Height
		return pm, nil

	case tea.KeyMsg:
		pm.M.HasToast = false
		switch pm.M.CurrentScreen {
		case app.ScreenHome:
			pm.M, cmd = screens.UpdateScreenHome(pm.M, msg, pm.Deps)
		case app.ScreenCreateProject:
			pm.M, cmd = screens.UpdateScreenCreateProject(pm.M, msg, pm.Deps)
		case app.ScreenPresetForm:
			pm.M, cmd = screens.UpdateScreenPresetForm(pm.M, msg, pm.Deps)
		case app.ScreenPresetList:
			pm.M, cmd = screens.UpdateScreenPresetList(pm.M, msg, pm.Deps)
		}
		return pm, cmd
	}

	pm.M, cmd = screens.HandleMsg(pm.M, msg, pm.Deps)
	return pm, cmd
}

// View selects which screen's View function to call based on pm.M.CurrentScreen.
func (pm ProgramModel) View() string {
	var body string
	switch pm.M.CurrentScreen {
	case app.ScreenHome:
		body = screens.ViewScreenHome(pm.M)
	case app.ScreenCreateProject:
		body = screens.ViewScreenCreateProject(pm.M, pm.Deps)
	case app.ScreenPresetForm:
		body = screens.ViewScreenPresetForm(pm.M)
	case app.ScreenPresetList:
		body = screens.ViewScreenPresetList(pm.M)
	}
	return app.DocStyle.Render(body)
}

// services are the long-lived components shared by the CLI and the TUI.
type services struct {
	backend      storage.Backend
	store        *preset.Store
	editor       *workflow.Editor
	runner       *shell.Runner
	materializer *materialize.Materializer
	apps         *apps.Scanner
	history      *project.History
}

func newServices(cfg *config.Config, logger *slog.Logger) (*services, error) {
	kind, path, err := cfg.StorageLocation()
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(kind, path, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s storage at %s: %w", kind, path, err)
	}
	logger.Debug("Storage opened", "backend", kind, "path", path)

	store := preset.NewStore(backend, logger)
	runner := shell.NewRunner(logger)
	m := materialize.New(runner, shell.NewLauncher(logger), logger)
	m.Timeout = cfg.CommandTimeout

	return &services{
		backend:      backend,
		store:        store,
		editor:       workflow.NewEditor(store, logger),
		runner:       runner,
		materializer: m,
		apps:         apps.NewScanner(logger),
		history:      project.NewHistory(backend, logger),
	}, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(rawArgs []string) int {
	parsed := cli.ParseCommandLineArgs(rawArgs, commands.Checker{})
	if len(parsed.Errors) > 0 {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error parsing arguments:")
		for _, err := range parsed.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
		return 1
	}
	if parsed.VersionRequested {
		fmt.Printf("nextgen-init %s\n", Version)
		return 0
	}
	if parsed.HelpRequested {
		if parsed.CommandName != "" {
			commands.WriteCommandHelp(os.Stdout, parsed.CommandName)
		} else {
			commands.WriteGeneralHelp(os.Stdout)
		}
		return 0
	}
	if parsed.CommandName == "" && len(parsed.Variables) > 0 {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: unknown command %q\n", parsed.Variables[0])
		fmt.Fprintln(os.Stderr, "Run `ngi --help` for usage.")
		return 1
	}
	cli.SetDebugEnabled(parsed.BoolFlags["debug"])

	configPath, err := config.Path()
	if err != nil {
		return fatal(err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if parsed.CommandName != "" {
		return runCommand(ctx, parsed, &cfg, configPath)
	}
	return runInteractive(ctx, cfg)
}

func runCommand(ctx context.Context, parsed cli.CommandArgs, cfg *config.Config, configPath string) int {
	logger := newLogger(os.Stderr, cfg.Logging.Level)
	svc, err := newServices(cfg, logger)
	if err != nil {
		return fatal(err)
	}
	defer svc.backend.Close()

	// Init command output streams to the terminal.
	svc.runner.Stdout = os.Stdout
	svc.runner.Stderr = os.Stderr

	env := &commands.Env{
		Ctx:          ctx,
		Config:       cfg,
		ConfigPath:   configPath,
		Store:        svc.store,
		Editor:       svc.editor,
		Materializer: svc.materializer,
		Apps:         svc.apps,
		History:      svc.history,
		Out:          os.Stdout,
		Err:          os.Stderr,
		Logger:       logger,
	}
	if err := commands.Run(env, parsed); err != nil {
		if !errors.Is(err, commands.ErrReported) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func runInteractive(ctx context.Context, cfg config.Config) int {
	// stderr belongs to the alternate screen while the TUI runs.
	logger, closeLog, err := newFileLogger(cfg.Logging.Level)
	if err != nil {
		return fatal(err)
	}
	defer closeLog()

	svc, err := newServices(&cfg, logger)
	if err != nil {
		return fatal(err)
	}
	defer svc.backend.Close()

	deps := &screens.Deps{
		Ctx:          ctx,
		Config:       cfg,
		Store:        svc.store,
		Editor:       svc.editor,
		Materializer: svc.materializer,
		Apps:         svc.apps,
		History:      svc.history,
		Clipboard:    clipboard.WriteAll,
		Logger:       logger,
	}
	if w, ok := svc.backend.(storage.Watcher); ok {
		deps.Watch = func(ctx context.Context) (<-chan struct{}, error) {
			return w.Watch(ctx, preset.StorageKey)
		}
	}

	p := tea.NewProgram(
		ProgramModel{M: screens.NewModel(cfg, Version), Deps: deps},
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fatal(fmt.Errorf("running program: %w", err))
	}
	return 0
}

func fatal(err error) int {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
