package args

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"

	config "github.com/Guerrilla-Interactive/nextgen-init/internal"

	"github.com/Guerrilla-Interactive/nextgen-init/app/apps"
	"github.com/Guerrilla-Interactive/nextgen-init/app/materialize"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
	"github.com/Guerrilla-Interactive/nextgen-init/app/preset"
	"github.com/Guerrilla-Interactive/nextgen-init/app/project"
	"github.com/Guerrilla-Interactive/nextgen-init/app/workflow"
)

// ErrReported is returned after a failure notification was already printed.
// The caller should exit non-zero without printing again.
var ErrReported = errors.New("failure already reported")

// Env carries the dependencies commands run against.
type Env struct {
	Ctx          context.Context
	Config       *config.Config
	ConfigPath   string
	Store        *preset.Store
	Editor       *workflow.Editor
	Materializer *materialize.Materializer
	Apps         apps.Lister
	History      *project.History // optional
	Out          io.Writer
	Err          io.Writer
	Logger       *slog.Logger

	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error
}

func (e *Env) context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

func (e *Env) locale() string {
	if e.Config == nil {
		return ""
	}
	return e.Config.Language
}

func (e *Env) copy(text string) error {
	if e.CopyToClipboard != nil {
		return e.CopyToClipboard(text)
	}
	return clipboard.WriteAll(text)
}

// succeed prints the success notification for action.
func (e *Env) succeed(action notify.Action, detail string) {
	notify.Print(e.Out, notify.Success(e.locale(), action, detail))
}

// fail prints the failure notification for err and returns ErrReported.
func (e *Env) fail(action notify.Action, err error) error {
	notify.Print(e.Err, notify.FromError(e.locale(), action, err))
	if e.Logger != nil {
		e.Logger.Debug("Command failed", "error", err)
	}
	return ErrReported
}
