package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react (and localize) without
// inspecting error strings.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation covers missing or malformed user input. Recoverable by re-prompting.
	KindValidation
	// KindNameCollision means a preset with the requested name already exists.
	KindNameCollision
	// KindStorage covers reading, decoding or writing the persisted preset collection.
	KindStorage
	// KindFilesystem is a failure creating the project directory.
	KindFilesystem
	// KindCommand is a non-zero exit or spawn failure of the init command.
	KindCommand
	// KindLaunch is a failure opening the editor application.
	KindLaunch
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNameCollision:
		return "name collision"
	case KindStorage:
		return "storage"
	case KindFilesystem:
		return "filesystem"
	case KindCommand:
		return "command"
	case KindLaunch:
		return "launch"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the preset store, the editor
// workflow and the materializer.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "preset.save"
	Msg  string // short human readable reason
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind alone: errors.Is(err, &Error{Kind: KindCommand}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// New builds an Error without an underlying cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds an Error around cause. A nil cause yields nil.
func Wrap(kind Kind, op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: cause}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Reason returns the short message of the first *Error in err's chain, or
// err.Error() when there is none.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Msg != "" {
			return e.Msg
		}
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return err.Error()
}
