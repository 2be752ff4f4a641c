package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := New(KindValidation, "project.create", "name required")
	wrapped := fmt.Errorf("submit: %w", base)

	assert.Equal(t, KindValidation, KindOf(base))
	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorsIsMatchesKind(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(KindCommand, "project.init", cause)

	assert.ErrorIs(t, err, &Error{Kind: KindCommand})
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, &Error{Kind: KindLaunch})
	assert.NotErrorIs(t, err, &Error{Kind: KindCommand, Op: "other"})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(KindStorage, "preset.list", nil))
}

func TestReason(t *testing.T) {
	assert.Equal(t, "name required", Reason(New(KindValidation, "op", "name required")))
	assert.Equal(t, "disk full", Reason(Wrap(KindStorage, "op", errors.New("disk full"))))
	assert.Equal(t, "plain", Reason(errors.New("plain")))
	assert.Equal(t, "", Reason(nil))
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: KindFilesystem, Op: "project.mkdir", Msg: "/x", Err: errors.New("permission denied")}
	assert.Equal(t, "project.mkdir: /x: permission denied", err.Error())
	assert.Equal(t, "filesystem", err.Kind.String())
}
