package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("found %d problems", 3)
	assert.Equal(t, "found 3 problems", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "attempt %d", 2)
	assert.Equal(t, "attempt 2: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "attempt %d", 2))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewConfigError("cannot parse config file", "/data/config.json", ConfigMalformed, cause)

	assert.Equal(t, "cannot parse config file: /data/config.json: unexpected end of JSON input", err.Error())
	assert.Equal(t, "/data/config.json", err.Path())
	assert.Equal(t, ConfigMalformed, err.Kind())
	assert.True(t, Is(err, cause), "the cause stays reachable through the chain")

	assert.True(t, IsConfigMalformed(err))
	assert.False(t, IsConfigUnreadable(err))
	assert.False(t, IsTargetInvalid(err))

	// Without a path the message falls back to the base form.
	bare := NewConfigError("cannot parse config file", "", ConfigMalformed, nil)
	assert.Equal(t, "cannot parse config file", bare.Error())
}

func TestFileError(t *testing.T) {
	err := NewFileError("downloads directory does not exist", "/home/u/Downloads", TargetInvalid, os.ErrNotExist)

	assert.Contains(t, err.Error(), "/home/u/Downloads")
	assert.True(t, Is(err, os.ErrNotExist))
	assert.True(t, IsTargetInvalid(err))
	assert.False(t, IsMoveFailed(err))

	moveErr := NewFileError("move failed", "/home/u/Downloads/a.pdf", MoveFailed, nil)
	assert.Equal(t, "move failed: /home/u/Downloads/a.pdf", moveErr.Error())
	assert.True(t, IsMoveFailed(moveErr))
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	err := fmt.Errorf("just a plain error")

	assert.False(t, IsConfigMalformed(err))
	assert.False(t, IsConfigUnreadable(err))
	assert.False(t, IsTargetInvalid(err))
	assert.False(t, IsMoveFailed(err))
	assert.False(t, IsMoveFailed(nil))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := NewFileError("move failed", "/tmp/a.pdf", MoveFailed, nil)
	outer := fmt.Errorf("pass aborted: %w", inner)

	assert.True(t, IsMoveFailed(outer))

	var fileErr *FileError
	require.True(t, As(outer, &fileErr))
	assert.Equal(t, "/tmp/a.pdf", fileErr.Path())
}
