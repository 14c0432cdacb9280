package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConflict, "destination already exists")
	assert.Equal(t, "[CONFLICT] destination already exists", err.Error())
	assert.Equal(t, ErrConflict, err.Code)
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalidInput, "invalid mode %q", "sync")
	assert.Equal(t, `[INVALID_INPUT] invalid mode "sync"`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrSymlinkCreate, "failed to create symlink")

	assert.Equal(t, "[SYMLINK_CREATE] failed to create symlink: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrRemove, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrRemove, "should be %s", "nil"))
}

func TestIsByCode(t *testing.T) {
	err := Newf(ErrDirCreate, "cannot create %s", "/dest/a")
	assert.True(t, errors.Is(err, New(ErrDirCreate, "")))
	assert.False(t, errors.Is(err, New(ErrRemove, "")))
}

func TestIsErrorCode(t *testing.T) {
	base := New(ErrSourceRoot, "source root does not exist")
	wrapped := fmt.Errorf("running: %w", base)

	assert.True(t, IsErrorCode(wrapped, ErrSourceRoot))
	assert.False(t, IsErrorCode(wrapped, ErrDestRoot))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrSourceRoot))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrLockHeld, GetErrorCode(New(ErrLockHeld, "held")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrConflict, "conflict").WithDetail("path", "/dest/a/b.txt")
	require.NotNil(t, err.Details)
	assert.Equal(t, "/dest/a/b.txt", err.Details["path"])
}
