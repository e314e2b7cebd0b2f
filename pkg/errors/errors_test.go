package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/marks/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrNodeNotFound, "node missing")
	assert.Equal(t, errors.ErrNodeNotFound, err.Code)
	assert.Equal(t, "[NODE_NOT_FOUND] node missing", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNodeTypeUnknown, "unknown type %q", "widget")
	assert.Equal(t, `[NODE_TYPE_UNKNOWN] unknown type "widget"`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := errors.Wrap(inner, errors.ErrStoreWrite, "failed to save store")

	assert.Equal(t, "[STORE_WRITE] failed to save store: disk full", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrStoreWrite, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrStoreWrite, "ignored %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.New(errors.ErrStoreParse, "bad xml")
	wrapped := fmt.Errorf("loading: %w", err)

	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrStoreParse, "anything")))
	assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrStoreRead, "anything")))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("nope"), errors.ErrConfigLoad, "config")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrConfigLoad))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrFetchFailed, errors.GetErrorCode(errors.New(errors.ErrFetchFailed, "timeout")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNodeExists, "duplicate").WithDetail("id", "go-blog")
	assert.Equal(t, "go-blog", errors.GetErrorDetails(err)["id"])
	assert.Nil(t, errors.GetErrorDetails(fmt.Errorf("plain")))
}
