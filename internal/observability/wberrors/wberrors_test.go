package wberrors_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandb/wandb/chartcore/internal/observability/wberrors"
)

func TestNewfFormat(t *testing.T) {
	assert.Equal(t,
		"the number is 3",
		wberrors.Newf("the number is %d", 3).Error())
}

func TestWrapNil_Panics(t *testing.T) {
	assert.Panics(t, func() { _ = wberrors.Enrichf(nil, "text") })
	assert.Panics(t, func() { _ = wberrors.Bubblef(nil, "text") })
}

func TestEnrichf(t *testing.T) {
	t.Run("no message", func(t *testing.T) {
		assert.Equal(t, "EOF", wberrors.Enrichf(io.EOF, "").Error())
	})

	t.Run("with format", func(t *testing.T) {
		err := wberrors.Enrichf(io.EOF, "row %d", 12)

		assert.Equal(t, "row 12: EOF", err.Error())
		assert.NotErrorIs(t, err, io.EOF)
	})
}

func TestBubblef_Unwraps(t *testing.T) {
	err := wberrors.Bubblef(io.EOF, "reading config")

	assert.Equal(t, "reading config: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, io.EOF, errors.Unwrap(err))
}

func TestAttrsAndQuiet_CarriedThroughWrapping(t *testing.T) {
	inner := wberrors.Newf("bad value").
		Attr(slog.Int("line", 4)).
		Quiet(true)

	outer := wberrors.Enrichf(inner, "history").
		Attr(slog.String("path", "h.jsonl"))

	assert.True(t, wberrors.IsQuiet(outer))
	assert.ElementsMatch(t,
		[]slog.Attr{slog.Int("line", 4), slog.String("path", "h.jsonl")},
		wberrors.Attrs(outer))

	// The inner error is not modified by enrichment.
	assert.Len(t, wberrors.Attrs(inner), 1)
}

func TestAttrs_PlainError(t *testing.T) {
	assert.Nil(t, wberrors.Attrs(io.EOF))
	assert.False(t, wberrors.IsQuiet(io.EOF))
}
