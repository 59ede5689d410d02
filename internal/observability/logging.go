// Package observability provides the structured logger used across
// chartcore.
package observability

import (
	"context"
	"io"
	"log/slog"

	"github.com/wandb/wandb/chartcore/internal/observability/wberrors"
)

type Tags map[string]string

// NewTags creates a new Tags from a mix of slog.Attr and a string and its
// corresponding value. It ignores incomplete pairs and other types.
func NewTags(args ...any) Tags {
	tags := Tags{}
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			tags[x.Key] = x.Value.String()
			args = args[1:]
		case string:
			if len(args) < 2 {
				return tags
			}
			attr := slog.Any(x, args[1])
			tags[attr.Key] = attr.Value.String()
			args = args[2:]
		default:
			args = args[1:]
		}
	}
	return tags
}

type CoreLoggerParams struct {
	Tags Tags

	// WarnFilter suppresses repeated CaptureWarn messages.
	//
	// If nil, every warning is logged.
	WarnFilter *RepeatFilter
}

// CoreLogger is a slog.Logger with base tags and capture helpers.
type CoreLogger struct {
	*slog.Logger
	baseTags   Tags
	warnFilter *RepeatFilter
}

func NewCoreLogger(logger *slog.Logger, params *CoreLoggerParams) *CoreLogger {
	if params == nil {
		params = &CoreLoggerParams{}
	}

	tags := Tags{}
	var args []any
	for key, value := range params.Tags {
		args = append(args, slog.String(key, value))
		tags[key] = value
	}

	return &CoreLogger{
		Logger:     logger.With(args...),
		baseTags:   tags,
		warnFilter: params.WarnFilter,
	}
}

// With returns a derived logger that includes the given tags in each message.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	return &CoreLogger{
		Logger:     cl.Logger.With(args...),
		baseTags:   cl.baseTags,
		warnFilter: cl.warnFilter,
	}
}

// CaptureError logs an error along with any attrs it carries.
//
// Errors marked quiet with wberrors are logged at debug level.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	if err == nil {
		return
	}

	for _, attr := range wberrors.Attrs(err) {
		args = append(args, attr)
	}

	level := slog.LevelError
	if wberrors.IsQuiet(err) {
		level = slog.LevelDebug
	}

	cl.Log(context.Background(), level, err.Error(), args...)
}

// CaptureWarn logs a warning unless the same message was logged recently.
//
// If earlier copies were dropped, their count is attached as "repeated".
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	ok, suppressed := cl.warnFilter.Allow(msg)
	if !ok {
		return
	}
	if suppressed > 0 {
		args = append(args, slog.Int("repeated", suppressed))
	}
	cl.Warn(msg, args...)
}

// CaptureInfo logs an info message.
func (cl *CoreLogger) CaptureInfo(msg string, args ...any) {
	cl.Info(msg, args...)
}

// GetTags returns the tags associated with the logger.
//
// Used for testing.
func (cl *CoreLogger) GetTags() Tags {
	return cl.baseTags
}

// NewNoOpLogger returns a logger that discards all messages.
//
// Used for testing.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
		nil,
	)
}
