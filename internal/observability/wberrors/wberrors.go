// Package wberrors defines the error type used by chartcore's I/O layers.
//
// `fmt.Errorf` is replaced by Newf, Enrichf and Bubblef:
//
//   - Newf constructs an error from a formatted message.
//   - Enrichf is like Newf, but it preserves an underlying error's data.
//     It is like using `fmt.Errorf` with the `%v` verb.
//   - Bubblef is like Enrichf, but it exposes the underlying error.
//     It is like using `fmt.Errorf` with the `%w` verb.
//
// Attr attaches structured data that CoreLogger.CaptureError logs next to
// the message; Quiet marks an expected condition that is logged at debug
// level. Both return the error itself to allow chaining:
//
//	return wberrors.Enrichf(err, "history: bad row").
//		Attr(slog.Int("line", line)).
//		Quiet(errors.Is(err, io.ErrUnexpectedEOF))
//
// The core packages (chartdata, axis, viewport, ...) never return errors for
// cosmetic misuse; they clamp instead. This package is for code that touches
// files.
package wberrors

import (
	"fmt"
	"log/slog"
	"maps"
)

// Attrs returns any slog attrs stored in the error.
func Attrs(err error) []slog.Attr {
	wberr, ok := err.(*Error)
	if !ok {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(wberr.attrs))
	for key, value := range wberr.attrs {
		attrs = append(attrs, slog.Attr{Key: key, Value: value})
	}
	return attrs
}

// IsQuiet reports whether the error was marked with Quiet.
func IsQuiet(err error) bool {
	if wberr, ok := err.(*Error); ok {
		return wberr.quiet
	}
	return false
}

// Error is a standard Go error with structured attrs.
//
// Errors are *not* safe for concurrent use. Construct and mutate an error
// in a single statement using method chaining.
type Error struct {
	msg   string // error message or context
	err   error  // wrapped error or nil
	quiet bool   // expected condition; log at debug level

	attrs map[string]slog.Value
}

// Newf creates a new error using Sprintf to construct the message.
func Newf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Enrichf enriches an error without exposing it through `errors.Unwrap`.
//
// Given an empty format string, the resulting error's string representation
// is the same as the given error's. Otherwise the formatted message is
// prepended to the given error's message with a separating colon.
//
// Attrs and the quiet flag of an enriched error are carried over.
func Enrichf(err error, format string, args ...any) *Error {
	return wrap(fmt.Sprintf(format, args...), err, false)
}

// Bubblef is like Enrichf, but exposes the given error through `errors.Unwrap`.
//
// Use it when callers are expected to inspect the inner error with
// `errors.Is` or `errors.As`, such as fs.ErrNotExist from a config read.
func Bubblef(err error, format string, args ...any) *Error {
	return wrap(fmt.Sprintf(format, args...), err, true)
}

func wrap(msg string, err error, shouldWrap bool) *Error {
	if err == nil {
		panic("wberrors: cannot wrap nil error")
	}

	wrapped := &Error{}

	switch {
	case shouldWrap:
		wrapped.msg = msg
		wrapped.err = err
	case msg == "":
		wrapped.msg = err.Error()
	default:
		wrapped.msg = fmt.Sprintf("%s: %v", msg, err)
	}

	if wberr, ok := err.(*Error); ok {
		wrapped.quiet = wberr.quiet
		wrapped.attrs = maps.Clone(wberr.attrs)
	}

	return wrapped
}

// Attr associates structured data to the error and returns the error.
//
// If the error already has an attr with the same key, it is overwritten.
func (e *Error) Attr(attr slog.Attr) *Error {
	if e.attrs == nil {
		e.attrs = make(map[string]slog.Value)
	}

	e.attrs[attr.Key] = attr.Value
	return e
}

// Quiet marks the error as expected if the condition is true.
func (e *Error) Quiet(condition bool) *Error {
	e.quiet = e.quiet || condition
	return e
}

// Error implements error.Error.
func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
}

// Unwrap returns the inner error.
func (e *Error) Unwrap() error {
	return e.err
}
