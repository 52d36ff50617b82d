package lang

import (
	"errors"
	"log/slog"
	"strings"
)

//go:generate go tool stringer --linecomment --type Category,Kind,Builtin --output string.go

// Category classifies a fault by the pipeline stage that produced it.
type Category uint8

// Fault categories.
const (
	CategoryNone    Category = iota //
	CategoryLex                     // Lex
	CategoryParse                   // Parse
	CategoryEval                    // Eval
	CategoryInclude                 // Include
)

// Predefined errors (sentinel values).
//
// Errors derived from a sentinel with [Error.With] or [Error.Wrap] match it
// with [errors.Is].
var (
	ErrMalformedHex   = newError(CategoryLex, "malformed hex color")
	ErrSyntax         = newError(CategoryParse, "syntax error")
	ErrNotFound       = newError(CategoryEval, "name not found")
	ErrNotFunction    = newError(CategoryEval, "not a function")
	ErrWrongArity     = newError(CategoryEval, "wrong number of arguments")
	ErrArgType        = newError(CategoryEval, "argument type mismatch")
	ErrTypeMismatch   = newError(CategoryEval, "value is not a color")
	ErrNoSuchFile     = newError(CategoryEval, "no such file")
	ErrFileName       = newError(CategoryEval, "invalid file name")
	ErrExpectRelative = newError(CategoryEval, "expected relative path")
	ErrExpectAbsolute = newError(CategoryEval, "expected absolute path")
	ErrNoHomeDir      = newError(CategoryEval, "home directory unavailable")
	ErrCanceled       = newError(CategoryEval, "evaluation canceled")
	ErrIncludeCycle   = newError(CategoryInclude, "recursive inclusion detected")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	root  *Error      // Sentinel this error derives from (for errors.Is)
	attrs []slog.Attr // Attributes for structured logging
	cat   Category
}

// NewError creates a new uncategorized Error with a message.
func NewError(msg string) *Error {
	return newError(CategoryNone, msg)
}

func newError(cat Category, msg string) *Error {
	e := &Error{msg: msg, cat: cat}
	e.root = e

	return e
}

// Error implements the error interface.
//
// The message is followed by its attributes in parentheses, then by the
// wrapped error:
//
//	<msg> (<key>=<value> ...): <err>
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if len(e.attrs) > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte('(')

		for i, attr := range e.attrs {
			if i > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(attr.String())
		}

		sb.WriteByte(')')
	}

	if e.err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.root != nil && e.root == t.root
}

// Category returns the pipeline stage that produced the error.
func (e *Error) Category() Category { return e.cat }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.cat != CategoryNone {
		attrs = append(attrs, slog.String("category", e.cat.String()))
	}

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		root:  e.root,
		attrs: e.attrs, // Share attrs
		cat:   e.cat,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		root:  e.root,
		attrs: newAttrs,
		cat:   e.cat,
	}
}

// FormatFault renders a fault for display as "<Category>Error: <message>".
// Errors without a category render as "Error: <message>".
func FormatFault(err error) string {
	if err == nil {
		return ""
	}

	var ee *Error
	if errors.As(err, &ee) {
		return ee.cat.String() + "Error: " + err.Error()
	}

	return "Error: " + err.Error()
}
