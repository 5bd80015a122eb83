package puzzle

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by a solver or the dispatcher wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	ErrFormat          = errors.New("malformed record")
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrUnknownSelector = errors.New("unknown puzzle")
	ErrEmptyInput      = errors.New("empty input")
)

// Error describes a puzzle failure together with the raw text that caused it.
type Error struct {
	Kind error
	// Raw is the offending record, token or identifier.
	Raw string
	// Line is the 1-based input line, 0 when not tied to a line.
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = e.Msg
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, msg, e.Raw)
	}
	return fmt.Sprintf("%s: %q", msg, e.Raw)
}

func (e *Error) Unwrap() error { return e.Kind }

// AtLine returns a copy of err annotated with a line number. Errors that are
// not *Error are wrapped unchanged.
func AtLine(err error, line int) error {
	var pe *Error
	if errors.As(err, &pe) {
		cp := *pe
		cp.Line = line
		return &cp
	}
	return fmt.Errorf("line %d: %w", line, err)
}

func Formatf(raw, format string, args ...any) error {
	return &Error{Kind: ErrFormat, Raw: raw, Msg: fmt.Sprintf(format, args...)}
}

func InvalidSymbolf(raw, format string, args ...any) error {
	return &Error{Kind: ErrInvalidSymbol, Raw: raw, Msg: fmt.Sprintf(format, args...)}
}

func UnknownSelector(id string) error {
	return &Error{Kind: ErrUnknownSelector, Raw: id}
}

func EmptyInput(what string) error {
	return &Error{Kind: ErrEmptyInput, Raw: what}
}
