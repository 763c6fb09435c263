package regexlib

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a parse failure.
type ErrorCode int

const (
	InvalidEscape     ErrorCode = iota + 1 // backslash before a non-metacharacter
	InvalidRightParen                      // ')' without an open '('
	NoPrev                                 // '+', '*', '?' or '|' with nothing before it
	NoRightParen                           // unclosed '(' at end of input
	Empty                                  // pattern produced no node
)

var codeNames = [...]string{
	InvalidEscape:     "InvalidEscape",
	InvalidRightParen: "InvalidRightParen",
	NoPrev:            "NoPrev",
	NoRightParen:      "NoRightParen",
	Empty:             "Empty",
}

func (c ErrorCode) String() string {
	if c > 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is the only error type returned by Parse. Pos is the 0-based rune
// index of the offending character, or -1 for NoRightParen and Empty.
type Error struct {
	Code ErrorCode
	Pos  int
	Char rune // set for InvalidEscape
}

func (e *Error) Error() string {
	switch e.Code {
	case InvalidEscape:
		return fmt.Sprintf("invalid escape sequence at position %d: %q", e.Pos, e.Char)
	case InvalidRightParen:
		return fmt.Sprintf("invalid right parenthesis at position %d", e.Pos)
	case NoPrev:
		return fmt.Sprintf("no previous expression at position %d", e.Pos)
	case NoRightParen:
		return "no right parenthesis"
	case Empty:
		return "empty pattern"
	}
	return e.Code.String()
}

// Is matches any *Error with the same Code, so callers can write
// errors.Is(err, &regexlib.Error{Code: regexlib.NoPrev}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// HasPos reports whether the error points at a character of the pattern.
func (e *Error) HasPos() bool { return e.Pos >= 0 }

// CodeOf returns the ErrorCode carried by err, or 0 if err is not a parse error.
func CodeOf(err error) ErrorCode {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return 0
}

func errInvalidEscape(pos int, c rune) *Error {
	return &Error{Code: InvalidEscape, Pos: pos, Char: c}
}

func errInvalidRightParen(pos int) *Error { return &Error{Code: InvalidRightParen, Pos: pos} }
func errNoPrev(pos int) *Error            { return &Error{Code: NoPrev, Pos: pos} }

func errNoRightParen() *Error { return &Error{Code: NoRightParen, Pos: -1} }
func errEmpty() *Error        { return &Error{Code: Empty, Pos: -1} }
