package parsing

import (
	"fmt"
	"strings"

	"github.com/ava12/datefmt"
)

// Error codes used by the parsing engine:
const (
	EndOfInputError = datefmt.ParsingErrors + iota
	LiteralMismatchError
	TooFewDigitsError
	OutOfRangeError
	UnknownNameError
	FieldConflictError
	RemainingInputError
)

// ParseError is a positioned per-branch parse failure. Parse errors are
// values collected by the matcher, never raised mid-search. The message is
// rendered lazily so that the success path never builds strings.
type ParseError struct {
	Code int
	Pos  int
	msg  func() string
}

// NewParseError creates a parse error with a deferred message.
func NewParseError(code, pos int, msg func() string) *ParseError {
	return &ParseError{code, pos, msg}
}

// Message renders the error message. May be called multiple times.
func (e *ParseError) Message() string {
	return e.msg()
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("position %d: %s", e.Pos, e.msg())
}

func endOfInputError(pos int, expected func() string) *ParseError {
	return NewParseError(EndOfInputError, pos, func() string {
		return "unexpected end of input, expecting " + expected()
	})
}

func literalMismatchError(pos int, expected, found string) *ParseError {
	return NewParseError(LiteralMismatchError, pos, func() string {
		return fmt.Sprintf("expected %q but got %q", expected, found)
	})
}

func tooFewDigitsError(pos, got int, expected func() string) *ParseError {
	return NewParseError(TooFewDigitsError, pos, func() string {
		return fmt.Sprintf("expecting %s but only got %d digits", expected(), got)
	})
}

func outOfRangeError(pos int, digits, what string) *ParseError {
	return NewParseError(OutOfRangeError, pos, func() string {
		return fmt.Sprintf("cannot interpret %q as %s: out of range", digits, what)
	})
}

func digitsMismatchError(pos int, expected, found string) *ParseError {
	return NewParseError(LiteralMismatchError, pos, func() string {
		return fmt.Sprintf("expected digits %q but got %q", expected, found)
	})
}

func unknownNameError(pos int, what string, found string) *ParseError {
	return NewParseError(UnknownNameError, pos, func() string {
		return fmt.Sprintf("expected %s but got %q", what, found)
	})
}

func signMismatchError(pos int, expected string, found byte) *ParseError {
	c := found
	return NewParseError(LiteralMismatchError, pos, func() string {
		return fmt.Sprintf("expected %s but got %q", expected, string(c))
	})
}

func fieldConflictError(pos int, name string, prev, next any) *ParseError {
	return NewParseError(FieldConflictError, pos, func() string {
		return fmt.Sprintf("field %s is assigned conflicting values %v and %v", name, prev, next)
	})
}

func remainingInputError(pos int, input string) *ParseError {
	return NewParseError(RemainingInputError, pos, func() string {
		return fmt.Sprintf("expected end of input but got %q", truncate(input[pos:], 16))
	})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// MatchError aggregates the failures of every explored branch when no
// branch succeeds. Errors are ranked by descending position: the branch
// that consumed the most input is the most diagnostically relevant.
type MatchError struct {
	Errors []*ParseError
}

func (e *MatchError) Error() string {
	if len(e.Errors) == 0 {
		return "cannot parse: no parser branches"
	}
	parts := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		parts[i] = pe.Error()
	}
	return "cannot parse: " + strings.Join(parts, "; ")
}
