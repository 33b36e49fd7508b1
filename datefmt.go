/*
Package datefmt is a declarative date-time formatting and parsing engine.

A format is a sequence of directives (literal text, numeric fields, named
fields, signs, optional and alternative sub-patterns). Directives are
compiled once into an executable parser structure that can both render a
structured date-time value to text and recover that structure from text,
with ambiguity resolution and ranked diagnostics on failure.

Consists of subpackages:
  - parsing: the core engine: parser operations, number consumers, parser
    structure concatenation, and the backtracking matcher;
  - datetime: field containers used as matcher output plus complete date,
    time, and UTC offset value types;
  - format: field directives, the format builder, the pattern compiler,
    and the public Format type;
  - cmd/datefmt: console utility for parsing and formatting date-time
    strings with a given pattern.

Typical usage is:

1. Compile a pattern ("yyyy-MM-dd'T'HH:mm:ss") with format.Compile, or
assemble directives programmatically with format.Builder. Compiled formats
are immutable and safe for concurrent use.

2. Call Format to render datetime.Components (or a Date/Time value pair)
to text, or Parse to recover components from text.

3. Convert recovered components to datetime.Date, datetime.Time, or
datetime.UtcOffset values; conversions validate ranges and cross-field
consistency.
*/
package datefmt

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	ParsingErrors = 1   // used by parsing
	PatternErrors = 101 // used by format
	FieldErrors   = 201 // used by datetime
)

// Error is the error type used by datefmt subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including input position if provided.
	Message string

	// Pos contains byte offset in parsed input or -1.
	Pos int
}

// NewError creates new Error structure.
// pos will be added to the error message if non-negative.
func NewError(code int, msg string, pos int) *Error {
	if pos >= 0 {
		msg += fmt.Sprintf(" at position %d", pos)
	}
	return &Error{code, msg, pos}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, -1)
}

// FormatErrorPos creates Error structure with input position information.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos int, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos)
}
