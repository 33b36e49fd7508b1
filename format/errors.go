package format

import (
	"github.com/ava12/datefmt"
	"github.com/ava12/datefmt/datetime"
)

const (
	UnknownLetterError = datefmt.PatternErrors + iota
	UnbalancedQuoteError
	UnbalancedBracketError
	EmptyPatternError
	NoAlternativeError
	LetterCountError
)

func unknownLetterError(pos int, letter byte) *datefmt.Error {
	return datefmt.FormatErrorPos(pos, UnknownLetterError, "unknown pattern letter %q", letter)
}

func unbalancedQuoteError(pos int) *datefmt.Error {
	return datefmt.FormatErrorPos(pos, UnbalancedQuoteError, "unterminated quoted literal")
}

func unbalancedBracketError(pos int) *datefmt.Error {
	return datefmt.FormatErrorPos(pos, UnbalancedBracketError, "unbalanced optional section bracket")
}

func emptyPatternError() *datefmt.Error {
	return datefmt.FormatError(EmptyPatternError, "empty pattern")
}

func letterCountError(pos int, letter byte, count int) *datefmt.Error {
	return datefmt.FormatErrorPos(pos, LetterCountError, "pattern letter %q repeated %d times", letter, count)
}

func noAlternativeError(cause error) *datefmt.Error {
	return datefmt.FormatError(NoAlternativeError, "no alternative can be formatted: %s", cause.Error())
}

func missingValueError(name string) *datefmt.Error {
	return datefmt.FormatError(datetime.MissingFieldError, "cannot format: field %s is not set", name)
}

func valueRangeError(name string, value int) *datefmt.Error {
	return datefmt.FormatError(datetime.FieldRangeError, "cannot format: field %s value %d is out of range", name, value)
}
