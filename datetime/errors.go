package datetime

import (
	"github.com/ava12/datefmt"
)

const (
	MissingFieldError = datefmt.FieldErrors + iota
	FieldRangeError
	FieldMismatchError
)

func missingFieldError(name string) *datefmt.Error {
	return datefmt.FormatError(MissingFieldError, "field %s is not set", name)
}

func rangeError(name string, value int) *datefmt.Error {
	return datefmt.FormatError(FieldRangeError, "field %s value %d is out of range", name, value)
}

func mismatchError(name string, got, expected int) *datefmt.Error {
	return datefmt.FormatError(FieldMismatchError, "field %s value %d contradicts the other fields (expecting %d)", name, got, expected)
}
