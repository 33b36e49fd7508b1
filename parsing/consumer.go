package parsing

import (
	"fmt"
	"math"
	"strings"
)

// NumberConsumer decodes one numeric field out of a digit run. Consumers
// never touch the input directly: the numeric-span operation partitions a
// digit run and hands each consumer its substring.
type NumberConsumer[T any] interface {
	// Length returns the exact digit count consumed, or 0 for the single
	// variable-length consumer of a span.
	Length() int

	// Describe returns the human-readable expectation for diagnostics,
	// e.g. "4 digits for year".
	Describe() string

	// Consume interprets digits (a non-empty all-digit substring located
	// at pos in the original input) and mutates out.
	Consume(out T, digits string, pos int) *ParseError
}

func parseDigits(digits string) (int64, bool) {
	var v int64
	for i := 0; i < len(digits); i++ {
		if v > (math.MaxInt64-9)/10 {
			return 0, false
		}
		v = v*10 + int64(digits[i]-'0')
	}
	return v, true
}

func describeDigits(length int, name string) string {
	if length == 0 {
		return "one or more digits for " + name
	}
	return fmt.Sprintf("%d digits for %s", length, name)
}

// UnsignedIntConsumer assigns an unsigned decimal value, optionally negated
// before assignment, through a set-once-consistently field.
type UnsignedIntConsumer[T any] struct {
	length int
	field  AssignableField[T, int]
	negate bool
}

// NewUnsignedIntConsumer creates a consumer taking exactly length digits,
// or a variable-length one if length is 0.
func NewUnsignedIntConsumer[T any](length int, field AssignableField[T, int], negate bool) *UnsignedIntConsumer[T] {
	if length < 0 {
		panic(fmt.Sprintf("datefmt: negative consumer length %d for field %s", length, field.Name()))
	}
	return &UnsignedIntConsumer[T]{length, field, negate}
}

func (c *UnsignedIntConsumer[T]) Length() int {
	return c.length
}

func (c *UnsignedIntConsumer[T]) Describe() string {
	return describeDigits(c.length, c.field.Name())
}

func (c *UnsignedIntConsumer[T]) Consume(out T, digits string, pos int) *ParseError {
	v, ok := parseDigits(digits)
	if !ok || v > math.MaxInt32 {
		return outOfRangeError(pos, digits, c.field.Name())
	}
	value := int(v)
	if c.negate {
		value = -value
	}
	return setWithoutReassigning(c.field, out, value, pos)
}

// UnsignedLongConsumer is UnsignedIntConsumer for 64-bit fields
// (e.g. epoch seconds).
type UnsignedLongConsumer[T any] struct {
	length int
	field  AssignableField[T, int64]
}

func NewUnsignedLongConsumer[T any](length int, field AssignableField[T, int64]) *UnsignedLongConsumer[T] {
	if length < 0 {
		panic(fmt.Sprintf("datefmt: negative consumer length %d for field %s", length, field.Name()))
	}
	return &UnsignedLongConsumer[T]{length, field}
}

func (c *UnsignedLongConsumer[T]) Length() int {
	return c.length
}

func (c *UnsignedLongConsumer[T]) Describe() string {
	return describeDigits(c.length, c.field.Name())
}

func (c *UnsignedLongConsumer[T]) Consume(out T, digits string, pos int) *ParseError {
	v, ok := parseDigits(digits)
	if !ok {
		return outOfRangeError(pos, digits, c.field.Name())
	}
	return setWithoutReassigning(c.field, out, v, pos)
}

// ConstantDigitsConsumer matches a fixed digit string and assigns nothing.
// It exists so that literal text bounded by digits can take part in a
// numeric span instead of breaking it.
type ConstantDigitsConsumer[T any] struct {
	digits string
}

func NewConstantDigitsConsumer[T any](digits string) *ConstantDigitsConsumer[T] {
	if digits == "" {
		panic("datefmt: empty constant digit string")
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			panic(fmt.Sprintf("datefmt: non-digit %q in constant digit string %q", digits[i], digits))
		}
	}
	return &ConstantDigitsConsumer[T]{digits}
}

func (c *ConstantDigitsConsumer[T]) Length() int {
	return len(c.digits)
}

func (c *ConstantDigitsConsumer[T]) Describe() string {
	return "digits " + c.digits
}

func (c *ConstantDigitsConsumer[T]) Consume(out T, digits string, pos int) *ParseError {
	if digits != c.digits {
		return digitsMismatchError(pos, c.digits, digits)
	}
	return nil
}

// FractionConsumer interprets digits as the numerator of a decimal fraction
// of a second and assigns the value scaled to nanoseconds. Accepts between
// minLength and maxLength digits; with minLength == maxLength the consumer
// is fixed-length, otherwise it is the variable-length member of its span.
type FractionConsumer[T any] struct {
	minLength, maxLength int
	field                AssignableField[T, int]
}

func NewFractionConsumer[T any](minLength, maxLength int, field AssignableField[T, int]) *FractionConsumer[T] {
	if minLength < 1 || maxLength > 9 || minLength > maxLength {
		panic(fmt.Sprintf("datefmt: invalid fraction bounds %d..%d", minLength, maxLength))
	}
	return &FractionConsumer[T]{minLength, maxLength, field}
}

func (c *FractionConsumer[T]) Length() int {
	if c.minLength == c.maxLength {
		return c.minLength
	}
	return 0
}

func (c *FractionConsumer[T]) Describe() string {
	if c.minLength == c.maxLength {
		return describeDigits(c.minLength, c.field.Name())
	}
	return fmt.Sprintf("%d to %d digits for %s", c.minLength, c.maxLength, c.field.Name())
}

func (c *FractionConsumer[T]) Consume(out T, digits string, pos int) *ParseError {
	if len(digits) < c.minLength || len(digits) > c.maxLength {
		return outOfRangeError(pos, digits, c.field.Name())
	}
	v, _ := parseDigits(digits)
	scale := 9 - len(digits)
	for i := 0; i < scale; i++ {
		v *= 10
	}
	return setWithoutReassigning(c.field, out, int(v), pos)
}

// ReducedYearConsumer maps a fixed-width year abbreviation into the
// base..base+10^width-1 window, e.g. two digits against base 1960 map
// 60 to 1960 and 59 to 2059.
type ReducedYearConsumer[T any] struct {
	length int
	base   int
	field  AssignableField[T, int]
}

func NewReducedYearConsumer[T any](length, base int, field AssignableField[T, int]) *ReducedYearConsumer[T] {
	if length < 1 || length > 9 {
		panic(fmt.Sprintf("datefmt: invalid reduced year length %d", length))
	}
	return &ReducedYearConsumer[T]{length, base, field}
}

func (c *ReducedYearConsumer[T]) Length() int {
	return c.length
}

func (c *ReducedYearConsumer[T]) Describe() string {
	return describeDigits(c.length, c.field.Name())
}

func (c *ReducedYearConsumer[T]) Consume(out T, digits string, pos int) *ParseError {
	v, _ := parseDigits(digits)
	window := 1
	for i := 0; i < c.length; i++ {
		window *= 10
	}
	lowered := c.base % window
	if lowered < 0 {
		lowered += window
	}
	value := c.base - lowered + int(v)
	if int(v) < lowered {
		value += window
	}
	return setWithoutReassigning(c.field, out, value, pos)
}

func describeConsumers[T any](consumers []NumberConsumer[T]) string {
	if len(consumers) == 1 {
		return consumers[0].Describe()
	}
	parts := make([]string, len(consumers))
	for i, c := range consumers {
		parts[i] = c.Describe()
	}
	return "a number spanning " + strings.Join(parts, ", ")
}
