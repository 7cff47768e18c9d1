// Package timecode exposes a positional digit view over integer timestamps.
//
// A TimeCode is any totally-ordered integer key, typically a Unix
// timestamp. The retention algorithm partitions sets of time codes by
// their digits in a configurable base, so the digit view is the only
// structure this package adds over the raw value: equality and order are
// by the integer itself.
//
// Digit positions count from 0 at the least significant digit. The
// positional-prefix property holds for non-negative values: if two values
// share every digit above some position p, every value between them
// shares those digits too. Truncating division breaks that property
// across zero, so digit operations reject negative values with
// ErrNegativeTimeCode rather than picking a convention.
package timecode

import (
	"github.com/samalone/Hasami/errors"
)

// TimeCode is an immutable integer timestamp. Equality and ordering
// follow the raw value.
type TimeCode int64

// Digit returns the digit of t at the given position in the given base,
// in the range [0, base).
func (t TimeCode) Digit(position, base int) (int, error) {
	if err := check(t, position, base); err != nil {
		return 0, err
	}
	return t.digit(position, base), nil
}

// DigitCount returns the minimal number of digits needed to write t in
// the given base. Zero still needs one digit, so the count is always at
// least 1.
func (t TimeCode) DigitCount(base int) (int, error) {
	if err := check(t, 0, base); err != nil {
		return 0, err
	}
	return t.digitCount(base), nil
}

// MostSignificantDifferingDigit returns the highest digit position at
// which t and other disagree in the given base. ok is false when the two
// values are equal, in which case no such position exists.
func (t TimeCode) MostSignificantDifferingDigit(other TimeCode, base int) (pos int, ok bool, err error) {
	if err := check(t, 0, base); err != nil {
		return 0, false, err
	}
	if err := check(other, 0, base); err != nil {
		return 0, false, err
	}
	pos, ok = t.differingDigit(other, base)
	return pos, ok, nil
}

func check(t TimeCode, position, base int) error {
	if base <= 1 {
		return errors.Wrapf(errors.ErrInvalidBase, "base %d", base)
	}
	if position < 0 {
		return errors.Wrapf(errors.ErrInvalidDigitPosition, "position %d", position)
	}
	if t < 0 {
		return errors.Wrapf(errors.ErrNegativeTimeCode, "value %d", int64(t))
	}
	return nil
}

// Unchecked fast paths below are used by the retention recursion, which
// validates base and sign once at its entry point.

func (t TimeCode) digit(position, base int) int {
	v := int64(t)
	b := int64(base)
	for ; position > 0; position-- {
		v /= b
	}
	return int(v % b)
}

func (t TimeCode) digitCount(base int) int {
	count := 1
	for v := int64(t) / int64(base); v > 0; v /= int64(base) {
		count++
	}
	return count
}

func (t TimeCode) differingDigit(other TimeCode, base int) (int, bool) {
	if t == other {
		return 0, false
	}
	hi := t
	if other > hi {
		hi = other
	}
	for pos := hi.digitCount(base) - 1; pos >= 0; pos-- {
		if t.digit(pos, base) != other.digit(pos, base) {
			return pos, true
		}
	}
	// Unreachable: unequal values must differ somewhere below their
	// shared width.
	return 0, false
}
