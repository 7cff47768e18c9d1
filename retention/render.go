package retention

import (
	"strconv"
	"strings"

	"github.com/samalone/Hasami/errors"
	"github.com/samalone/Hasami/timecode"
)

// Rendering uses strconv's digit alphabet (0-9 then a-z), which caps the
// printable base at 36. Retain itself has no such ceiling.
const maxRenderBase = 36

// Description renders the set most-recent-first, one member per line,
// each written as a base-N digit string left-padded with zeros to the
// most recent member's width so every line is equally wide. The empty
// set renders as the empty string. The output is a bit-exact contract
// used by golden tests.
func (s Set) Description(base int) (string, error) {
	if err := checkRenderBase(base); err != nil {
		return "", err
	}
	if len(s.codes) == 0 {
		return "", nil
	}
	if s.codes[0] < 0 {
		return "", errors.Wrapf(errors.ErrNegativeTimeCode, "oldest member %d", int64(s.codes[0]))
	}

	width := digitWidth(s.codes[len(s.codes)-1], base)
	var b strings.Builder
	for i := len(s.codes) - 1; i >= 0; i-- {
		if i < len(s.codes)-1 {
			b.WriteByte('\n')
		}
		b.WriteString(padded(s.codes[i], base, width))
	}
	return b.String(), nil
}

// Diff renders the union of s and other most-recent-first, padded to the
// union's widest member. Lines are prefixed "+ " for members only in
// other, "- " for members only in s, and two spaces for members of both.
func (s Set) Diff(other Set, base int) (string, error) {
	if err := checkRenderBase(base); err != nil {
		return "", err
	}
	union := s.Union(other)
	if len(union.codes) == 0 {
		return "", nil
	}
	if union.codes[0] < 0 {
		return "", errors.Wrapf(errors.ErrNegativeTimeCode, "oldest member %d", int64(union.codes[0]))
	}

	width := digitWidth(union.codes[len(union.codes)-1], base)
	var b strings.Builder
	for i := len(union.codes) - 1; i >= 0; i-- {
		c := union.codes[i]
		if i < len(union.codes)-1 {
			b.WriteByte('\n')
		}
		switch {
		case !s.Contains(c):
			b.WriteString("+ ")
		case !other.Contains(c):
			b.WriteString("- ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(padded(c, base, width))
	}
	return b.String(), nil
}

func checkRenderBase(base int) error {
	if base <= 1 {
		return errors.Wrapf(errors.ErrInvalidBase, "base %d", base)
	}
	if base > maxRenderBase {
		return errors.Wrapf(errors.ErrInvalidBase, "base %d: rendering supports bases 2 through %d", base, maxRenderBase)
	}
	return nil
}

func digitWidth(c timecode.TimeCode, base int) int {
	n, _ := c.DigitCount(base)
	return n
}

func padded(c timecode.TimeCode, base, width int) string {
	digits := strconv.FormatInt(int64(c), base)
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
