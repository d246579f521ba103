package long

import (
	"fmt"
	"strconv"
	"strings"
)

// parseChunk is the number of radix digits consumed per strconv call when
// parsing; 8 digits fit comfortably in an int64 for every radix up to 36.
const parseChunk = 8

func (l Long) String() string {
	return strconv.FormatInt(l.int64(), 10)
}

func (l Long) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	l.AsBigInt().Format(s, c)
}

// Text returns the string representation of l in the given radix, which
// must be in the range [2, 36]. Digit values above 9 use the lower-case
// letters 'a' to 'z'. Negative values are prefixed with '-', including
// MinLong.
func (l Long) Text(radix int) (string, error) {
	if radix < 2 || radix > 36 {
		return "", fmt.Errorf("long: radix %d out of range: %w", radix, ErrFormat)
	}
	return strconv.FormatInt(l.int64(), radix), nil
}

// LongFromString creates a Long from a base-10 string. See
// LongFromStringRadix for details.
func LongFromString(s string) (out Long, err error) {
	return LongFromStringRadix(s, 10)
}

// LongFromStringRadix creates a Long from a string in the given radix,
// which must be in the range [2, 36]. A leading '-' negates the parse of
// the remainder of the string; a '-' anywhere else is an error, as is an
// empty string or an invalid digit for the radix. Upper and lower case
// digits are both accepted.
//
// Numeric input wider than 64 bits wraps around the way the arithmetic
// does, so the full MinLong..MaxLong range round-trips through Text and
// String.
func LongFromStringRadix(s string, radix int) (out Long, err error) {
	if radix < 2 || radix > 36 {
		return out, fmt.Errorf("long: radix %d out of range: %w", radix, ErrFormat)
	}
	if s == "" {
		return out, fmt.Errorf("long: empty string: %w", ErrFormat)
	}

	if s[0] == '-' {
		out, err = LongFromStringRadix(s[1:], radix)
		if err != nil {
			return ZeroLong, err
		}
		return out.Neg(), nil
	}
	if strings.IndexByte(s, '-') >= 0 {
		return out, fmt.Errorf("long: interior '-' in string %q: %w", s, ErrFormat)
	}

	// Consuming the input in chunks keeps the number of strconv calls and
	// Mul/Add steps to a minimum:
	radixPowChunk := longFrom64(ipow(int64(radix), parseChunk))

	for i := 0; i < len(s); i += parseChunk {
		end := i + parseChunk
		if end > len(s) {
			end = len(s)
		}
		digits, perr := strconv.ParseUint(s[i:end], radix, 64)
		if perr != nil {
			return ZeroLong, fmt.Errorf("long: string %q invalid: %w", s, ErrFormat)
		}
		if end-i < parseChunk {
			out = out.Mul(longFrom64(ipow(int64(radix), end-i)))
		} else {
			out = out.Mul(radixPowChunk)
		}
		out = out.Add(longFrom64(int64(digits)))
	}
	return out, nil
}

func ipow(base int64, exp int) (out int64) {
	out = 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
