// Package numlit parses the integer literal syntax shared by the CLI flags
// and the debugger REPL: an optional radix prefix followed by digits.
package numlit

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts s into a uint64, recognizing "0x"/"$" for hex and "0b"/"%"
// for binary ahead of the digits; anything else is parsed as decimal.
func Parse(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(trimmed, "0x"), strings.HasPrefix(trimmed, "0X"):
		return parseBase(trimmed[2:], 16, s)
	case strings.HasPrefix(trimmed, "$"):
		return parseBase(trimmed[1:], 16, s)
	case strings.HasPrefix(trimmed, "0b"), strings.HasPrefix(trimmed, "0B"):
		return parseBase(trimmed[2:], 2, s)
	case strings.HasPrefix(trimmed, "%"):
		return parseBase(trimmed[1:], 2, s)
	default:
		return parseBase(trimmed, 10, s)
	}
}

func parseBase(digits string, base int, original string) (uint64, error) {
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("numlit: invalid literal %q: %w", original, err)
	}
	return v, nil
}

// ParseUint16 is a convenience wrapper for addresses: Parse followed by a
// range check.
func ParseUint16(s string) (uint16, error) {
	v, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if v > 0xFFFF {
		return 0, fmt.Errorf("numlit: literal %q out of 16-bit range", s)
	}
	return uint16(v), nil
}

// ParseUint8 is a convenience wrapper for byte-sized literals.
func ParseUint8(s string) (uint8, error) {
	v, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if v > 0xFF {
		return 0, fmt.Errorf("numlit: literal %q out of 8-bit range", s)
	}
	return uint8(v), nil
}
