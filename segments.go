// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

// A segment byte addresses the display segments as 0b0GFEDCBA: bit 0 is
// segment A (top), bit 6 is segment G (middle), bit 7 is the decimal
// point. On 4-digit clock modules the decimal point of the second digit
// is wired to the colon.
const (
	// Blank clears all segments of a digit.
	Blank byte = 0x00
	// MinusSign lights segment G alone.
	MinusSign byte = 0x40
	// DoublePoint is OR-ed into the second segment byte to light the
	// colon.
	DoublePoint byte = 0x80
)

// defaultSegments seeds the character table of every new Dev. Keys are
// case sensitive; only the uppercase hex letters are mapped.
var defaultSegments = map[rune]byte{
	'0': 0x3f,
	'1': 0x06,
	'2': 0x5b,
	'3': 0x4f,
	'4': 0x66,
	'5': 0x6d,
	'6': 0x7d,
	'7': 0x07,
	'8': 0x7f,
	'9': 0x6f,
	'A': 0x77,
	'B': 0x7f,
	'C': 0x39,
	'D': 0x3f,
	'E': 0x79,
	'F': 0x71,
	' ': 0x00,
	'-': 0x40,
	'_': 0x08,
}

// DefaultSegments returns a fresh copy of the character table a new Dev
// starts with.
func DefaultSegments() map[rune]byte {
	m := make(map[rune]byte, len(defaultSegments))
	for k, v := range defaultSegments {
		m[k] = v
	}
	return m
}
