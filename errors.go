// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import "fmt"

// LengthError is returned by Show when the character sequence does not
// contain exactly four characters.
type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("tm1637: need exactly %d characters, got %d", NumDigits, e.Got)
}

// UnknownCharacterError is returned by Show when a character has no
// segment mapping. Add one with AddCharacter first.
type UnknownCharacterError struct {
	Char rune
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("tm1637: the character %q is not mapped, add it with AddCharacter first", e.Char)
}

// BrightnessRangeError is returned by SetBrightness for values outside
// 0 to 15.
type BrightnessRangeError struct {
	Value int
}

func (e *BrightnessRangeError) Error() string {
	return fmt.Sprintf("tm1637: brightness %d outside range 0-%d", e.Value, MaxBrightness)
}

// PinNameError is returned by Setup when a pin number cannot be resolved
// to a registered GPIO under the requested numbering scheme.
type PinNameError struct {
	Scheme NumberingScheme
	Pin    int
}

func (e *PinNameError) Error() string {
	return fmt.Sprintf("tm1637: no GPIO for pin %d under %s numbering", e.Pin, e.Scheme)
}

// NotReadyError is returned by Instance before a successful Setup.
type NotReadyError struct{}

func (e *NotReadyError) Error() string {
	return "tm1637: call Setup(scheme, clkPin, dioPin) before Instance"
}

// AlreadySetupError is returned by Setup once a previous call succeeded.
type AlreadySetupError struct{}

func (e *AlreadySetupError) Error() string {
	return "tm1637: Setup already completed for this process"
}

// NackError is returned by bus writes when Opts.VerifyACK is set and the
// chip did not pull the data line low during the acknowledgment window.
type NackError struct{}

func (e *NackError) Error() string {
	return "tm1637: no acknowledgment from the display"
}
