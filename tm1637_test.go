// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShow(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.Show([]rune{'1', '2', '3', '4'}); err != nil {
		t.Fatal(err)
	}
	expected := opsShow([NumDigits]byte{0x06, 0x5b, 0x4f, 0x66}, MaxBrightness)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("Show transcript mismatch (-want +got):\n%s", diff)
	}
	if got := d.LastShown(); got != [NumDigits]rune{'1', '2', '3', '4'} {
		t.Errorf("LastShown = %q after Show", got)
	}
}

func TestShowDoublePoint(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.SetShowDoublePoint(true, false); err != nil {
		t.Fatal(err)
	}
	if len(rec.ops) != 0 {
		t.Fatalf("staged double point touched the bus: %v", rec.ops)
	}
	if err := d.Show([]rune{'1', '2', '3', '4'}); err != nil {
		t.Fatal(err)
	}
	// Only the second digit carries the colon bit.
	expected := opsShow([NumDigits]byte{0x06, 0x5b | DoublePoint, 0x4f, 0x66}, MaxBrightness)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("Show transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestShowBadLength(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	for _, chars := range [][]rune{nil, {'1'}, {'1', '2', '3'}, {'1', '2', '3', '4', '5'}} {
		err := d.Show(chars)
		var lerr *LengthError
		if !errors.As(err, &lerr) {
			t.Fatalf("Show(%q) = %v, want LengthError", chars, err)
		}
		if lerr.Got != len(chars) {
			t.Errorf("LengthError.Got = %d, want %d", lerr.Got, len(chars))
		}
	}
	if len(rec.ops) != 0 {
		t.Errorf("rejected Show touched the bus: %v", rec.ops)
	}
	if got := d.LastShown(); got != [NumDigits]rune{'-', '-', '-', '-'} {
		t.Errorf("rejected Show mutated LastShown: %q", got)
	}
}

func TestShowUnknownCharacter(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	err := d.Show([]rune{'1', '2', 'x', '4'})
	var uerr *UnknownCharacterError
	if !errors.As(err, &uerr) {
		t.Fatalf("Show with unmapped char = %v, want UnknownCharacterError", err)
	}
	if uerr.Char != 'x' {
		t.Errorf("UnknownCharacterError.Char = %q, want 'x'", uerr.Char)
	}
	if len(rec.ops) != 0 {
		t.Errorf("rejected Show touched the bus: %v", rec.ops)
	}
	if got := d.LastShown(); got != [NumDigits]rune{'-', '-', '-', '-'} {
		t.Errorf("rejected Show mutated LastShown: %q", got)
	}
	// The table itself must be untouched.
	if _, ok := d.segments['x']; ok {
		t.Error("failed lookup inserted 'x' into the table")
	}
}

func TestSetBrightnessStaged(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	for level := 0; level <= MaxBrightness; level++ {
		if err := d.SetBrightness(level, false); err != nil {
			t.Fatal(err)
		}
		if got := d.Brightness(); got != level {
			t.Errorf("Brightness = %d, want %d", got, level)
		}
	}
	if len(rec.ops) != 0 {
		t.Errorf("staged SetBrightness touched the bus: %v", rec.ops)
	}
}

func TestSetBrightnessFlush(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.SetBrightness(3, true); err != nil {
		t.Fatal(err)
	}
	// The flush retransmits the previous content, four dashes.
	expected := opsShow([NumDigits]byte{0x40, 0x40, 0x40, 0x40}, 3)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("flush transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBrightnessRange(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.SetBrightness(9, false); err != nil {
		t.Fatal(err)
	}
	for _, level := range []int{-1, 16, 100} {
		err := d.SetBrightness(level, true)
		var berr *BrightnessRangeError
		if !errors.As(err, &berr) {
			t.Fatalf("SetBrightness(%d) = %v, want BrightnessRangeError", level, err)
		}
		if berr.Value != level {
			t.Errorf("BrightnessRangeError.Value = %d, want %d", berr.Value, level)
		}
		if got := d.Brightness(); got != 9 {
			t.Errorf("rejected SetBrightness changed brightness to %d", got)
		}
	}
	if len(rec.ops) != 0 {
		t.Errorf("rejected SetBrightness touched the bus: %v", rec.ops)
	}
}

func TestSetShowDoublePointFlush(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.ShowString("0000"); err != nil {
		t.Fatal(err)
	}
	rec.ops = nil
	if err := d.SetShowDoublePoint(true, true); err != nil {
		t.Fatal(err)
	}
	expected := opsShow([NumDigits]byte{0x3f, 0x3f | DoublePoint, 0x3f, 0x3f}, MaxBrightness)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("flush transcript mismatch (-want +got):\n%s", diff)
	}
	if !d.IsShowDoublePoint() {
		t.Error("IsShowDoublePoint = false after enabling")
	}
}

func TestAddCharacter(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	d.AddCharacter('L', 0x38)
	if err := d.Show([]rune{'L', 'L', 'L', 'L'}); err != nil {
		t.Fatal(err)
	}
	expected := opsShow([NumDigits]byte{0x38, 0x38, 0x38, 0x38}, MaxBrightness)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("Show transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCharacterOverride(t *testing.T) {
	d, _ := newFakeDev(t, nil)
	d.AddCharacter('8', 0x00)
	if got := d.segments['8']; got != 0x00 {
		t.Errorf("overridden '8' = %#02x, want 0x00", got)
	}
}

func TestShowString(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.ShowString("AB-F"); err != nil {
		t.Fatal(err)
	}
	expected := opsShow([NumDigits]byte{0x77, 0x7f, 0x40, 0x71}, MaxBrightness)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("Show transcript mismatch (-want +got):\n%s", diff)
	}
	if err := d.ShowString("123"); err == nil {
		t.Error("ShowString with 3 characters did not fail")
	}
}

func TestHalt(t *testing.T) {
	d, rec := newFakeDev(t, nil)
	if err := d.ShowString("1234"); err != nil {
		t.Fatal(err)
	}
	rec.ops = nil
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	expected := opsShow([NumDigits]byte{}, MaxBrightness)
	if diff := cmp.Diff(expected, rec.ops); diff != "" {
		t.Errorf("Halt transcript mismatch (-want +got):\n%s", diff)
	}
	if got := d.LastShown(); got != [NumDigits]rune{'1', '2', '3', '4'} {
		t.Errorf("Halt mutated LastShown: %q", got)
	}
}

func TestString(t *testing.T) {
	d, _ := newFakeDev(t, nil)
	if len(d.String()) == 0 {
		t.Error("empty Stringer output")
	}
}
