// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const (
	cmdDataWrite   byte = 0x40 // data command, auto-increment addressing
	cmdSetAddress  byte = 0xc0 // address command, start at grid 0
	cmdDisplayCtrl byte = 0x80 // display control, low nibble carries brightness

	// NumDigits is the number of digits the chip drives.
	NumDigits = 4

	// MaxBrightness is the top of the range SetBrightness accepts. Bit 3
	// of the range doubles as the chip's display-ON bit, so 8 to 15 are
	// the usual visible levels.
	MaxBrightness = 15

	// DefaultBusDelay is the pause after every line transition.
	DefaultBusDelay = time.Millisecond
)

// Opts holds the configuration for the display.
type Opts struct {
	// BusDelay is the pause after every line transition. Zero disables
	// pacing entirely, which is only sensible against an emulated bus.
	BusDelay time.Duration
	// VerifyACK samples the data line during the acknowledgment window
	// and makes bus writes fail with NackError when the chip stays
	// silent. Off by default to match the historic non-verifying cycle.
	VerifyACK bool
	// Clock paces the bus. Defaults to the wall clock; swap in a fake
	// for tests.
	Clock clockwork.Clock
}

// DefaultOpts is the recommended configuration.
var DefaultOpts = Opts{BusDelay: DefaultBusDelay}

// Dev is a handle to a TM1637 display.
//
// Bus operations block the calling goroutine for the duration of their
// fixed delays and run to completion once started. A Dev carries no lock;
// it is not safe for concurrent use.
type Dev struct {
	clk gpio.PinIO
	dio gpio.PinIO

	delay     time.Duration
	verifyACK bool
	clock     clockwork.Clock

	brightness  int
	doublePoint bool
	lastShown   [NumDigits]rune
	segments    map[rune]byte
}

// New returns a Dev driving a TM1637 through the given clock and data
// pins. Both lines need a pull-up; the driver only ever pulls them low or
// releases them. Each line is driven low once so that later direction
// flips always pull low, then released to the idle high state.
func New(clk, dio gpio.PinIO, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	c := opts.Clock
	if c == nil {
		c = clockwork.NewRealClock()
	}
	d := &Dev{
		clk:        clk,
		dio:        dio,
		delay:      opts.BusDelay,
		verifyACK:  opts.VerifyACK,
		clock:      c,
		brightness: MaxBrightness,
		lastShown:  [NumDigits]rune{'-', '-', '-', '-'},
		segments:   DefaultSegments(),
	}
	for _, p := range []gpio.PinIO{clk, dio} {
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("tm1637: %w", err)
		}
		if err := d.release(p); err != nil {
			return nil, fmt.Errorf("tm1637: %w", err)
		}
	}
	return d, nil
}

// Show replaces the display content. chars must hold exactly four
// characters and every one of them must be present in the segment table;
// nothing is transmitted otherwise. The double point, when enabled, is
// OR-ed into the second digit.
func (d *Dev) Show(chars []rune) error {
	if len(chars) != NumDigits {
		return &LengthError{Got: len(chars)}
	}
	var segs [NumDigits]byte
	for i, c := range chars {
		s, ok := d.segments[c]
		if !ok {
			return &UnknownCharacterError{Char: c}
		}
		segs[i] = s
	}
	copy(d.lastShown[:], chars)
	if d.doublePoint {
		segs[1] |= DoublePoint
	}
	return d.setSegments(segs)
}

// ShowString is Show for a 4-character string.
func (d *Dev) ShowString(s string) error {
	return d.Show([]rune(s))
}

// setSegments transmits the chip's three-command write sequence: data
// command, address plus the four segment bytes, then display control
// with the current brightness.
func (d *Dev) setSegments(segs [NumDigits]byte) error {
	if err := d.command(cmdDataWrite); err != nil {
		return err
	}
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdSetAddress); err != nil {
		_ = d.stop()
		return err
	}
	for _, s := range segs {
		if err := d.writeByte(s); err != nil {
			_ = d.stop()
			return err
		}
	}
	if err := d.stop(); err != nil {
		return err
	}
	return d.command(cmdDisplayCtrl | byte(d.brightness))
}

// SetShowDoublePoint toggles the colon between the second and third
// digits. With autoFlush the previous content is retransmitted right
// away, otherwise the change takes effect on the next Show.
func (d *Dev) SetShowDoublePoint(show, autoFlush bool) error {
	d.doublePoint = show
	if autoFlush {
		return d.Show(d.lastShown[:])
	}
	return nil
}

// IsShowDoublePoint reports whether the double point is enabled. No bus
// activity.
func (d *Dev) IsShowDoublePoint() bool {
	return d.doublePoint
}

// SetBrightness sets the brightness, 0 (dark) to 15. With autoFlush the
// previous content is retransmitted at the new level, otherwise the
// change takes effect on the next Show.
func (d *Dev) SetBrightness(level int, autoFlush bool) error {
	if level < 0 || level > MaxBrightness {
		return &BrightnessRangeError{Value: level}
	}
	d.brightness = level
	if autoFlush {
		return d.Show(d.lastShown[:])
	}
	return nil
}

// Brightness returns the stored brightness. No bus activity.
func (d *Dev) Brightness() int {
	return d.brightness
}

// AddCharacter inserts or overrides a segment mapping. The value is
// trusted as-is (0b0GFEDCBA) and used by every following Show.
func (d *Dev) AddCharacter(c rune, segments byte) {
	d.segments[c] = segments
}

// LastShown returns the characters of the most recent Show.
func (d *Dev) LastShown() [NumDigits]rune {
	return d.lastShown
}

func (d *Dev) String() string {
	return fmt.Sprintf("TM1637{%s, %s}", d.clk, d.dio)
}

// Halt blanks the display. Implements conn.Resource. The stored state,
// lastShown included, is kept so a later Show or flush resumes where the
// caller left off.
func (d *Dev) Halt() error {
	return d.setSegments([NumDigits]byte{})
}

var _ conn.Resource = &Dev{}
