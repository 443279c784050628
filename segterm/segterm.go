// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segterm emulates a 4-digit 7-segment display on a terminal
// using ANSI color codes.
//
// Useful while you are waiting for your TM1637 module to come by mail:
// feed it the same segment bytes the driver would transmit and it draws
// three rows of colored blocks per refresh, colon included.
package segterm

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// Opts represents the options available for this display.
type Opts struct {
	// On is the color of a lit segment. Defaults to LED red.
	On color.NRGBA
	// Palette maps colors to the terminal. Defaults to ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev renders segment bytes as glyph art on the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	on      color.NRGBA

	drawn bool
	buf   bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev rendering to an arbitrary writer.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on := opts.On
	if on == (color.NRGBA{}) {
		on = color.NRGBA{R: 255, G: 32, B: 16, A: 255}
	}
	return &Dev{w: w, palette: *p, on: on}
}

func (d *Dev) String() string {
	return "SegTerm"
}

// Halt implements conn.Resource. It resets the terminal attributes and
// moves past the drawing.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// segmentMask lays a digit out as a 3x3 cell grid. Zero cells stay
// blank, the others light up when the corresponding segment bit is set.
//
//	. A .
//	F G B
//	E D C
var segmentMask = [3][3]byte{
	{0x00, 0x01, 0x00},
	{0x20, 0x40, 0x02},
	{0x10, 0x08, 0x04},
}

// Write accepts exactly four segment bytes (0b0GFEDCBA each, bit 7 of
// the second byte lights the colon) and redraws the display in place.
func (d *Dev) Write(segments []byte) (int, error) {
	if len(segments) != 4 {
		return 0, errors.New("segterm: need exactly 4 segment bytes")
	}
	d.buf.Reset()
	if d.drawn {
		// Redraw over the previous frame.
		d.buf.WriteString("\033[3A\r")
	}
	d.buf.WriteString("\033[0m")
	for row := 0; row < 3; row++ {
		for i, s := range segments {
			for col := 0; col < 3; col++ {
				mask := segmentMask[row][col]
				d.cell(mask != 0 && s&mask != 0)
			}
			switch i {
			case 1:
				// The colon column sits between the second and third
				// digits.
				d.cell(row > 0 && segments[1]&0x80 != 0)
			case 3:
			default:
				d.buf.WriteByte(' ')
			}
		}
		d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return len(segments), err
}

func (d *Dev) cell(lit bool) {
	if lit {
		_, _ = io.WriteString(&d.buf, d.palette.Block(d.on))
	} else {
		d.buf.WriteByte(' ')
	}
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
