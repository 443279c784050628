// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segimage renders 4-digit 7-segment display state to an image.
//
// It takes the same segment bytes the driver transmits and draws the
// classic segment bars, ghosting the unlit ones, so display content can
// be snapshotted in documentation or checked without hardware. Rendering
// is a pure function of its input; there is no bus interaction.
package segimage

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Opts represents the rendering options.
type Opts struct {
	// Scale multiplies the base 296x120 canvas. Values <= 0 mean 1.
	Scale float64
	// On is the color of a lit segment.
	On color.Color
	// Off is the color of an unlit segment.
	Off color.Color
	// Background fills the canvas.
	Background color.Color

	_ struct{}
}

// Base geometry, in pixels at scale 1.
const (
	digitW = 56
	digitH = 96
	segT   = 10 // segment bar thickness
	gap    = 16 // between digits
	margin = 12

	canvasW = 2*margin + 4*digitW + 3*gap
	canvasH = 2*margin + digitH
)

// segRect is one segment bar relative to the digit origin.
type segRect struct {
	x, y, w, h float64
}

// segmentRects is indexed by segment bit, A through G.
var segmentRects = [7]segRect{
	{segT, 0, digitW - 2*segT, segT},                             // A
	{digitW - segT, segT, segT, (digitH - 3*segT) / 2},           // B
	{digitW - segT, (digitH + segT) / 2, segT, (digitH - 3*segT) / 2}, // C
	{segT, digitH - segT, digitW - 2*segT, segT},                 // D
	{0, (digitH + segT) / 2, segT, (digitH - 3*segT) / 2},        // E
	{0, segT, segT, (digitH - 3*segT) / 2},                       // F
	{segT, (digitH - segT) / 2, digitW - 2*segT, segT},           // G
}

// digitOriginX returns the left edge of digit i.
func digitOriginX(i int) float64 {
	return margin + float64(i)*(digitW+gap)
}

// Render draws the four digits. Bit 7 of the second byte draws the
// double point; the decimal points of the other digits are not wired on
// colon modules and are ignored here.
func Render(segments [4]byte, opts *Opts) image.Image {
	if opts == nil {
		opts = &Opts{}
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	on := opts.On
	if on == nil {
		on = color.NRGBA{R: 255, G: 32, B: 16, A: 255}
	}
	off := opts.Off
	if off == nil {
		off = color.NRGBA{R: 40, G: 12, B: 8, A: 255}
	}
	bg := opts.Background
	if bg == nil {
		bg = color.NRGBA{R: 12, G: 6, B: 6, A: 255}
	}

	dc := gg.NewContext(int(canvasW*scale), int(canvasH*scale))
	dc.Scale(scale, scale)
	dc.SetColor(bg)
	dc.Clear()

	for i, s := range segments {
		x := digitOriginX(i)
		for bit, r := range segmentRects {
			if s&(1<<uint(bit)) != 0 {
				dc.SetColor(on)
			} else {
				dc.SetColor(off)
			}
			dc.DrawRoundedRectangle(x+r.x, margin+r.y, r.w, r.h, 3)
			dc.Fill()
		}
	}

	// Double point between the second and third digits.
	cx := digitOriginX(1) + digitW + gap/2
	if segments[1]&0x80 != 0 {
		dc.SetColor(on)
	} else {
		dc.SetColor(off)
	}
	dc.DrawCircle(cx, margin+digitH/3, segT/2)
	dc.Fill()
	dc.DrawCircle(cx, margin+2*digitH/3, segT/2)
	dc.Fill()

	return dc.Image()
}
