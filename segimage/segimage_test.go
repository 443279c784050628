// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segimage

import (
	"image"
	"image/color"
	"testing"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRenderBounds(t *testing.T) {
	img := Render([4]byte{}, nil)
	if got, want := img.Bounds(), image.Rect(0, 0, canvasW, canvasH); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	img = Render([4]byte{}, &Opts{Scale: 2})
	if got, want := img.Bounds(), image.Rect(0, 0, 2*canvasW, 2*canvasH); got != want {
		t.Errorf("scaled bounds = %v, want %v", got, want)
	}
}

func TestRenderSegments(t *testing.T) {
	on := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	off := color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	opts := &Opts{On: on, Off: off}

	// Center of segment A of the first digit.
	a := segmentRects[0]
	ax := int(digitOriginX(0) + a.x + a.w/2)
	ay := int(margin + a.y + a.h/2)

	lit := Render([4]byte{0x7f, 0x7f, 0x7f, 0x7f}, opts)
	if !sameColor(lit.At(ax, ay), on) {
		t.Errorf("segment A lit = %v, want %v", lit.At(ax, ay), on)
	}
	dark := Render([4]byte{}, opts)
	if !sameColor(dark.At(ax, ay), off) {
		t.Errorf("segment A dark = %v, want %v", dark.At(ax, ay), off)
	}
}

func TestRenderDoublePoint(t *testing.T) {
	on := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	off := color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	opts := &Opts{On: on, Off: off}

	cx := int(digitOriginX(1) + digitW + gap/2)
	cy := margin + digitH/3

	with := Render([4]byte{0, 0x80, 0, 0}, opts)
	if !sameColor(with.At(cx, cy), on) {
		t.Errorf("colon lit = %v, want %v", with.At(cx, cy), on)
	}
	without := Render([4]byte{}, opts)
	if !sameColor(without.At(cx, cy), off) {
		t.Errorf("colon dark = %v, want %v", without.At(cx, cy), off)
	}
}
