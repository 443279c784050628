// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tm1637 controls a 4-digit 7-segment display through the Titan
// Micro TM1637 controller using two GPIO lines.
//
// The chip speaks an I²C-like two-wire protocol without addressing. This
// driver emulates open-drain signaling purely through pin direction
// changes: a released line (input with pull-up) floats high, a driven
// line (output) is held low, and the host never writes a high level. Both
// lines therefore need a pull-up resistor; most TM1637 breakout modules
// carry one on board.
//
// # Hardware Connection
//
// Connect the display module to your system:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V or 5V
//	CLK         → any free GPIO
//	DIO         → any free GPIO
//
// # Basic Usage
//
//	dev, err := tm1637.Setup(tm1637.SchemeBroadcom, 21, 20)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := dev.SetShowDoublePoint(true, false); err != nil {
//		log.Fatal(err)
//	}
//	if err := dev.ShowString("1302"); err != nil {
//		log.Fatal(err)
//	}
//
// Setup initializes the periph host, resolves the two pin numbers under
// the requested numbering scheme and keeps the resulting handle as the
// single controller for the process. Code that manages its own pins can
// use New directly with any two gpio.PinIO.
//
// # Timing
//
// Every line transition is followed by a fixed pause, one millisecond by
// default, so a full display update blocks the calling goroutine for
// roughly 200ms. There is no asynchronous variant. A Dev is not safe for
// concurrent use; callers that share one must serialize access
// themselves.
//
// The acknowledgment bit the chip emits after every byte is clocked out
// but not sampled, matching the wiringPi implementations this protocol
// comes from. Set Opts.VerifyACK to sample it and surface a NackError on
// a missing acknowledgment.
//
// # Datasheet
//
// https://www.makerguides.com/wp-content/uploads/2019/08/TM1637-Datasheet.pdf
package tm1637
