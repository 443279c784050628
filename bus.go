// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"periph.io/x/conn/v3/gpio"
)

// The two-wire bus is emulated open-drain. The host never writes a high
// level: it either drives a line low or releases it and lets the pull-up
// raise it. Every transition is followed by one fixed pause; the chip
// only needs a few microseconds, the historic 1ms unit is a generous
// margin and nothing below depends on sub-millisecond precision.

// release lets the line float high through the pull-up.
func (d *Dev) release(p gpio.PinIO) error {
	return p.In(gpio.PullUp, gpio.NoEdge)
}

// drive pulls the line low.
func (d *Dev) drive(p gpio.PinIO) error {
	return p.Out(gpio.Low)
}

func (d *Dev) wait() {
	if d.delay > 0 {
		d.clock.Sleep(d.delay)
	}
}

// start signals the beginning of a command. Both lines must be released
// from a prior stop or from initialization.
func (d *Dev) start() error {
	if err := d.drive(d.dio); err != nil {
		return err
	}
	d.wait()
	return nil
}

// stop releases the bus: data driven low, clock released, then data
// released while the clock is high.
func (d *Dev) stop() error {
	if err := d.drive(d.dio); err != nil {
		return err
	}
	d.wait()
	if err := d.release(d.clk); err != nil {
		return err
	}
	d.wait()
	if err := d.release(d.dio); err != nil {
		return err
	}
	d.wait()
	return nil
}

// writeByte shifts out one byte, least significant bit first, then runs
// the acknowledgment cycle.
func (d *Dev) writeByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := d.drive(d.clk); err != nil {
			return err
		}
		d.wait()

		// Driving means low and releasing means high, so a set bit
		// releases the pin.
		var err error
		if b&1 == 1 {
			err = d.release(d.dio)
		} else {
			err = d.drive(d.dio)
		}
		if err != nil {
			return err
		}
		d.wait()

		if err := d.release(d.clk); err != nil {
			return err
		}
		d.wait()
		b >>= 1
	}
	return d.ack()
}

// ack clocks out the acknowledgment bit the chip asserts after a byte.
// The stock cycle never samples the data line: the fixed delays stand in
// for real verification, so an unconnected display goes unnoticed here.
// With Opts.VerifyACK the data line is released and sampled while the
// clock is high, and a high reading reports NackError.
func (d *Dev) ack() error {
	if !d.verifyACK {
		if err := d.drive(d.clk); err != nil {
			return err
		}
		d.wait()
		if err := d.release(d.clk); err != nil {
			return err
		}
		d.wait()
		if err := d.drive(d.clk); err != nil {
			return err
		}
		d.wait()
		return nil
	}

	if err := d.drive(d.clk); err != nil {
		return err
	}
	d.wait()
	if err := d.release(d.dio); err != nil {
		return err
	}
	d.wait()
	if err := d.release(d.clk); err != nil {
		return err
	}
	d.wait()
	level := d.dio.Read()
	if err := d.drive(d.clk); err != nil {
		return err
	}
	d.wait()
	if level == gpio.High {
		return &NackError{}
	}
	return nil
}

// command frames a single command byte between start and stop.
func (d *Dev) command(b byte) error {
	if err := d.start(); err != nil {
		return err
	}
	err := d.writeByte(b)
	if serr := d.stop(); err == nil {
		err = serr
	}
	return err
}
