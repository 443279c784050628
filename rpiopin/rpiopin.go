// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rpiopin exposes Raspberry Pi GPIOs accessed through go-rpio as
// periph gpio.PinIO.
//
// go-rpio talks to /dev/gpiomem (or /dev/mem) directly, without the
// periph host drivers. This adapter lets such pins drive any periph
// device, the TM1637 included:
//
//	if err := rpiopin.Open(); err != nil {
//		log.Fatal(err)
//	}
//	defer rpiopin.Close()
//	dev, err := tm1637.New(rpiopin.NewPin(21), rpiopin.NewPin(20), nil)
//
// Pins are BCM numbered. Edge detection and PWM are not mapped.
package rpiopin

import (
	"errors"
	"fmt"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Open maps the GPIO memory range. Call it once before using pins.
func Open() error {
	return rpio.Open()
}

// Close unmaps the GPIO memory range.
func Close() error {
	return rpio.Close()
}

// Pin is a single BCM-numbered GPIO.
type Pin struct {
	n    int
	p    rpio.Pin
	pull gpio.Pull
	dir  string
}

// NewPin returns the pin for a BCM GPIO number. Open must have succeeded
// before the pin is used.
func NewPin(bcm int) *Pin {
	return &Pin{n: bcm, p: rpio.Pin(bcm), pull: gpio.Float, dir: "In"}
}

func (p *Pin) String() string {
	return p.Name()
}

func (p *Pin) Name() string {
	return fmt.Sprintf("GPIO%d", p.n)
}

func (p *Pin) Number() int {
	return p.n
}

func (p *Pin) Function() string {
	return p.dir
}

func (p *Pin) Halt() error {
	return nil
}

func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return errors.New("rpiopin: edge detection is not supported")
	}
	p.p.Input()
	switch pull {
	case gpio.PullUp:
		p.p.PullUp()
	case gpio.PullDown:
		p.p.PullDown()
	default:
		p.p.PullOff()
	}
	p.pull = pull
	p.dir = "In"
	return nil
}

func (p *Pin) Read() gpio.Level {
	return gpio.Level(p.p.Read() == rpio.High)
}

func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *Pin) Pull() gpio.Pull {
	return p.pull
}

func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.Float
}

func (p *Pin) Out(l gpio.Level) error {
	p.p.Output()
	if l {
		p.p.High()
	} else {
		p.p.Low()
	}
	p.dir = "Out"
	return nil
}

func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("rpiopin: PWM is not supported")
}

var _ gpio.PinIO = &Pin{}
