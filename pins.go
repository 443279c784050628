// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// NumberingScheme selects how Setup interprets pin numbers.
type NumberingScheme int

const (
	// SchemeUnspecified is the zero value and rejected by Setup.
	SchemeUnspecified NumberingScheme = iota
	// SchemeBroadcom numbers pins by the SoC's GPIO number (GPIO2,
	// GPIO3, ...).
	SchemeBroadcom
	// SchemeWiringPi numbers pins by wiringPi's own indexes.
	SchemeWiringPi
	// SchemePhysical numbers pins by their position on the 40-pin
	// header.
	SchemePhysical
)

func (s NumberingScheme) String() string {
	switch s {
	case SchemeBroadcom:
		return "Broadcom"
	case SchemeWiringPi:
		return "WiringPi"
	case SchemePhysical:
		return "physical"
	default:
		return "unspecified"
	}
}

// wiringPiToBCM is the classic wiringPi pin table for the 40-pin
// Raspberry Pi header.
var wiringPiToBCM = map[int]int{
	0: 17, 1: 18, 2: 27, 3: 22, 4: 23, 5: 24, 6: 25, 7: 4,
	8: 2, 9: 3, 10: 8, 11: 7, 12: 10, 13: 9, 14: 11, 15: 14,
	16: 15, 21: 5, 22: 6, 23: 13, 24: 19, 25: 26, 26: 12, 27: 16,
	28: 20, 29: 21, 30: 0, 31: 1,
}

// resolvePin translates a pin number under the given scheme to a
// registered gpio.PinIO.
func resolvePin(scheme NumberingScheme, number int) (gpio.PinIO, error) {
	var name string
	switch scheme {
	case SchemeBroadcom:
		name = fmt.Sprintf("GPIO%d", number)
	case SchemeWiringPi:
		bcm, ok := wiringPiToBCM[number]
		if !ok {
			return nil, &PinNameError{Scheme: scheme, Pin: number}
		}
		name = fmt.Sprintf("GPIO%d", bcm)
	case SchemePhysical:
		name = fmt.Sprintf("P1_%d", number)
	default:
		return nil, fmt.Errorf("tm1637: numbering scheme must be specified")
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, &PinNameError{Scheme: scheme, Pin: number}
	}
	return p, nil
}
