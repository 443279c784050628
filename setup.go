// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"fmt"
	"sync"

	"periph.io/x/host/v3"
)

// The entry points below keep the one-controller-per-process discipline
// of the wiringPi lineage: Setup succeeds at most once and Instance hands
// out the handle it created.

var (
	setupMu  sync.Mutex
	instance *Dev
)

// Setup initializes the periph host, binds the two bus pins under the
// given numbering scheme and returns the process-wide display handle
// built with DefaultOpts.
//
// A second call after a success fails with AlreadySetupError. A host
// initialization failure does not consume the single Setup: it reflects
// an environment problem (missing permissions, unsupported platform) and
// the caller may fix it and call Setup again.
func Setup(scheme NumberingScheme, clkPin, dioPin int) (*Dev, error) {
	setupMu.Lock()
	defer setupMu.Unlock()
	if instance != nil {
		return nil, &AlreadySetupError{}
	}
	if scheme == SchemeUnspecified {
		return nil, fmt.Errorf("tm1637: numbering scheme must be specified")
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("tm1637: host init: %w", err)
	}
	clk, err := resolvePin(scheme, clkPin)
	if err != nil {
		return nil, err
	}
	dio, err := resolvePin(scheme, dioPin)
	if err != nil {
		return nil, err
	}
	d, err := New(clk, dio, nil)
	if err != nil {
		return nil, err
	}
	instance = d
	return d, nil
}

// Instance returns the handle created by Setup, or NotReadyError if no
// Setup succeeded yet.
func Instance() (*Dev, error) {
	setupMu.Lock()
	defer setupMu.Unlock()
	if instance == nil {
		return nil, &NotReadyError{}
	}
	return instance, nil
}
