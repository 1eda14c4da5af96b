// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

// Package driver is the testable core of the cidrkit CLI: it owns line
// reading, CIDR insertion, rendering selection and output writing. See
// cmd/cidrkit for the cobra-based flag wiring that builds a Config and
// calls Run.
package driver

import (
	"errors"
	"fmt"

	"github.com/cidrkit/cidrkit/cidr"
)

// Mode selects which of the three renderings the driver emits.
type Mode int

const (
	// ModeCompress is the default: the shortest override list.
	ModeCompress Mode = iota
	// ModeComplete partitions the whole address space.
	ModeComplete
	// ModeAggregate is Complete restricted to include-tagged entries.
	ModeAggregate
)

// ErrArgumentConflict reports mutually exclusive or missing flag
// combinations (spec section 6). cmd/cidrkit returns it for flag
// conflicts; Config.Validate returns it for an unknown Mode.
var ErrArgumentConflict = errors.New("cidrkit: argument conflict")

// Config holds the resolved CLI flags.
type Config struct {
	// Any, when true, detects the family per input line (a pack
	// extension spec section 6 explicitly allows) instead of
	// requiring a single -4/-6 for the whole run.
	Any    bool
	Family cidr.Family // meaningful only when !Any

	Mode   Mode
	Invert bool

	// Stats prints the number of parsed input prefixes and emitted rules
	// to stderr after rendering.
	Stats bool
}

// Validate checks that Mode is one of the three known renderings. The
// "exactly one of {-4,-6,--any}" and "-c/-a mutually exclusive" rules are
// enforced by cmd/cidrkit while it builds the Config; a Config cannot
// express those conflicts, so Validate does not check them.
func (c Config) Validate() error {
	if c.Mode != ModeCompress && c.Mode != ModeComplete && c.Mode != ModeAggregate {
		return fmt.Errorf("%w: unknown mode %d", ErrArgumentConflict, c.Mode)
	}
	return nil
}
