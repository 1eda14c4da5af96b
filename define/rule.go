// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

// Package define implements the two renderings of a radixset.Set described
// in spec section 4.D: Compress (the shortest override list) and Complete
// (the full, disjoint partition of the address space), plus Aggregate, the
// include-only subsequence of Complete.
package define

import (
	"fmt"

	"github.com/cidrkit/cidrkit/bitstring"
)

// Rule is a single signed prefix rule: a prefix plus whether it is
// included or excluded. A rendering is an ordered slice of Rules.
type Rule struct {
	Prefix  bitstring.BitString
	Include bool
}

// String renders "include <prefix>" or "exclude <prefix>", using the
// Prefix's own Stringer if it has one.
func (r Rule) String() string {
	if r.Include {
		return fmt.Sprintf("include %v", r.Prefix)
	}
	return fmt.Sprintf("exclude %v", r.Prefix)
}

// Bare renders just the prefix, with no include/exclude word — the
// aggregate rendering's output form.
func (r Rule) Bare() string {
	return fmt.Sprintf("%v", r.Prefix)
}

func flipPolarity(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Prefix: r.Prefix, Include: !r.Include}
	}
	return out
}
