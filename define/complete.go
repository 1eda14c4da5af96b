// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package define

import (
	"github.com/cidrkit/cidrkit/bitstring"
	"github.com/cidrkit/cidrkit/radixset"
)

// Complete returns the full partition of the address space into pairwise
// disjoint, include/exclude-tagged prefixes, sorted by numeric address
// (a pre-order walk of the implicit complete binary tree). null is the
// zero-length bit string for the family in use; it is only consulted when
// s is empty.
func Complete(s *radixset.Set, null bitstring.BitString, invert bool) []Rule {
	if s.Empty() {
		return []Rule{{Prefix: null, Include: invert}}
	}
	var out []Rule
	completeBranch(0, s.Root(), &out, invert)
	return out
}

// Aggregate returns the include-tagged subsequence of Complete: the
// maximally aggregated set of disjoint prefixes covering exactly the
// included set.
func Aggregate(s *radixset.Set, null bitstring.BitString, invert bool) []Rule {
	all := Complete(s, null, invert)
	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if r.Include {
			out = append(out, r)
		}
	}
	return out
}

// completeBranch walks the path-compression gap between a parent of key
// length fromLen and branch, emitting one "gap" exclude/include definition
// per missing sibling along the way, in the correct numeric position
// relative to branch's own subtree.
func completeBranch(fromLen int, branch radixset.Node, out *[]Rule, invert bool) {
	branchKey := branch.Key()
	if fromLen == branchKey.Len() {
		completeInner(branch, out, invert)
		return
	}

	gap := Rule{Prefix: branchKey.Clone(), Include: invert}
	gap.Prefix.Flip(fromLen)
	gap.Prefix.Clip(fromLen + 1)

	if branchKey.Get(fromLen) {
		// The gap's sibling bit is 1: the gap lies numerically below
		// branch's own subtree, emit it first.
		*out = append(*out, gap)
		completeBranch(fromLen+1, branch, out, invert)
	} else {
		// The gap lies numerically above branch's subtree, emit it
		// after recursing.
		completeBranch(fromLen+1, branch, out, invert)
		*out = append(*out, gap)
	}
}

// completeInner is completeBranch's special case fromLen == branch's own
// key length.
func completeInner(n radixset.Node, out *[]Rule, invert bool) {
	if n.IsLeaf() {
		*out = append(*out, Rule{Prefix: n.Key().Clone(), Include: !invert})
		return
	}
	fromLen := n.Key().Len() + 1
	completeBranch(fromLen, n.Left(), out, invert)
	completeBranch(fromLen, n.Right(), out, invert)
}
