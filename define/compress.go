// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package define

import (
	"github.com/cidrkit/cidrkit/bitstring"
	"github.com/cidrkit/cidrkit/radixset"
)

// Compress returns the shortest ordered "later overrides earlier"
// include/exclude rule list equal to s. null is the zero-length bit
// string for the family in use (e.g. cidr.Null(fam).Clone()); it is only
// consulted when s is empty.
//
// An empty, non-inverted set renders to no rules at all (spec's adopted
// resolution of the first Design Notes open question — not a single
// "exclude <null>"). Inverting an empty set renders to a single
// "include <null>", the whole address space.
func Compress(s *radixset.Set, null bitstring.BitString, invert bool) []Rule {
	if s.Empty() {
		if invert {
			return []Rule{{Prefix: null, Include: true}}
		}
		return nil
	}

	pos, neg := compressBranch(0, s.Root())
	if !invert {
		return pos
	}
	return flipPolarity(neg)
}

// compressBranch is the "branch" wrapper of spec 4.D.2: it crosses the
// path-compression gap between a parent (whose key has length fromLen)
// and branch, whose key may be longer due to path compression.
func compressBranch(fromLen int, branch radixset.Node) (pos, neg []Rule) {
	pathLen := branch.Key().Len() - fromLen
	if pathLen == 0 {
		return compressInner(branch)
	}

	pos, neg = compressInner(branch)
	exclDef := Rule{Prefix: branch.Key().Clone(), Include: false}

	if pathLen == 1 && len(pos) >= len(neg) {
		// The next branch would have the same length, but exclude a
		// higher level than necessary — keep excludes longer if
		// possible by excluding just the sibling bit.
		exclDef.Prefix.Flip(fromLen)
		if branch.Key().Get(fromLen) {
			neg = prepend(exclDef, neg)
		} else {
			neg = append(neg, exclDef)
		}
		return pos, neg
	}

	exclDef.Prefix.Clip(fromLen)
	if len(pos) < len(neg)+2 {
		// Exclude the whole parent cone, then re-include via pos —
		// shorter and still correct.
		combined := make([]Rule, 0, 1+len(pos))
		combined = append(combined, exclDef)
		combined = append(combined, pos...)
		neg = combined
		return pos, neg
	}

	// Exclude the whole parent cone, re-include exactly branch, then
	// subtract via neg.
	inclDef := Rule{Prefix: branch.Key().Clone(), Include: true}
	combined := make([]Rule, 0, 2+len(neg))
	combined = append(combined, exclDef, inclDef)
	combined = append(combined, neg...)
	neg = combined
	return pos, neg
}

// compressInner is compressBranch's special case fromLen == branch's own
// key length: the bottom-up synthesis at a single node.
func compressInner(n radixset.Node) (pos, neg []Rule) {
	if n.IsLeaf() {
		return []Rule{{Prefix: n.Key().Clone(), Include: true}}, nil
	}

	fromLen := n.Key().Len() + 1
	lPos, lNeg := compressBranch(fromLen, n.Left())
	rPos, rNeg := compressBranch(fromLen, n.Right())

	dP := len(lPos) + len(rPos)
	dQ := len(lNeg) + len(rNeg)
	diff := dP - dQ

	switch {
	case diff >= -1 && diff <= 1:
		pos = append(lPos, rPos...)
		neg = append(lNeg, rNeg...)

	case diff < -1:
		// Negative list would be too long: describe the subtree
		// positively and fall back to excluding the whole cone plus
		// that positive list.
		pos = append(lPos, rPos...)
		neg = make([]Rule, 0, 1+len(pos))
		neg = append(neg, Rule{Prefix: n.Key().Clone(), Include: false})
		neg = append(neg, pos...)

	default: // diff > 1
		// Positive list would be too long: describe the subtree
		// negatively and fall back to including the whole cone plus
		// that negative list.
		neg = append(lNeg, rNeg...)
		pos = make([]Rule, 0, 1+len(neg))
		pos = append(pos, Rule{Prefix: n.Key().Clone(), Include: true})
		pos = append(pos, neg...)
	}

	return pos, neg
}

func prepend(r Rule, rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules)+1)
	out = append(out, r)
	out = append(out, rules...)
	return out
}
