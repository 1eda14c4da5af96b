// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package radixset

import "github.com/cidrkit/cidrkit/bitstring"

// Set is a path-compressed binary radix tree over bitstring.BitString
// keys. The zero value is an empty, ready-to-use set. Insert is the sole
// mutator; every other operation is a read-only traversal starting at
// Root.
type Set struct {
	root *node
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool { return s.root == nil }

// Root returns the read-only root node, or the zero Node (on which IsLeaf
// and Key panic) if the set is empty. Callers should check Empty first.
func (s *Set) Root() Node { return Node{s.root} }

// Insert adds key (and every bit-string it is a prefix of) to the set.
// Inserting a key that is already a member, or a prefix of an existing
// member, removes the subsumed members and is otherwise idempotent.
//
// The four-case analysis below mirrors spec section 4.C exactly: let
// sp = shared prefix length of the current node's key and key, nL/kL their
// respective lengths.
func (s *Set) Insert(key bitstring.BitString) {
	owned := key.Clone()
	if s.root == nil {
		s.root = newLeaf(owned)
		return
	}
	s.root.insert(owned)
}

func (n *node) insert(key bitstring.BitString) {
	selfLen := n.key.Len()
	kLen := key.Len()
	sp := n.key.SharedPrefixLen(key)

	switch {
	case sp == selfLen && sp == kLen:
		// Case 1: keys equal. A leaf already covers key; an inner node
		// is replaced by a leaf, discarding its entire subtree. Already
		// maximal, no compression check needed.
		if n.isLeaf {
			return
		}
		n.convertToLeaf(n.key)
		return

	case sp == selfLen && sp < kLen:
		// Case 2: key lies below n. A leaf already covers it; an inner
		// node recurses into the matching child, then falls through to
		// the post-recursion compression check.
		if n.isLeaf {
			return
		}
		if key.Get(selfLen) {
			n.right.insert(key)
		} else {
			n.left.insert(key)
		}

	case sp == kLen && sp < selfLen:
		// Case 3: key is a strict prefix of n, i.e. n's entire subtree
		// is subsumed. Replace n by a leaf at the shorter key. Already
		// maximal, no compression check needed.
		n.key.Clip(sp)
		n.convertToLeaf(n.key)
		return

	default:
		// Case 4: sp < min(selfLen, kLen), the keys diverge. Split n's
		// current position into a new inner node whose children are
		// n's former contents (preserved in a fresh node) and a new
		// leaf for key, then fall through to the compression check.
		displaced := &node{key: n.key, isLeaf: n.isLeaf, left: n.left, right: n.right}
		branchKey := n.key.Clone()
		branchKey.Clip(sp)
		n.convertToInner(branchKey, displaced, newLeaf(key))
	}

	n.compress()
}

// compress folds n into a single leaf if both children are leaves whose
// keys are exactly one bit longer than n's own (invariant 3). It is only
// ever useful on the recursion path of an Insert, right after a node was
// freshly created (case 4) or after recursing into a child (case 2) — a
// compressed tree plus one insertion can only create a collapsible pair
// at nodes on that path.
func (n *node) compress() {
	if n.isLeaf {
		return
	}
	if !n.left.isLeaf || !n.right.isLeaf {
		return
	}
	childLen := n.key.Len() + 1
	if n.left.key.Len() == childLen && n.right.key.Len() == childLen {
		n.convertToLeaf(n.key)
	}
}
