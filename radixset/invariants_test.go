// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package radixset

import (
	"testing"

	"github.com/cidrkit/cidrkit/bitstring"
)

// checkInvariants recursively verifies tree invariants 1-4 of spec section
// 3 starting at root (invariant 5, shape determinism, is exercised
// separately in set_test.go by inserting the same members in different
// orders and comparing trees).
func checkInvariants(t *testing.T, root *node) {
	t.Helper()
	if root == nil {
		return
	}
	walkInvariants(t, root)
	checkNoRedundantDescendants(t, collectLeafKeys(root))
}

func walkInvariants(t *testing.T, n *node) {
	t.Helper()
	if n.isLeaf {
		return
	}

	for _, child := range []*node{n.left, n.right} {
		if child == nil {
			t.Fatalf("inner node %v has a nil child (invariant 2 violated)", n.key)
		}
		if n.key.Len() >= child.key.Len() {
			t.Fatalf("child key %v is not longer than parent key %v (invariant 1 violated)", child.key, n.key)
		}
		if sp := n.key.SharedPrefixLen(child.key); sp != n.key.Len() {
			t.Fatalf("parent key %v is not a prefix of child key %v (invariant 1 violated)", n.key, child.key)
		}
	}
	if n.left.key.Get(n.key.Len()) {
		t.Fatalf("left child %v does not have bit 0 at the branch position (invariant 1 violated)", n.left.key)
	}
	if !n.right.key.Get(n.key.Len()) {
		t.Fatalf("right child %v does not have bit 1 at the branch position (invariant 1 violated)", n.right.key)
	}

	if n.left.isLeaf && n.right.isLeaf &&
		n.left.key.Len() == n.key.Len()+1 && n.right.key.Len() == n.key.Len()+1 {
		t.Fatalf("node %v has two single-bit leaf children that should have been folded (invariant 3 violated)", n.key)
	}

	walkInvariants(t, n.left)
	walkInvariants(t, n.right)
}

// collectLeafKeys returns every leaf key under n, in left-to-right order.
func collectLeafKeys(n *node) []bitstring.BitString {
	if n == nil {
		return nil
	}
	if n.isLeaf {
		return []bitstring.BitString{n.key}
	}
	out := collectLeafKeys(n.left)
	return append(out, collectLeafKeys(n.right)...)
}

// checkNoRedundantDescendants verifies invariant 4: no leaf key is a
// strict prefix of another leaf key.
func checkNoRedundantDescendants(t *testing.T, leaves []bitstring.BitString) {
	t.Helper()
	for i := range leaves {
		for j := range leaves {
			if i == j {
				continue
			}
			if leaves[i].SharedPrefixLen(leaves[j]) == leaves[i].Len() && leaves[i].Len() < leaves[j].Len() {
				t.Fatalf("leaf %v is a strict prefix of leaf %v (invariant 4 violated)", leaves[i], leaves[j])
			}
		}
	}
}
