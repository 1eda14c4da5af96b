// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

// Package cidrkit converts a set of IPv4 or IPv6 CIDR prefixes into a
// compact, ordered include/exclude rule list.
//
// The set is built with a path-compressed binary radix tree
// (see package radixset) and rendered with one of three strategies
// (see package define):
//
//   - Compress: the shortest override list whose cumulative effect
//     (later rules override earlier ones for their sub-prefix) equals
//     the input set.
//   - Complete: a full partition of the address space into adjacent,
//     disjoint, include/exclude-tagged prefixes.
//   - Aggregate: the include-tagged subset of Complete, i.e. the
//     maximally aggregated disjoint prefix cover of the input set.
//
// Each rendering can describe the complement set instead by inverting
// polarity.
package cidrkit
