// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package cidr

// Family selects the address family a Prefix belongs to.
type Family uint8

const (
	// V4 selects IPv4, Lmax = 32.
	V4 Family = iota
	// V6 selects IPv6, Lmax = 128.
	V6
)

// MaxLen returns the family's maximum bit-string length (Lmax).
func (f Family) MaxLen() int {
	if f == V4 {
		return 32
	}
	return 128
}

// String implements fmt.Stringer.
func (f Family) String() string {
	if f == V4 {
		return "ipv4"
	}
	return "ipv6"
}
