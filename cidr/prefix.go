// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

// Package cidr implements the CIDR value type: an address plus a prefix
// length, presented as a bitstring.BitString of length == prefix length.
package cidr

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/cidrkit/cidrkit/bitstring"
)

// Sentinel errors for Parse failures, all satisfying errors.Is.
var (
	ErrAddress     = errors.New("cidr: invalid address")
	ErrLength      = errors.New("cidr: invalid prefix length")
	ErrLengthRange = errors.New("cidr: prefix length out of range")
)

// Prefix is an address + prefix-length pair. It implements
// bitstring.BitString with Len() == the prefix length; bits at or beyond
// Len() are always zero and mutating them beyond Len() is forbidden.
//
// The zero Prefix is not valid; use Null or ParsePrefix.
type Prefix struct {
	fam    Family
	length int
	bits   *bitset.BitSet // capacity fam.MaxLen(), bit i = i-th bit from MSB
}

// Null returns the empty (length 0) prefix for fam, the root of the
// address space.
func Null(fam Family) Prefix {
	return Prefix{fam: fam, length: 0, bits: bitset.New(uint(fam.MaxLen()))}
}

// Family reports the address family of p.
func (p *Prefix) Family() Family { return p.fam }

// Len implements bitstring.BitString.
func (p *Prefix) Len() int { return p.length }

func (p *Prefix) checkIndex(i int) {
	if i < 0 || i >= p.length {
		panic(fmt.Sprintf("cidr: bit index %d out of range for prefix of length %d", i, p.length))
	}
}

// Get implements bitstring.BitString.
func (p *Prefix) Get(i int) bool {
	p.checkIndex(i)
	return p.bits.Test(uint(i))
}

// Set implements bitstring.BitString.
func (p *Prefix) Set(i int, b bool) {
	p.checkIndex(i)
	if b {
		p.bits.Set(uint(i))
	} else {
		p.bits.Clear(uint(i))
	}
}

// Flip implements bitstring.BitString.
func (p *Prefix) Flip(i int) {
	p.checkIndex(i)
	if p.bits.Test(uint(i)) {
		p.bits.Clear(uint(i))
	} else {
		p.bits.Set(uint(i))
	}
}

// Clip implements bitstring.BitString: truncates to length min(Len(), l)
// and zeroes every bit at a position >= l, matching the original
// zerofrom() semantics (it clears to the end of storage, not just to the
// old length).
func (p *Prefix) Clip(l int) {
	if l < 0 {
		l = 0
	}
	if l >= p.length {
		return
	}
	for i := l; i < p.fam.MaxLen(); i++ {
		p.bits.Clear(uint(i))
	}
	p.length = l
}

// Append implements bitstring.BitString.
func (p *Prefix) Append(b bool) {
	if p.length >= p.fam.MaxLen() {
		panic("cidr: Append beyond family max length")
	}
	if b {
		p.bits.Set(uint(p.length))
	} else {
		p.bits.Clear(uint(p.length))
	}
	p.length++
}

// Clone implements bitstring.BitString.
func (p *Prefix) Clone() bitstring.BitString {
	c := p.CloneTyped()
	return &c
}

// CloneTyped is Clone without the bitstring.BitString boxing, for callers
// that need the concrete Prefix value back.
func (p *Prefix) CloneTyped() Prefix {
	return Prefix{fam: p.fam, length: p.length, bits: p.bits.Clone()}
}

// SharedPrefixLen implements bitstring.BitString. Bits are compared a
// machine word at a time when other is also a *cidr.Prefix of the same
// family (the common case inside radixset), falling back to a bit-by-bit
// scan otherwise.
func (p *Prefix) SharedPrefixLen(other bitstring.BitString) int {
	maxLen := p.length
	if other.Len() < maxLen {
		maxLen = other.Len()
	}

	if op, ok := other.(*Prefix); ok && op.fam == p.fam {
		const wordBits = 64
		i := 0
		for ; i+wordBits <= maxLen; i += wordBits {
			if wordAt(p.bits, i) != wordAt(op.bits, i) {
				break
			}
		}
		for ; i < maxLen; i++ {
			if p.bits.Test(uint(i)) != op.bits.Test(uint(i)) {
				return i
			}
		}
		return maxLen
	}

	for i := 0; i < maxLen; i++ {
		if p.Get(i) != other.Get(i) {
			return i
		}
	}
	return maxLen
}

// wordAt packs 64 consecutive bits starting at i into a uint64, MSB first.
func wordAt(b *bitset.BitSet, i int) uint64 {
	var w uint64
	for k := 0; k < 64; k++ {
		if b.Test(uint(i + k)) {
			w |= 1 << uint(63-k)
		}
	}
	return w
}

// ParsePrefix parses "<address>/<length>" (or a bare address, meaning a
// host route of length fam.MaxLen()) into a Prefix of the given family.
func ParsePrefix(fam Family, s string) (Prefix, error) {
	addrPart, lenPart, hasSlash := strings.Cut(s, "/")

	length := fam.MaxLen()
	if hasSlash {
		n, err := strconv.Atoi(lenPart)
		if err != nil {
			return Prefix{}, fmt.Errorf("%w: %q: %v", ErrLength, s, err)
		}
		if n < 0 || n > fam.MaxLen() {
			return Prefix{}, fmt.Errorf("%w: %q: length %d exceeds %d", ErrLengthRange, s, n, fam.MaxLen())
		}
		length = n
	}

	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %q: %v", ErrAddress, s, err)
	}
	switch fam {
	case V4:
		if !addr.Is4() {
			return Prefix{}, fmt.Errorf("%w: %q: not an IPv4 address", ErrAddress, s)
		}
	case V6:
		if !addr.Is6() || addr.Is4In6() {
			return Prefix{}, fmt.Errorf("%w: %q: not an IPv6 address", ErrAddress, s)
		}
	}

	p := Null(fam)
	octets := addr.AsSlice()
	for i := 0; i < length; i++ {
		byteIdx := i / 8
		bitInByte := 7 - (i % 8)
		if octets[byteIdx]&(1<<uint(bitInByte)) != 0 {
			p.bits.Set(uint(i))
		}
	}
	p.length = length
	return p, nil
}

// MustParsePrefix is like ParsePrefix but panics on error; useful in tests
// and literal tables.
func MustParsePrefix(fam Family, s string) Prefix {
	p, err := ParsePrefix(fam, s)
	if err != nil {
		panic(err)
	}
	return p
}

// Addr reconstructs the netip.Addr for p, zero-padding bits beyond Len().
func (p *Prefix) Addr() netip.Addr {
	maxLen := p.fam.MaxLen()
	buf := make([]byte, maxLen/8)
	for i := 0; i < p.length; i++ {
		if p.bits.Test(uint(i)) {
			buf[i/8] |= 1 << uint(7-(i%8))
		}
	}
	addr, _ := netip.AddrFromSlice(buf)
	return addr
}

// String renders the canonical "<address>/<length>" form, including host
// routes (never a bare address).
func (p *Prefix) String() string {
	return fmt.Sprintf("%s/%d", p.Addr(), p.length)
}
