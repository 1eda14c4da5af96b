// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package define_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidrkit/cidrkit/cidr"
	"github.com/cidrkit/cidrkit/define"
	"github.com/cidrkit/cidrkit/radixset"
)

func newSet(members ...string) *radixset.Set {
	s := new(radixset.Set)
	for _, m := range members {
		p := cidr.MustParsePrefix(cidr.V4, m)
		s.Insert(&p)
	}
	return s
}

func nullV4() cidr.Prefix { return cidr.Null(cidr.V4) }

func TestCompressEmptySet(t *testing.T) {
	s := new(radixset.Set)
	null := nullV4()

	assert.Empty(t, define.Compress(s, null.Clone(), false))

	inv := define.Compress(s, null.Clone(), true)
	require.Len(t, inv, 1)
	assert.True(t, inv[0].Include)
	assert.Equal(t, "0.0.0.0/0", inv[0].Prefix.(*cidr.Prefix).String())
}

func TestCompressWholeSpace(t *testing.T) {
	s := newSet("0.0.0.0/0")
	null := nullV4()

	out := define.Compress(s, null.Clone(), false)
	require.Len(t, out, 1)
	assert.Equal(t, "include 0.0.0.0/0", out[0].String())

	assert.Empty(t, define.Compress(s, null.Clone(), true))
}

func TestCompressTwoPrefixes(t *testing.T) {
	s := newSet("0.0.0.0/1", "128.0.0.0/32")
	null := nullV4()

	out := define.Compress(s, null.Clone(), false)
	require.Len(t, out, 2)
	assert.Equal(t, "include 0.0.0.0/1", out[0].String())
	assert.Equal(t, "include 128.0.0.0/32", out[1].String())

	inv := define.Compress(s, null.Clone(), true)
	require.Len(t, inv, 2)
	assert.Equal(t, "include 128.0.0.0/1", inv[0].String())
	assert.Equal(t, "exclude 128.0.0.0/32", inv[1].String())
}

func TestCompressInvertShorterNegativeList(t *testing.T) {
	s := newSet("0.0.0.0/3", "32.0.0.0/32")
	null := nullV4()

	out := define.Compress(s, null.Clone(), true)
	require.Len(t, out, 3)
	assert.Equal(t, "include 0.0.0.0/0", out[0].String())
	assert.Equal(t, "exclude 0.0.0.0/3", out[1].String())
	assert.Equal(t, "exclude 32.0.0.0/32", out[2].String())
}

func TestCompressTwoHostRoutes(t *testing.T) {
	s := newSet("128.0.0.0/32", "128.1.0.0/32")
	null := nullV4()

	out := define.Compress(s, null.Clone(), false)
	require.Len(t, out, 2)
	assert.Equal(t, "include 128.0.0.0/32", out[0].String())
	assert.Equal(t, "include 128.1.0.0/32", out[1].String())

	inv := define.Compress(s, null.Clone(), true)
	require.Len(t, inv, 3)
	assert.Equal(t, "include 0.0.0.0/0", inv[0].String())
	assert.Equal(t, "exclude 128.0.0.0/32", inv[1].String())
	assert.Equal(t, "exclude 128.1.0.0/32", inv[2].String())
}
