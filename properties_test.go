// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package siphash24

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 100; trial++ {
		var seed [SeedSize]byte
		rng.Read(seed[:])
		in := make([]byte, rng.Intn(256))
		rng.Read(in)

		first := Hash(seed, in)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Hash(seed, in))
		}
	}
}

func TestRandomPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 200; trial++ {
		var seed [SeedSize]byte
		rng.Read(seed[:])
		in := make([]byte, rng.Intn(512))
		rng.Read(in)

		want := Hash(seed, in)

		s := Init(seed)
		for rest := in; len(rest) > 0; {
			cut := rng.Intn(len(rest) + 1)
			s.Append(rest[:cut])
			rest = rest[cut:]
		}
		require.Equal(t, want, s.Finalize(), "partitioned digest diverged, input len %d", len(in))
	}
}

// TestSeedSensitivity hashes one fixed input under many random seeds and
// requires all digests to be distinct.
func TestSeedSensitivity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := []byte("fixed message for seed sensitivity")

	seen := make(map[uint64][SeedSize]byte, 2000)
	for trial := 0; trial < 2000; trial++ {
		var seed [SeedSize]byte
		rng.Read(seed[:])

		v := Hash(seed, in)
		prev, dup := seen[v]
		require.False(t, dup && prev != seed, "digest collision between seeds %x and %x", prev, seed)
		seen[v] = seed
	}
}

// TestAvalanche flips a random input bit and expects roughly half the
// output bits to change on average.
func TestAvalanche(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	const trials = 4000
	total := 0
	for trial := 0; trial < trials; trial++ {
		var seed [SeedSize]byte
		rng.Read(seed[:])
		in := make([]byte, 1+rng.Intn(64))
		rng.Read(in)

		before := Hash(seed, in)
		in[rng.Intn(len(in))] ^= 1 << rng.Intn(8)
		after := Hash(seed, in)

		total += bits.OnesCount64(before ^ after)
	}

	mean := float64(total) / trials
	require.InDelta(t, 32.0, mean, 2.0, "mean flipped output bits")
}
