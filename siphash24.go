// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// Package siphash24 implements the SipHash-2-4 keyed hash function by
// Jean-Philippe Aumasson and Daniel J. Bernstein, with a streaming API:
// the digest is the same regardless of how the input is chunked across
// Append calls. A keyed PRF like this keeps hash tables safe from
// flooding attacks as long as the seed stays secret.
package siphash24

// SeedSize is the seed length in bytes.
const SeedSize = 16

// Size is the digest length in bytes.
const Size = 8

// BlockSize is the underlying word size in bytes.
const BlockSize = 8

// State is the SipHash24 accumulator. It holds the four mix words, up to
// seven trailing input bytes that do not yet fill a word, and the total
// byte count. The zero value is not usable; obtain one from Init.
//
// Between calls exactly n mod 8 bytes are pending. The byte counter wraps
// modulo 2^64 on absurdly long inputs; only its low 8 bits reach the
// final padding word, so wraparound is defined behavior, not an error.
//
// A State is a plain value with no shared memory: distinct instances may
// be used from distinct goroutines freely, a single instance must not.
type State struct {
	v0, v1, v2, v3 uint64

	// pending holds the sub-word tail of the input, packed little-endian
	// into the low n mod 8 bytes. The rest is always zero.
	pending uint64
	n       uint64
}

// Init returns a fresh State keyed with the 16-byte seed. The seed is read
// as two little-endian 64-bit halves. Initialization never fails; an
// all-zero seed is valid but gives an attacker-predictable keystream, so
// callers wanting flood resistance must keep the seed secret and random.
func Init(seed [SeedSize]byte) State {
	k0 := readLE64(seed[0:8])
	k1 := readLE64(seed[8:16])

	// The xor constants are the reference implementation's
	// "somepseudorandomlygeneratedbytes".
	return State{
		v0: 0x736f6d6570736575 ^ k0,
		v1: 0x646f72616e646f6d ^ k1,
		v2: 0x6c7967656e657261 ^ k0,
		v3: 0x7465646279746573 ^ k1,
	}
}

// round is one SipRound over the four mix words.
func (s *State) round() {
	s.v0 += s.v1
	s.v1 = s.v1<<13 | s.v1>>(64-13)
	s.v1 ^= s.v0
	s.v0 = s.v0<<32 | s.v0>>(64-32)

	s.v2 += s.v3
	s.v3 = s.v3<<16 | s.v3>>(64-16)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = s.v3<<21 | s.v3>>(64-21)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = s.v1<<17 | s.v1>>(64-17)
	s.v1 ^= s.v2
	s.v2 = s.v2<<32 | s.v2>>(64-32)
}

// fold mixes one complete input word into the state: two compression
// rounds per word, the "2" of SipHash-2-4.
func (s *State) fold(m uint64) {
	s.v3 ^= m
	s.round()
	s.round()
	s.v0 ^= m
}

// Append feeds p into the state. It may be called any number of times
// with arbitrarily sized chunks, including empty ones; the resulting
// digest depends only on the concatenated bytes. Chunks that are
// multiples of 8 bytes avoid the byte-at-a-time carry path.
func (s *State) Append(p []byte) {
	left := int(s.n & 7)
	s.n += uint64(len(p))

	// Finish a word carried over from a previous call before touching
	// whole words.
	if left > 0 {
		for len(p) > 0 && left < 8 {
			s.pending |= uint64(p[0]) << (left * 8)
			p = p[1:]
			left++
		}
		if left < 8 {
			return
		}

		s.fold(s.pending)
		s.pending = 0
	}

	for len(p) >= 8 {
		s.fold(readLE64(p))
		p = p[8:]
	}

	// Keep the sub-word tail for the next call or for Finalize.
	for i, b := range p {
		s.pending |= uint64(b) << (i * 8)
	}
}

// Finalize terminates the stream and returns the 64-bit digest. The final
// word is the pending tail with the low byte of the total length in its
// top byte, then the 0xff marker and four finalization rounds. The State
// is consumed: call Init again before reusing it.
func (s *State) Finalize() uint64 {
	s.fold(s.pending | (s.n&0xff)<<56)

	s.v2 ^= 0xff
	s.round()
	s.round()
	s.round()
	s.round()

	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// Hash returns the SipHash24 digest of p under seed. It is equivalent to
// Init, one Append and Finalize.
func Hash(seed [SeedSize]byte, p []byte) uint64 {
	s := Init(seed)
	s.Append(p)
	return s.Finalize()
}

// readLE64 reads a little-endian word from the first 8 bytes of p,
// independent of host byte order.
func readLE64(p []byte) uint64 {
	return uint64(p[0]) |
		uint64(p[1])<<8 |
		uint64(p[2])<<16 |
		uint64(p[3])<<24 |
		uint64(p[4])<<32 |
		uint64(p[5])<<40 |
		uint64(p[6])<<48 |
		uint64(p[7])<<56
}
