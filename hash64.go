// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package siphash24

import "hash"

// digest adapts State to the standard hash interfaces so SipHash24 can sit
// at the end of an io.Copy or any code written against hash.Hash64. It
// remembers the seed so Reset works.
type digest struct {
	state State
	seed  [SeedSize]byte
}

// New returns a hash.Hash64 computing SipHash24 under seed.
func New(seed [SeedSize]byte) hash.Hash64 {
	return &digest{
		state: Init(seed),
		seed:  seed,
	}
}

// Write feeds p into the hash. It never fails.
func (d *digest) Write(p []byte) (int, error) {
	d.state.Append(p)
	return len(p), nil
}

// Sum64 returns the digest of the bytes written so far. Unlike
// State.Finalize it works on a copy, so writing may continue afterwards.
func (d *digest) Sum64() uint64 {
	s := d.state
	return s.Finalize()
}

// Sum appends the current digest to b in little-endian byte order, the
// order used by the reference test vectors.
func (d *digest) Sum(b []byte) []byte {
	v := d.Sum64()
	return append(b,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

// Reset rewinds the hash to its freshly keyed state.
func (d *digest) Reset() {
	d.state = Init(d.seed)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }
