// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package siphash24

import "golang.org/x/crypto/blake2b"

// SeedFromBytes derives a 16-byte seed from key material of any length by
// truncating its blake2b-256 digest. Use it when the secret is a
// passphrase or some other blob that is not already exactly 16 uniform
// bytes.
func SeedFromBytes(key []byte) [SeedSize]byte {
	sum := blake2b.Sum256(key)

	var seed [SeedSize]byte
	copy(seed[:], sum[:SeedSize])
	return seed
}
