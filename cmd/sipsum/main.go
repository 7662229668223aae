// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

// sipsum prints the SipHash24 digest of stdin or the named files.
//
//	sipsum -key secret file1 file2
//	cat file | sipsum -seed 000102030405060708090a0b0c0d0e0f
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dblokhin/siphash24"
	"github.com/sirupsen/logrus"
)

var (
	seedHex = flag.String("seed", "", "seed as 32 hex digits")
	keyStr  = flag.String("key", "", "arbitrary key material, hashed down to a seed")
)

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

// seed resolves the -seed/-key flags into a 16-byte seed.
func seed() ([siphash24.SeedSize]byte, error) {
	var s [siphash24.SeedSize]byte

	switch {
	case *seedHex != "" && *keyStr != "":
		return s, fmt.Errorf("-seed and -key are mutually exclusive")

	case *seedHex != "":
		raw, err := hex.DecodeString(*seedHex)
		if err != nil {
			return s, fmt.Errorf("invalid -seed: %v", err)
		}
		if len(raw) != siphash24.SeedSize {
			return s, fmt.Errorf("-seed must be %d bytes, got %d", siphash24.SeedSize, len(raw))
		}
		copy(s[:], raw)

	case *keyStr != "":
		s = siphash24.SeedFromBytes([]byte(*keyStr))

	default:
		return s, fmt.Errorf("one of -seed or -key is required")
	}

	return s, nil
}

// sum streams r through the hash and returns the digest.
func sum(s [siphash24.SeedSize]byte, r io.Reader) (uint64, error) {
	h := siphash24.New(s)
	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func sumFile(s [siphash24.SeedSize]byte, name string) (uint64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return sum(s, f)
}

func main() {
	flag.Parse()

	s, err := seed()
	if err != nil {
		logrus.Error(err)
		flag.Usage()
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		v, err := sum(s, os.Stdin)
		if err != nil {
			logrus.Fatalf("stdin: %v", err)
		}
		fmt.Printf("%016x  -\n", v)
		return
	}

	failed := false
	for _, name := range flag.Args() {
		v, err := sumFile(s, name)
		if err != nil {
			logrus.Errorf("%s: %v", name, err)
			failed = true
			continue
		}
		fmt.Printf("%016x  %s\n", v, name)
	}
	if failed {
		os.Exit(1)
	}
}
