// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the minimal 256-bit block-hash type the
// retargeting core compares against a decoded compact target. It carries
// none of the double-SHA256 hashing logic itself (out of scope per §1);
// callers supply already-computed hashes.
package chainhash

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/mue-core/retarget/bigint"
)

// HashSize is the number of bytes in a block hash.
const HashSize = 32

// Hash is a 32-byte block hash stored little-endian, the same layout
// bitcoin-derived headers use on the wire.
type Hash [HashSize]byte

// String returns the big-endian hex encoding conventionally used to display
// block hashes.
func (h Hash) String() string {
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
	return hex.EncodeToString(h[:])
}

// NewHashFromStr decodes a big-endian hex string into a Hash.
func NewHashFromStr(s string) (Hash, error) {
	var h Hash
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("chainhash: decode %q: %w", s, err)
	}
	if len(raw) != HashSize {
		return h, fmt.Errorf("chainhash: %q is %d bytes, want %d", s, len(raw), HashSize)
	}
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	copy(h[:], raw)
	return h, nil
}

// ToBig converts a Hash into a 256-bit value so it can be compared against
// a decoded compact target.
//
// A Hash is little-endian on the wire; this reverses it into the
// big-endian byte order bigint.Int256 is built from.
func ToBig(h Hash) bigint.Int256 {
	buf := h
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return bigint.FromBig(new(big.Int).SetBytes(buf[:]))
}
