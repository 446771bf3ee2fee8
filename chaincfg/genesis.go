// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/mue-core/retarget/chainhash"

// MainNetGenesisHash is the hash of the first block on Main, used by §8
// scenario 5's check-PoW example. Transaction/merkle-root construction that
// would normally produce this hash belongs to block serialization, out of
// scope for this core (§1); the hash is a fixed constant here, the same way
// a header-only SPV client treats it. Stored little-endian, matching
// chainhash.Hash's wire layout: these are the reversed bytes of the
// conventional big-endian display
// 000002acd994a815401fbaae0e52404b32857efd0b7b0c77b8e0715ccdd6d437.
var MainNetGenesisHash = chainhash.Hash([chainhash.HashSize]byte{
	0x37, 0xd4, 0xd6, 0xcd, 0x5c, 0x71, 0xe0, 0xb8,
	0x77, 0x0c, 0x7b, 0x0b, 0xfd, 0x7e, 0x85, 0x32,
	0x4b, 0x40, 0x52, 0x0e, 0xae, 0xba, 0x1f, 0x40,
	0x15, 0xa8, 0x94, 0xd9, 0xac, 0x02, 0x00, 0x00,
})
