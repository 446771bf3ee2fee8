// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainindex defines the read-only view of a header chain the
// retargeting algorithms walk backwards through. It owns no storage: the
// surrounding block-index keeps the real chain and hands out BlockRef
// values that satisfy this interface.
package chainindex

import (
	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chainhash"
)

// BlockRef is a read-only projection of one accepted block header: its
// height, timestamp, compact difficulty bits, accumulated chain work, and a
// link to its parent. Implementations are supplied by the surrounding
// block-index store; this core neither creates nor mutates them.
type BlockRef interface {
	// Height is the block's height; genesis is 0.
	Height() int32

	// Time is the block's timestamp, Unix seconds.
	Time() int64

	// Bits is the block's compact difficulty target.
	Bits() uint32

	// ChainWork is the cumulative work of the chain ending at this block.
	ChainWork() bigint.Int256

	// Parent returns the previous block, or nil at genesis. Every walk in
	// this package must treat a nil Parent as the end of history rather
	// than an error (§4.H).
	Parent() BlockRef
}

// Hash is implemented by a BlockRef that also carries its own block hash.
// Kept as a separate, optional interface since the retargeting algorithms
// themselves never need a block's own hash; the Verifier takes the hash as
// a plain chainhash.Hash argument rather than through this interface.
type Hash interface {
	BlockHash() chainhash.Hash
}

// RelativeAncestor walks back n blocks from ref and returns that ancestor,
// or nil if the chain runs out first; a short chain is reported by the nil
// result rather than by an error. The legacy interval lookup uses it to
// find the first block of its window.
func RelativeAncestor(ref BlockRef, n int32) BlockRef {
	node := ref
	for i := int32(0); i < n && node != nil; i++ {
		node = node.Parent()
	}
	return node
}

// Walk calls visit once for ref and then for each ancestor in turn, stopping
// when visit returns false, when max blocks have been visited (max <= 0
// means unbounded), or when the chain is exhausted (Parent() == nil).
func Walk(ref BlockRef, max int, visit func(i int, node BlockRef) bool) {
	node := ref
	for i := 1; node != nil; i++ {
		if max > 0 && i > max {
			return
		}
		if !visit(i, node) {
			return
		}
		node = node.Parent()
	}
}
