// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import (
	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
	"github.com/mue-core/retarget/chainindex"
)

// findPrevMinDifficultyAncestor searches backwards through the chain for
// the last block that did not have the special minimum-difficulty rule
// applied.
func findPrevMinDifficultyAncestor(start chainindex.BlockRef, interval int32, powLimitBits uint32) uint32 {
	node := start
	for node != nil && node.Height()%interval != 0 && node.Bits() == powLimitBits {
		node = node.Parent()
	}
	if node == nil {
		return powLimitBits
	}
	return node.Bits()
}

// legacyTimespanRetarget implements the original Bitcoin-style difficulty
// retarget, applied every DifficultyAdjustmentInterval() blocks and an
// identity function in between (spec §4.B).
func legacyTimespanRetarget(last chainindex.BlockRef, candidateTime int64, params chaincfg.Params) uint32 {
	interval := params.DifficultyAdjustmentInterval()
	nextHeight := last.Height() + 1

	if nextHeight%interval != 0 {
		if params.AllowMinDifficultyBlocks {
			if candidateTime > last.Time()+2*params.PowTargetSpacing {
				log.Debugf("legacy retarget: min-difficulty rule, block time %d exceeds allowance", candidateTime)
				return params.PowLimitBits
			}
			return findPrevMinDifficultyAncestor(last, interval, params.PowLimitBits)
		}
		return last.Bits()
	}

	firstNode := chainindex.RelativeAncestor(last, interval-1)
	if firstNode == nil {
		log.Warnf("legacy retarget: unable to obtain ancestor %d blocks back from height %d", interval-1, last.Height())
		return params.PowLimitBits
	}

	actualTimespan := last.Time() - firstNode.Time()
	adjustedTimespan := clampInt64(actualTimespan, params.PowTargetTimespan/4, params.PowTargetTimespan*4)

	oldTarget, _, _ := bigint.SetCompact(last.Bits())
	newTarget := bigint.MulUint64(oldTarget, uint64(adjustedTimespan))
	newTarget = bigint.DivUint64(newTarget, uint64(params.PowTargetTimespan))
	newTarget = clampTarget(newTarget, params.PowLimit)

	newBits := bigint.GetCompact(newTarget)
	log.Debugf("legacy retarget at height %d: old=%08x new=%08x actual=%ds adjusted=%ds",
		nextHeight, last.Bits(), newBits, actualTimespan, adjustedTimespan)
	return newBits
}
