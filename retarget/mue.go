// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import (
	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
	"github.com/mue-core/retarget/chainindex"
)

// mueScanDepth is the fixed number of blocks (the tip and five ancestors)
// MUE looks back across to build its five solve-time intervals.
const mueScanDepth = 6

// mueVLF returns the per-interval weighting factor for a solve time dt,
// spec §4.E's VLF table.
func mueVLF(dt, spacing int64) float64 {
	switch {
	case dt >= spacing:
		switch {
		case dt > 9*spacing:
			return 0.5
		case dt > 3*spacing:
			return 0.75
		default:
			return 1.0
		}
	default:
		switch {
		case dt < spacing-5:
			return 2.0
		case dt < spacing-2:
			return 1.5
		default:
			return 1.25
		}
	}
}

// mueLocal computes the next compact target using the MUE local
// algorithm: a fixed 6-block lookahead whose five solve-time intervals
// are each scored by mueVLF, averaged, and used to scale the last block's
// target (spec §4.E).
func mueLocal(last chainindex.BlockRef, params chaincfg.Params, now int64) uint32 {
	staleAfter := 9 * params.PowTargetSpacing

	if last.Height() < mueScanDepth || now-last.Time() > staleAfter {
		return params.PowLimitBits
	}

	var factorSum float64
	prevTime := last.Time()
	node := last

	for k := int64(1); k <= mueScanDepth-1; k++ {
		node = node.Parent()
		if node == nil {
			log.Warnf("MUE retarget: ran out of ancestors at scan position %d", k)
			return params.PowLimitBits
		}
		if now-node.Time() > staleAfter {
			return params.PowLimitBits
		}

		dt := prevTime - node.Time()
		factorSum += mueVLF(dt, params.PowTargetSpacing)
		prevTime = node.Time()
	}

	average := factorSum / float64(mueScanDepth-1)
	difficultyFactor := uint64(average * 10000)
	if difficultyFactor == 0 {
		difficultyFactor = 1
	}

	lastTarget, _, _ := bigint.SetCompact(last.Bits())
	newTarget := bigint.DivUint64(lastTarget, difficultyFactor)
	newTarget = bigint.MulUint64(newTarget, 10000)
	newTarget = clampTarget(newTarget, params.PowLimit)

	newBits := bigint.GetCompact(newTarget)
	log.Debugf("MUE retarget at height %d: avgFactor=%.4f new=%08x", last.Height()+1, average, newBits)
	return newBits
}
