// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import (
	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
	"github.com/mue-core/retarget/chainindex"
)

// dgwWindow is Dark Gravity Wave's fixed window: 24 blocks in, 24 out.
var dgwWindow = windowBounds{min: 24, max: 24}

// muedgwWindow is the MUEDGW variant's window: the averaging phase closes
// one block earlier than the scan, otherwise identical to DGW (spec §4.D).
var muedgwWindow = windowBounds{min: 23, max: 24}

// windowBounds parameterizes the fixed-window average used by DGW and
// MUEDGW, which are otherwise bit-for-bit the same algorithm.
type windowBounds struct {
	min, max int64
}

// darkGravityWave computes the next compact target by averaging the
// decoded targets of a fixed-size window of recent blocks, then scaling
// that average by the ratio of actual to expected elapsed time over the
// window (spec §4.D). DGW and MUEDGW share this body, differing only in
// window size.
func darkGravityWave(last chainindex.BlockRef, params chaincfg.Params, w windowBounds) uint32 {
	if last.Height() == 0 || int64(last.Height()) < w.min {
		return params.PowLimitBits
	}

	var (
		avg            bigint.Int256
		avgPrev        bigint.Int256
		actualTimespan int64
		lastBlockTime  int64
		count          int64
		reading        = last
	)

	for i := int64(1); reading != nil; i++ {
		if w.max > 0 && i > w.max {
			break
		}
		count++

		if count <= w.min {
			target, _, _ := bigint.SetCompact(reading.Bits())
			if count == 1 {
				avg = target
			} else {
				avg = bigint.DivUint64(
					bigint.Add(bigint.MulUint64(avgPrev, uint64(count)), target),
					uint64(count+1),
				)
			}
			avgPrev = avg
		}

		if lastBlockTime > 0 {
			actualTimespan += lastBlockTime - reading.Time()
		}
		lastBlockTime = reading.Time()

		if reading.Parent() == nil {
			break
		}
		reading = reading.Parent()
	}

	targetTimespan := count * params.PowTargetSpacing
	actualTimespan = clampInt64(actualTimespan, targetTimespan/3, targetTimespan*3)

	newTarget := bigint.MulUint64(avg, uint64(actualTimespan))
	newTarget = bigint.DivUint64(newTarget, uint64(targetTimespan))
	newTarget = clampTarget(newTarget, params.PowLimit)

	newBits := bigint.GetCompact(newTarget)
	log.Debugf("DGW-family retarget at height %d: window=%d count=%d actual=%ds target=%ds new=%08x",
		last.Height()+1, w.max, count, actualTimespan, targetTimespan, newBits)
	return newBits
}
