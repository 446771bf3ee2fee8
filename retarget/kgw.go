// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import (
	"math"

	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
	"github.com/mue-core/retarget/chainindex"
)

// kgwWindowBounds derives the adaptive min/max window sizes (in blocks)
// Kimoto Gravity Well scans, from the network's target spacing/timespan.
func kgwWindowBounds(params chaincfg.Params) (min, max int32) {
	pastSecondsMin := float64(params.PowTargetTimespan) * 0.025
	pastSecondsMax := float64(params.PowTargetTimespan) * 7

	min = int32(pastSecondsMin / float64(params.PowTargetSpacing))
	max = int32(pastSecondsMax / float64(params.PowTargetSpacing))
	return min, max
}

// kimotoGravityWell computes the next compact target with Kimoto Gravity
// Well: a window sized by recent block rate, averaged with a running
// smoothed target and terminated once the measured/target rate ratio
// crosses an event-horizon bound that tightens as the window grows
// (spec §4.C).
func kimotoGravityWell(last chainindex.BlockRef, params chaincfg.Params) uint32 {
	pastBlocksMin, pastBlocksMax := kgwWindowBounds(params)

	if last.Height() == 0 || last.Height() < pastBlocksMin {
		return params.PowLimitBits
	}

	var (
		avg                bigint.Int256
		avgPrev            bigint.Int256
		actualSeconds      int64
		targetSeconds      int64
		adjustmentRatio    = 1.0
		blocksScanned      int64
		reading            = last
	)

	for i := int64(1); reading != nil; i++ {
		if pastBlocksMax > 0 && i > int64(pastBlocksMax) {
			break
		}
		blocksScanned++

		target, _, _ := bigint.SetCompact(reading.Bits())
		if i > 1 {
			if bigint.Cmp(target, avgPrev) >= 0 {
				avg = bigint.Add(bigint.DivUint64(bigint.Sub(target, avgPrev), uint64(i)), avgPrev)
			} else {
				avg = bigint.Sub(avgPrev, bigint.DivUint64(bigint.Sub(avgPrev, target), uint64(i)))
			}
		} else {
			avg = target
		}
		avgPrev = avg

		actualSeconds = last.Time() - reading.Time()
		targetSeconds = params.PowTargetSpacing * blocksScanned
		if actualSeconds < 0 {
			actualSeconds = 0
		}

		adjustmentRatio = 1.0
		if actualSeconds != 0 && targetSeconds != 0 {
			adjustmentRatio = float64(targetSeconds) / float64(actualSeconds)
		}

		eventHorizon := 1 + 0.7084*math.Pow(float64(blocksScanned)/28.2, -1.228)
		eventHorizonFast := eventHorizon
		eventHorizonSlow := 1 / eventHorizon

		if blocksScanned >= int64(pastBlocksMin) {
			if adjustmentRatio <= eventHorizonSlow || adjustmentRatio >= eventHorizonFast {
				break
			}
		}

		if reading.Parent() == nil {
			break
		}
		reading = reading.Parent()
	}

	newTarget := avg
	if actualSeconds != 0 && targetSeconds != 0 {
		newTarget = bigint.MulUint64(newTarget, uint64(actualSeconds))
		newTarget = bigint.DivUint64(newTarget, uint64(targetSeconds))
	}
	newTarget = clampTarget(newTarget, params.PowLimit)

	newBits := bigint.GetCompact(newTarget)
	log.Debugf("KGW retarget at height %d: scanned=%d ratio=%.6f new=%08x",
		last.Height()+1, blocksScanned, adjustmentRatio, newBits)
	return newBits
}
