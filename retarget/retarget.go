// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package retarget implements the five proof-of-work difficulty
// retargeting algorithms a Bitcoin-derived chain switches between by
// height: the legacy Bitcoin timespan retarget, Kimoto Gravity Well, Dark
// Gravity Wave (and its MUEDGW sibling), and the local MUE algorithm.
//
// NextTarget and Select read only their arguments (NextTarget also reads
// the wall clock when it dispatches to MUE, for the stale-tip guard),
// perform bounded 256-bit and floating-point arithmetic, and NextTarget
// always returns some compact target. None of them do I/O, retry, or panic
// across the package boundary (§4.H); a chain that is shorter than an
// algorithm's window is handled by falling back to params.PowLimitBits,
// never by erroring.
package retarget

import (
	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
	"github.com/mue-core/retarget/chainindex"
)

// AssertError identifies a precondition breach in the surrounding
// block-acceptance path (a nil ancestor in a context that disallows it)
// rather than a data-dependent retarget outcome. Per §7.3 this is a
// programming error signal, not a retryable runtime error; callers are
// expected to treat it as fatal to the block under consideration.
type AssertError string

// Error satisfies the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// clampInt64 bounds v to [lo, hi].
func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampTarget returns the smaller of target and powLimit, enforcing the
// invariant that every computed target stays at or below the network's
// proof-of-work ceiling (§3).
func clampTarget(target, powLimit bigint.Int256) bigint.Int256 {
	if bigint.Cmp(target, powLimit) > 0 {
		return powLimit
	}
	return target
}

// NextTarget returns the compact target the block at nextHeight must meet,
// given last, the block before it. It asks Select (see selector.go) which
// algorithm applies and runs it, so callers need only this one name to
// retarget a single block. A nil last yields params.PowLimitBits, and
// params.NoRetargeting yields last.Bits() unchanged.
func NextTarget(last chainindex.BlockRef, nextHeight int32, candidateTime int64, params chaincfg.Params) uint32 {
	if last == nil {
		// Genesis: the Open Question in spec §9 is resolved by
		// returning the ceiling directly rather than running any
		// algorithm.
		return params.PowLimitBits
	}

	if params.NoRetargeting {
		return last.Bits()
	}

	switch Select(params.NetworkID, nextHeight, params) {
	case AlgoBTC:
		return legacyTimespanRetarget(last, candidateTime, params)
	case AlgoKGW:
		return kimotoGravityWell(last, params)
	case AlgoDGW:
		return darkGravityWave(last, params, dgwWindow)
	case AlgoMUEDGW:
		return darkGravityWave(last, params, muedgwWindow)
	case AlgoMUE:
		return mueLocal(last, params, nowFunc())
	default:
		return params.PowLimitBits
	}
}
