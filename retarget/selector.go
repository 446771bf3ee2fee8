// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import "github.com/mue-core/retarget/chaincfg"

// Algorithm identifies one of the five retarget algorithms a block height
// dispatches to.
type Algorithm int

const (
	// AlgoBTC is the legacy Bitcoin-style timespan retarget.
	AlgoBTC Algorithm = iota
	// AlgoKGW is Kimoto Gravity Well.
	AlgoKGW
	// AlgoDGW is Dark Gravity Wave.
	AlgoDGW
	// AlgoMUEDGW is the MUEDGW variant of Dark Gravity Wave.
	AlgoMUEDGW
	// AlgoMUE is the local MUE algorithm.
	AlgoMUE
)

// String returns the algorithm's short name.
func (a Algorithm) String() string {
	switch a {
	case AlgoBTC:
		return "BTC"
	case AlgoKGW:
		return "KGW"
	case AlgoDGW:
		return "DGW"
	case AlgoMUEDGW:
		return "MUEDGW"
	case AlgoMUE:
		return "MUE"
	default:
		return "unknown"
	}
}

// Select is the height- and network-keyed dispatcher choosing which
// algorithm applies to the block at nextHeight (spec §4.F). Every new
// block consults Select exactly once.
func Select(network chaincfg.NetworkID, nextHeight int32, params chaincfg.Params) Algorithm {
	switch network {
	case chaincfg.Main, chaincfg.Regtest:
		switch {
		case nextHeight >= params.KGWStartHeight && nextHeight < params.KGWEndHeight:
			return AlgoKGW
		case nextHeight >= params.DGWStartHeight && nextHeight < params.DGWEndHeight:
			return AlgoDGW
		case nextHeight >= params.MUEDGWStartHeight:
			return AlgoMUEDGW
		case nextHeight < params.KGWStartHeight:
			return AlgoBTC
		default:
			// Not otherwise reached by the ranges above; the
			// reference implementation's initial DIFF_MUE default
			// surfaces here.
			return AlgoMUE
		}
	case chaincfg.Test:
		switch {
		case nextHeight >= params.KGWStartHeight && nextHeight < params.KGWEndHeight:
			return AlgoKGW
		case nextHeight >= params.DGWStartHeight && nextHeight < params.DGWEndHeight:
			return AlgoDGW
		case nextHeight >= params.MUEStartHeight && nextHeight < params.MUEEndHeight:
			return AlgoMUE
		case nextHeight >= params.MUEDGWStartHeight:
			return AlgoMUEDGW
		default:
			return AlgoBTC
		}
	default:
		return AlgoBTC
	}
}
