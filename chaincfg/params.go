// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg holds the immutable per-network constants the
// retargeting core consumes: the proof-of-work ceiling, target
// spacing/timespan, the algorithm switch-over heights, and genesis.
package chaincfg

import (
	"fmt"
	"math/big"

	"github.com/mue-core/retarget/bigint"
)

// NetworkID identifies one of the three supported networks by the string
// literal consensus code elsewhere in the stack already uses.
type NetworkID string

// The three network identifiers the Selector and ChainParams dispatch on.
const (
	Main    NetworkID = "main"
	Test    NetworkID = "test"
	Regtest NetworkID = "regtest"
)

// Params is an immutable record of the constants one network's consensus
// rules are built from. A Params value is constructed once at process
// start (via one of the package-level *NetParams values, or a
// ForNetwork lookup) and never mutated afterward.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// NetworkID is the network this Params describes.
	NetworkID NetworkID

	// PowLimit is the easiest allowed target: the highest 256-bit value
	// any block's decoded target may take. It also serves as the
	// fallback result whenever a retarget algorithm lacks enough
	// history to compute a real answer.
	PowLimit bigint.Int256

	// PowLimitBits is PowLimit pre-encoded in compact form, returned
	// directly wherever the reference implementation returns
	// UintToArith256(powLimit).GetCompact() rather than re-deriving it.
	PowLimitBits uint32

	// PowTargetSpacing is the desired number of seconds between blocks.
	PowTargetSpacing int64

	// PowTargetTimespan is the number of seconds the legacy retarget
	// window covers.
	PowTargetTimespan int64

	// AllowMinDifficultyBlocks enables the testnet-style rule allowing
	// a minimum-difficulty block once too much time has elapsed since
	// the last one (§4.B).
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables all difficulty adjustment, returning the
	// previous block's bits unconditionally. Used by regression test
	// networks that mine on demand.
	NoRetargeting bool

	// KGWStartHeight and KGWEndHeight bound the height range (inclusive
	// start, exclusive end) in which the Selector dispatches to Kimoto
	// Gravity Well.
	KGWStartHeight, KGWEndHeight int32

	// DGWStartHeight and DGWEndHeight bound the Dark Gravity Wave range.
	DGWStartHeight, DGWEndHeight int32

	// MUEStartHeight and MUEEndHeight bound the local MUE algorithm's
	// range. Only used on Test; Main/Regtest never select MUE (§4.F).
	MUEStartHeight, MUEEndHeight int32

	// MUEDGWStartHeight is the height at which the Selector begins
	// dispatching to the MUEDGW variant and never stops.
	MUEDGWStartHeight int32

	// GenesisTime and GenesisBits are the genesis block's timestamp and
	// compact difficulty target.
	GenesisTime int64
	GenesisBits uint32
}

// DifficultyAdjustmentInterval returns the number of blocks the legacy
// algorithm's retarget window spans, derived the same way
// Consensus::Params::DifficultyAdjustmentInterval() is in the original
// implementation: PowTargetTimespan / PowTargetSpacing.
func (p *Params) DifficultyAdjustmentInterval() int32 {
	return int32(p.PowTargetTimespan / p.PowTargetSpacing)
}

func mustPowLimit(hex string) bigint.Int256 {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("chaincfg: invalid pow limit hex: " + hex)
	}
	return bigint.FromBig(n)
}

// mainPowLimitHex is the highest allowed target on Main, matching
// consensus.powLimit from the original chainparams.cpp.
const mainPowLimitHex = "00000fffff000000000000000000000000000000000000000000000000000000"

// MainNetParams defines the genesis constants and algorithm switch-over
// heights for the main network, per spec §8's concrete scenarios.
var MainNetParams = Params{
	Name:                     "main",
	NetworkID:                Main,
	PowLimit:                 mustPowLimit(mainPowLimitHex),
	PowLimitBits:             bigint.GetCompact(mustPowLimit(mainPowLimitHex)),
	PowTargetSpacing:         40,
	PowTargetTimespan:        120,
	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,
	KGWStartHeight:           15200,
	KGWEndHeight:             34140,
	DGWStartHeight:           34140,
	DGWEndHeight:             45000,
	MUEDGWStartHeight:        45000,
	GenesisTime:              1498253423,
	GenesisBits:              0x1e0ffff0,
}

// TestNetParams defines the test-network constants: a much shorter schedule
// of algorithm switch-overs and minimum-difficulty blocks enabled.
var TestNetParams = Params{
	Name:                     "test",
	NetworkID:                Test,
	PowLimit:                 mustPowLimit(mainPowLimitHex),
	PowLimitBits:             bigint.GetCompact(mustPowLimit(mainPowLimitHex)),
	PowTargetSpacing:         40,
	PowTargetTimespan:        60,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,
	KGWStartHeight:           2,
	KGWEndHeight:             5,
	DGWStartHeight:           5,
	DGWEndHeight:             10,
	MUEStartHeight:           10,
	MUEEndHeight:             30,
	MUEDGWStartHeight:        30,
	GenesisTime:              1498253423,
	GenesisBits:              0x1e0ffff0,
}

// RegressionNetParams defines the regtest constants. Regtest mirrors Main's
// algorithm schedule (spec §4.F) but never retargets, since regtest blocks
// are mined on demand.
var RegressionNetParams = Params{
	Name:                     "regtest",
	NetworkID:                Regtest,
	PowLimit:                 bigint.FromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))),
	PowLimitBits:             0x207fffff,
	PowTargetSpacing:         40,
	PowTargetTimespan:        120,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,
	KGWStartHeight:           15200,
	KGWEndHeight:             34140,
	DGWStartHeight:           34140,
	DGWEndHeight:             45000,
	MUEDGWStartHeight:        45000,
	GenesisTime:              1498253423,
	GenesisBits:              0x207fffff,
}

// ForNetwork returns the immutable Params for the named network.
func ForNetwork(id NetworkID) (Params, error) {
	switch id {
	case Main:
		return MainNetParams, nil
	case Test:
		return TestNetParams, nil
	case Regtest:
		return RegressionNetParams, nil
	default:
		return Params{}, fmt.Errorf("chaincfg: unknown network %q", id)
	}
}
