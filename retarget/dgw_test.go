package retarget

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
)

func TestDGWGenesisReturnsPowLimit(t *testing.T) {
	genesis := &testRef{height: 0, time: chaincfg.MainNetParams.GenesisTime, bits: chaincfg.MainNetParams.GenesisBits}
	got := darkGravityWave(genesis, chaincfg.MainNetParams, dgwWindow)
	require.Equal(t, chaincfg.MainNetParams.PowLimitBits, got)
}

// TestDGWStableChainHoldsTarget is spec §8 scenario 3: 24 ancestors spaced
// exactly 40s apart at a constant target should produce a next target
// approximately equal to that same target.
func TestDGWStableChainHoldsTarget(t *testing.T) {
	params := chaincfg.MainNetParams
	chain := buildChain(25, 40, 0x1d00ffff) // tip height 24

	got := darkGravityWave(chain, params, dgwWindow)

	newTarget, _, _ := bigint.SetCompact(got)
	oldTarget, _, _ := bigint.SetCompact(0x1d00ffff)
	ratio := new(big.Float).Quo(new(big.Float).SetInt(newTarget.Big()), new(big.Float).SetInt(oldTarget.Big()))
	f, _ := ratio.Float64()
	require.InDelta(t, 1.0, f, 0.1)
}

// TestDGWIgnoresBlocksOutsideWindow is the §8 invariant: replacing any
// block outside the window must not change the next target.
func TestDGWIgnoresBlocksOutsideWindow(t *testing.T) {
	params := chaincfg.MainNetParams

	chainA := buildChain(30, 40, 0x1d00ffff)
	gotA := darkGravityWave(chainA, params, dgwWindow)

	// Mutate an ancestor well outside the 24-block window (height 0,
	// six blocks further back than the window reaches from height 29).
	chainB := buildChain(30, 40, 0x1d00ffff)
	ancestor := chainB
	for ancestor.height != 0 {
		ancestor = ancestor.parent
	}
	ancestor.bits = 0x1c00ffff
	gotB := darkGravityWave(chainB, params, dgwWindow)

	require.Equal(t, gotA, gotB)
}

func TestMUEDGWSmallerMinWindow(t *testing.T) {
	params := chaincfg.MainNetParams
	chain := buildChain(24, 40, 0x1d00ffff) // tip height 23, meets MUEDGW's min=23

	got := darkGravityWave(chain, params, muedgwWindow)
	target, _, _ := bigint.SetCompact(got)
	require.True(t, bigint.Cmp(target, params.PowLimit) <= 0)
}
