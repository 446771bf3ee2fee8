package retarget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mue-core/retarget/chaincfg"
)

func TestSelectMain(t *testing.T) {
	params := chaincfg.MainNetParams

	cases := []struct {
		height int32
		want   Algorithm
	}{
		{0, AlgoBTC},
		{params.KGWStartHeight - 1, AlgoBTC},
		{params.KGWStartHeight, AlgoKGW},
		{params.KGWEndHeight - 1, AlgoKGW},
		{params.KGWEndHeight, AlgoDGW},
		{params.DGWEndHeight - 1, AlgoDGW},
		{params.DGWEndHeight, AlgoMUEDGW},
		{params.MUEDGWStartHeight + 1000000, AlgoMUEDGW},
	}
	for _, c := range cases {
		got := Select(chaincfg.Main, c.height, params)
		require.Equalf(t, c.want, got, "height %d", c.height)
	}
}

func TestSelectTest(t *testing.T) {
	params := chaincfg.TestNetParams

	cases := []struct {
		height int32
		want   Algorithm
	}{
		{0, AlgoBTC},
		{params.KGWStartHeight, AlgoKGW},
		{params.DGWStartHeight, AlgoDGW},
		{params.MUEStartHeight, AlgoMUE},
		{params.MUEEndHeight - 1, AlgoMUE},
		{params.MUEDGWStartHeight, AlgoMUEDGW},
	}
	for _, c := range cases {
		got := Select(chaincfg.Test, c.height, params)
		require.Equalf(t, c.want, got, "height %d", c.height)
	}
}

func TestSelectRegtestMirrorsMainSchedule(t *testing.T) {
	params := chaincfg.RegressionNetParams

	require.Equal(t, AlgoBTC, Select(chaincfg.Regtest, 0, params))
	require.Equal(t, AlgoKGW, Select(chaincfg.Regtest, params.KGWStartHeight, params))
	require.Equal(t, AlgoDGW, Select(chaincfg.Regtest, params.DGWStartHeight, params))
	require.Equal(t, AlgoMUEDGW, Select(chaincfg.Regtest, params.MUEDGWStartHeight, params))
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "BTC", AlgoBTC.String())
	require.Equal(t, "KGW", AlgoKGW.String())
	require.Equal(t, "DGW", AlgoDGW.String())
	require.Equal(t, "MUEDGW", AlgoMUEDGW.String())
	require.Equal(t, "MUE", AlgoMUE.String())
	require.Equal(t, "unknown", Algorithm(99).String())
}
