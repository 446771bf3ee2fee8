package chainindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chainindex"
)

// testRef is a minimal BlockRef used to build synthetic header chains.
type testRef struct {
	height int32
	time   int64
	bits   uint32
	parent *testRef
}

func (r *testRef) Height() int32             { return r.height }
func (r *testRef) Time() int64               { return r.time }
func (r *testRef) Bits() uint32              { return r.bits }
func (r *testRef) ChainWork() bigint.Int256   { return bigint.Zero() }
func (r *testRef) Parent() chainindex.BlockRef {
	if r.parent == nil {
		return nil
	}
	return r.parent
}

func buildChain(n int, spacing int64, bits uint32) *testRef {
	var prev *testRef
	var tip *testRef
	for h := int32(0); h < int32(n); h++ {
		node := &testRef{height: h, time: int64(h) * spacing, bits: bits, parent: prev}
		prev = node
		tip = node
	}
	return tip
}

func TestRelativeAncestor(t *testing.T) {
	tip := buildChain(10, 40, 0x1d00ffff)

	anc := chainindex.RelativeAncestor(tip, 3)
	require.NotNil(t, anc)
	require.Equal(t, int32(6), anc.Height())

	// Walking further back than the chain is long absorbs the shortfall
	// instead of erroring (§4.H).
	anc = chainindex.RelativeAncestor(tip, 100)
	require.Nil(t, anc)
}

func TestWalkStopsAtMax(t *testing.T) {
	tip := buildChain(20, 40, 0x1d00ffff)

	var visited []int32
	chainindex.Walk(tip, 5, func(i int, node chainindex.BlockRef) bool {
		visited = append(visited, node.Height())
		return true
	})
	require.Len(t, visited, 5)
	require.Equal(t, int32(19), visited[0])
}

func TestWalkStopsOnFalse(t *testing.T) {
	tip := buildChain(20, 40, 0x1d00ffff)

	var count int
	chainindex.Walk(tip, 0, func(i int, node chainindex.BlockRef) bool {
		count++
		return node.Height() > 15
	})
	require.Equal(t, 5, count)
}
