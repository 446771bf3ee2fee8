package retarget

import (
	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chainindex"
)

// testRef is a minimal chainindex.BlockRef used across this package's
// tests to build synthetic header chains.
type testRef struct {
	height int32
	time   int64
	bits   uint32
	parent *testRef
}

func (r *testRef) Height() int32            { return r.height }
func (r *testRef) Time() int64              { return r.time }
func (r *testRef) Bits() uint32             { return r.bits }
func (r *testRef) ChainWork() bigint.Int256 { return bigint.Zero() }

func (r *testRef) Parent() chainindex.BlockRef {
	if r.parent == nil {
		return nil
	}
	return r.parent
}

// buildChain returns the tip of a synthetic n-block chain, each block
// spaced spacing seconds apart and carrying bits, starting at genesis
// (height 0, time 0).
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
