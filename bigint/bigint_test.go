package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetCompactGetCompactRoundTrip(t *testing.T) {
	tests := []uint32{
		0x1d00ffff,
		0x1e0ffff0,
		0x04123456,
		0x01003456,
		0x00000000,
	}

	for _, compact := range tests {
		value, negative, overflow := SetCompact(compact)
		require.False(t, negative, "compact %08x", compact)
		require.False(t, overflow, "compact %08x", compact)

		got := GetCompact(value)
		if value.IsZero() {
			require.Equal(t, uint32(0), got)
			continue
		}
		require.Equal(t, compact, got, "round-trip of %08x", compact)
	}
}

func TestSetCompactZeroMantissaIsZeroValue(t *testing.T) {
	value, negative, overflow := SetCompact(0x01003456)
	require.False(t, negative)
	require.False(t, overflow)
	require.True(t, value.IsZero())
}

func TestSetCompactNegativeFlag(t *testing.T) {
	_, negative, _ := SetCompact(0x01800001)
	require.True(t, negative)
}

func TestSetCompactOverflowFlag(t *testing.T) {
	_, _, overflow := SetCompact(0x22010000)
	require.True(t, overflow)
}

func TestArithmeticWrapping(t *testing.T) {
	max := Int256{v: maxUint256}
	one := FromUint64(1)

	// Adding 1 to the maximum value wraps to zero.
	wrapped := Add(max, one)
	require.True(t, wrapped.IsZero())

	// Subtracting from zero wraps to the maximum value.
	wrappedSub := Sub(Zero(), one)
	require.Equal(t, 0, Cmp(wrappedSub, max))
}

func TestNot(t *testing.T) {
	require.True(t, Not(Int256{v: maxUint256}).IsZero())
	require.Equal(t, 0, Cmp(Not(Zero()), Int256{v: maxUint256}))
}

func TestLowUint64(t *testing.T) {
	v := FromUint64(0xdeadbeef)
	require.Equal(t, uint64(0xdeadbeef), v.LowUint64())
}

func TestDivUint64(t *testing.T) {
	v := FromUint64(100)
	require.Equal(t, uint64(25), DivUint64(v, 4).LowUint64())
}

func TestFromBigTruncates(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 300)
	v := FromBig(huge)
	require.True(t, v.IsZero())
}
