// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bigint implements a fixed-width 256-bit unsigned integer and its
// compact ("nBits") encoding, the arithmetic substrate every difficulty
// retargeting algorithm is built on.
package bigint

import "math/big"

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)

	// maxUint256 is the largest value representable in 256 bits, 2^256-1.
	// Every arithmetic op wraps its result into this range, the same way
	// arith_uint256 wraps on a fixed-width base_uint<256>.
	maxUint256 = new(big.Int).Sub(oneLsh256, bigOne)
)

// Int256 is a fixed-width, always-non-negative 256-bit integer. The zero
// value is a valid zero.
type Int256 struct {
	v *big.Int
}

// Zero returns the 256-bit zero value.
func Zero() Int256 {
	return Int256{v: new(big.Int)}
}

// FromUint64 returns x widened to 256 bits.
func FromUint64(x uint64) Int256 {
	return Int256{v: new(big.Int).SetUint64(x)}
}

// FromBig returns a copy of n truncated (wrapped) into [0, 2^256).
func FromBig(n *big.Int) Int256 {
	return Int256{v: wrap(new(big.Int).Set(n))}
}

// Big returns a copy of the value as a *big.Int, safe to mutate.
func (a Int256) Big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func wrap(n *big.Int) *big.Int {
	if n.Sign() < 0 || n.Cmp(oneLsh256) >= 0 {
		n.And(n, maxUint256)
	}
	return n
}

func (a Int256) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a+b, wrapped modulo 2^256.
func Add(a, b Int256) Int256 {
	return Int256{v: wrap(new(big.Int).Add(a.big(), b.big()))}
}

// Sub returns a-b, wrapped modulo 2^256 (i.e. it never goes negative).
func Sub(a, b Int256) Int256 {
	return Int256{v: wrap(new(big.Int).Sub(a.big(), b.big()))}
}

// MulUint64 returns a*x, wrapped modulo 2^256.
func MulUint64(a Int256, x uint64) Int256 {
	return Int256{v: wrap(new(big.Int).Mul(a.big(), new(big.Int).SetUint64(x)))}
}

// DivUint64 returns floor(a/x). Panics if x is zero, as does math/big.
func DivUint64(a Int256, x uint64) Int256 {
	return Int256{v: new(big.Int).Div(a.big(), new(big.Int).SetUint64(x))}
}

// Mul returns a*b, wrapped modulo 2^256.
func Mul(a, b Int256) Int256 {
	return Int256{v: wrap(new(big.Int).Mul(a.big(), b.big()))}
}

// Div returns floor(a/b), Euclidean division over non-negative operands.
// Panics if b is zero.
func Div(a, b Int256) Int256 {
	return Int256{v: new(big.Int).Div(a.big(), b.big())}
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b Int256) int {
	return a.big().Cmp(b.big())
}

// IsZero reports whether a is zero.
func (a Int256) IsZero() bool {
	return a.big().Sign() == 0
}

// BitLen returns the minimum number of bits required to represent a,
// matching arith_uint256::bits().
func (a Int256) BitLen() int {
	return a.big().BitLen()
}

// LowUint64 returns the low 64 bits of a.
func (a Int256) LowUint64() uint64 {
	return a.big().Uint64()
}

// Not returns the bitwise complement of a within 256 bits: (2^256-1) - a.
func Not(a Int256) Int256 {
	return Int256{v: new(big.Int).Sub(maxUint256, a.big())}
}

// SetCompact decodes a 32-bit compact ("nBits") encoding into a 256-bit
// value, reporting whether the encoded mantissa carries the sign bit and
// whether the shift overflows 256 bits. Mirrors arith_uint256::SetCompact,
// per spec §4.A.
func SetCompact(compact uint32) (value Int256, negative bool, overflow bool) {
	size := compact >> 24
	word := compact & 0x007fffff

	var bn *big.Int
	if size <= 3 {
		bn = new(big.Int).SetUint64(uint64(word >> (8 * (3 - size))))
	} else {
		bn = new(big.Int).Lsh(new(big.Int).SetUint64(uint64(word)), uint(8*(size-3)))
	}

	negative = word != 0 && compact&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))

	return Int256{v: wrap(bn)}, negative, overflow
}

// GetCompact encodes a into the 32-bit compact representation. Mirrors
// arith_uint256::GetCompact (always non-negative; this package has no
// signed representation).
func GetCompact(a Int256) uint32 {
	n := a.big()
	size := uint((n.BitLen() + 7) / 8)

	var compact uint32
	if size <= 3 {
		compact = uint32(n.Uint64() << (8 * (3 - size)))
	} else {
		shifted := new(big.Int).Rsh(n, 8*(size-3))
		compact = uint32(shifted.Uint64())
	}

	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}

	compact |= uint32(size) << 24
	return compact
}
