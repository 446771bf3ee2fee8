// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powcheck implements the proof-of-work verifier: checking a
// candidate hash against a claimed compact target, computing the "work"
// a set of bits represents, and converting chain-work differences into an
// equivalent span of time (spec §4.G).
package powcheck

import (
	"math"

	"github.com/decred/dcrd/lru"

	"github.com/mue-core/retarget/bigint"
	"github.com/mue-core/retarget/chaincfg"
	"github.com/mue-core/retarget/chainhash"
)

// invalidBitsCacheSize bounds the verifier's negative cache of nBits
// values already found malformed. Sized generously above any realistic
// run of distinct bad values a spammy peer could produce in one session.
const invalidBitsCacheSize uint32 = 4096

// Result is the outcome of CheckProofOfWork: a plain boolean plus a
// diagnostic reason, since the Verifier never raises an error across its
// boundary (§4.H).
type Result struct {
	OK     bool
	Reason string
}

// Verifier checks candidate block hashes against their claimed compact
// targets. It is safe for concurrent use, including concurrent use across
// different networks' Params on the same Verifier.
type Verifier struct {
	invalidBits *lru.Cache
}

// invalidBitsKey identifies a bits value as rejected under one specific
// network ceiling. Keying on bits alone would let a value correctly
// rejected under one network's PowLimit (e.g. Main) get served as rejected
// for another network with a looser ceiling (e.g. Regtest) where the same
// bits validly passes.
type invalidBitsKey struct {
	bits        uint32
	ceilingBits uint32
}

// NewVerifier returns a Verifier with its invalid-bits cache initialized.
func NewVerifier() *Verifier {
	return &Verifier{invalidBits: lru.NewCache(invalidBitsCacheSize)}
}

// CheckProofOfWork decodes bits and reports whether hash satisfies the
// resulting target under params. It fails closed: a negative, zero,
// overflowing, or above-ceiling target is always a failure, regardless of
// hash (spec §4.G, §7.1).
func (v *Verifier) CheckProofOfWork(hash chainhash.Hash, bits uint32, params chaincfg.Params) Result {
	key := invalidBitsKey{bits: bits, ceilingBits: params.PowLimitBits}
	if v.invalidBits != nil && v.invalidBits.Contains(key) {
		return Result{OK: false, Reason: "nBits previously found below minimum work"}
	}

	target, negative, overflow := bigint.SetCompact(bits)
	if negative {
		v.remember(key)
		return Result{OK: false, Reason: "target is negative"}
	}
	if overflow {
		v.remember(key)
		return Result{OK: false, Reason: "target overflows 256 bits"}
	}
	if target.IsZero() {
		v.remember(key)
		return Result{OK: false, Reason: "target is zero"}
	}
	if bigint.Cmp(target, params.PowLimit) > 0 {
		v.remember(key)
		return Result{OK: false, Reason: "target exceeds proof-of-work limit"}
	}

	if bigint.Cmp(chainhash.ToBig(hash), target) > 0 {
		return Result{OK: false, Reason: "hash doesn't match nBits"}
	}

	return Result{OK: true}
}

func (v *Verifier) remember(key invalidBitsKey) {
	if v.invalidBits != nil {
		v.invalidBits.Add(key)
	}
}

// BlockWork returns the work value a compact target represents:
// floor(2^256 / (target+1)), or zero if bits decode to an invalid or zero
// target (spec §3, §4.G).
func BlockWork(bits uint32) bigint.Int256 {
	target, negative, overflow := bigint.SetCompact(bits)
	if negative || overflow || target.IsZero() {
		return bigint.Zero()
	}
	denom := bigint.Add(target, bigint.FromUint64(1))
	return bigint.Add(bigint.Div(bigint.Not(target), denom), bigint.FromUint64(1))
}

// EquivalentTime converts the chain-work difference between to and from
// into the number of seconds of work at tip's current difficulty it
// represents, saturating to math.MaxInt64 if the difference doesn't fit in
// 63 bits (spec §4.G).
func EquivalentTime(to, from bigint.Int256, tipBits uint32, params chaincfg.Params) int64 {
	sign := int64(1)
	var diff bigint.Int256
	if bigint.Cmp(to, from) > 0 {
		diff = bigint.Sub(to, from)
	} else {
		diff = bigint.Sub(from, to)
		sign = -1
	}

	tipWork := BlockWork(tipBits)
	if tipWork.IsZero() {
		return 0
	}

	r := bigint.MulUint64(diff, uint64(params.PowTargetSpacing))
	r = bigint.Div(r, tipWork)

	if r.BitLen() > 63 {
		return sign * math.MaxInt64
	}
	return sign * int64(r.LowUint64())
}
