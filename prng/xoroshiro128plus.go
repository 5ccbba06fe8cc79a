// Package prng provides the xoroshiro128+ generator used to drive random
// parity-check and error-vector sampling, with a jump function that lets
// each decoding worker own an independent substream from a single seed.
package prng

import "math/bits"

// Xoroshiro128Plus is David Blackman and Sebastiano Vigna's xoroshiro128+
// generator (http://prng.di.unimi.it/xoroshiro128plus.c, public domain).
// It is not cryptographically secure; it is a fast, well-distributed
// source for the sampling the decoder's support/error generation needs,
// matching the original's choice of the same generator for the same job.
type Xoroshiro128Plus struct {
	s0, s1 uint64
}

// jump is the original xoroshiro128plus.c JUMP table: applying it advances
// the generator by 2^64 calls to Uint64, equivalent to 2^64 non-overlapping
// draws, which is how independent per-worker substreams are carved out of
// one seed.
var jump = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}

// NewXoroshiro128Plus seeds the generator directly from two 64-bit words.
// Neither may be zero with the other, since (0,0) is the generator's fixed
// point; callers seeding from an external entropy source should mix in at
// least one non-zero bit, e.g. via Seed's splitmix64 expansion of a single
// seed.
func NewXoroshiro128Plus(s0, s1 uint64) *Xoroshiro128Plus {
	if s0 == 0 && s1 == 0 {
		s1 = 1
	}
	return &Xoroshiro128Plus{s0: s0, s1: s1}
}

// Seed expands a single 64-bit seed into the two words NewXoroshiro128Plus
// needs, via splitmix64 — the generator author's own recommended way to
// seed xoroshiro128+ from one word, avoiding the bad-avalanche states a
// direct (seed, seed+1) split can land in.
func Seed(seed uint64) (s0, s1 uint64) {
	next := func() uint64 {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
	return next(), next()
}

// Uint64 returns the next 64-bit output and advances the state.
func (x *Xoroshiro128Plus) Uint64() uint64 {
	s0, s1 := x.s0, x.s1
	result := s0 + s1

	s1 ^= s0
	x.s0 = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	x.s1 = bits.RotateLeft64(s1, 37)

	return result
}

// Bounded returns a uniform integer in [0, n) using Lemire's nearly
// divisionless method: draw a 64-bit word, take its n-scaled high bits via
// a 128-bit multiply, and reject/redraw only when the low word falls in the
// small sliver that would bias the result. n must be positive; n is not
// checked (there is no integer in [0,0), and Bounded(0) returns 0),
// matching the original's unchecked random_lim.
func (x *Xoroshiro128Plus) Bounded(n int32) int32 {
	bound := uint64(n)
	lo, hi := mul64(x.Uint64(), bound)
	if lo < bound {
		threshold := -bound % bound
		for lo < threshold {
			lo, hi = mul64(x.Uint64(), bound)
		}
	}
	return int32(hi)
}

func mul64(x, y uint64) (lo, hi uint64) {
	const mask32 = (1 << 32) - 1
	xLo, xHi := x&mask32, x>>32
	yLo, yHi := y&mask32, y>>32

	t := xLo * yLo
	w0 := t & mask32
	k := t >> 32

	t = xHi*yLo + k
	w1 := t & mask32
	w2 := t >> 32

	t = xLo*yHi + w1
	k = t >> 32

	hi = xHi*yHi + w2 + k
	lo = (t << 32) + w0
	return lo, hi
}

// Jump advances the generator state as if Uint64 had been called 2^64
// times, producing a non-overlapping substream suitable for handing to
// another worker goroutine.
func (x *Xoroshiro128Plus) Jump() {
	var s0, s1 uint64
	for _, j := range jump {
		for b := uint(0); b < 64; b++ {
			if j&(1<<b) != 0 {
				s0 ^= x.s0
				s1 ^= x.s1
			}
			x.Uint64()
		}
	}
	x.s0, x.s1 = s0, s1
}
