// Package perm - deterministic random sampling of permutations.
//
// This file centralizes random generation for the whole module.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveRand to create independent streams for parallel
//     workers.
package perm

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer (Vigna 2014); small input changes
// produce large, well-distributed output changes, so derived streams stay
// decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic RNG stream from base and a
// stream identifier. If base==nil, the defaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once, so reusing the same stream id by
// mistake still yields distinct children.
//
// Call during setup (not in hot loops) to create per-worker RNGs.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Random draws a uniformly random permutation of {0,…,n−1} via an in-place
// Fisher–Yates shuffle of the identity. If rng==nil, the deterministic
// default stream is used (seed==0 policy). For n<0, returns ErrNegativeSize.
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) (Perm, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	p := Identity(n)
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p, nil
}

// RandomEven draws a uniformly random even permutation of {0,…,n−1}
// (permutation-matrix determinant +1) by rejection-sampling Random until
// the parity is 0. Exactly half of all permutations are even for n ≥ 2, so
// the expected number of draws is 2; for n ≤ 1 the only permutation is
// even and the first draw is returned without looping.
//
// Complexity: O(n²) expected time (parity check dominates), O(n) space.
func RandomEven(n int, rng *rand.Rand) (Perm, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	for {
		p, err := Random(n, r)
		if err != nil {
			return nil, err
		}
		if p.Parity() == 0 {
			return p, nil
		}
	}
}
