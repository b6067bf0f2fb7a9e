// Package cover - the randomized cover constructor.
package cover

import (
	"github.com/katalvlaran/fgucover/majorana"
	"github.com/katalvlaran/fgucover/perm"
)

// Build constructs a randomized cover of reg: it draws fresh measurement
// settings over the registry's mode space until every target operator has
// been credited at least opts.MinCoverage times, and returns the settings
// that contributed.
//
// Loop contract, per draw:
//  1. Stop as soon as the registry is covered (an empty registry is
//     vacuously covered, so the result is immediately empty).
//  2. Draw a uniformly random permutation of the 2n modes — even-parity
//     only when opts.EvenOnly is set.
//  3. A draw already retained in the cover is discarded without running a
//     tally; the rejection almost surely terminates, since the collision
//     probability shrinks combinatorially with (2n)!.
//  4. Tally the draw against the registry; retain it iff it credited at
//     least one target. Zero-yield draws are forgotten entirely and may
//     recur later — harmless waste, not a correctness issue.
//
// Termination is probabilistic, not structural: a registry holding an
// operator that no permutation of the sampled family diagonalizes loops
// forever under MaxDraws==0. With a budget set, Build returns the partial
// cover together with ErrBudgetExhausted once that many draws (duplicates
// included) have been consumed.
//
// Errors: option sentinels from types.go, ErrNilRegistry, ErrOddModes for
// a registry over an odd mode space.
//
// Complexity per retained draw: O(Σ_j C(n,j)·j²); the number of draws is
// random with expectation governed by r and the registry composition.
func Build(reg *majorana.Registry, opts Options) (*Cover, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	modes := reg.Modes()
	if modes%2 != 0 {
		return nil, ErrOddModes
	}

	kMax := opts.MaxBodyOrder
	if kMax == 0 {
		kMax = reg.MaxBodyOrder()
	}

	rng := perm.NewRand(opts.Seed)
	result := newCover()
	draws := 0

	for !reg.Covered(opts.MinCoverage) {
		if opts.MaxDraws > 0 && draws >= opts.MaxDraws {
			return result, ErrBudgetExhausted
		}

		var (
			q   perm.Perm
			err error
		)
		if opts.EvenOnly {
			q, err = perm.RandomEven(modes, rng)
		} else {
			q, err = perm.Random(modes, rng)
		}
		if err != nil {
			return nil, err
		}
		draws++

		if result.Contains(q) {
			continue
		}

		records, err := Tally(reg, q, kMax)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			result.add(q, records)
		}
	}

	return result, nil
}
