// Package cover constructs randomized covering sets of FGU measurement
// settings for a registry of Majorana operators.
//
// A measurement setting is a permutation Q of the 2n Majorana modes,
// standing in for the fermionic Gaussian circuit U(Q). The circuit renders
// a family of canonical diagonal operators — index sets of the form
// {2p, 2p+1} unions — measurable; Tally walks that family, pulls each
// candidate back through Q⁻¹, and credits every registry target it lands
// on, recording the (measured, diagonal, sign) triple.
//
// Build is the engine's entry point: a stopping-rule-driven random search
// that keeps drawing fresh settings, skipping duplicates, until every
// target has been credited at least MinCoverage times. The result is not a
// provably minimal cover — it is the cheap randomized one that, in
// practice, lets each circuit be repeated S/r times instead of S to reach
// S-sample accuracy per operator.
//
// Determinism and liveness:
//   - All randomness flows from Options.Seed (seed==0 ⇒ stable default),
//     so runs are reproducible.
//   - Termination is probabilistic. A registry containing an operator that
//     no sampled permutation can diagonalize loops forever under the
//     default Options; set MaxDraws to trade that for ErrBudgetExhausted.
//
// The package is single-threaded by design: the registry is the only
// mutable structure and only the calling goroutine touches it. A parallel
// sampler would need atomic registry counts, a concurrent dedup set and a
// shared stop flag; perm.DeriveRand supplies the per-worker streams.
package cover
