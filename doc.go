// Package fgucover builds randomized covering sets of fermionic Gaussian
// unitary (FGU) measurement settings for Majorana observables.
//
// 🚀 What is fgucover?
//
//	A small, deterministic-by-seed library that answers one question:
//	which measurement circuits do I need so that every Majorana operator
//	of a k-body reduced density matrix (k-RDM) is diagonalized — and hence
//	measurable — at least r times?
//
// It brings together:
//   - Permutation primitives: parity, inversion, composition, uniform and
//     even-parity (determinant +1) sampling from an explicit random source
//   - Majorana bookkeeping: canonical operator keys, a coverage registry,
//     and the permute-and-sort index transform with its accrued sign
//   - The cover engine: a randomized greedy loop that accumulates fresh
//     measurement settings until the whole registry is covered
//
// ✨ Why choose fgucover?
//
//   - Deterministic — every random draw flows from a caller-supplied seed
//   - Rock-solid contracts — sentinel errors, no panics on user input
//   - Pure Go — no cgo, a single test-only dependency
//
// Everything is organized under three subpackages:
//
//	perm/     — permutation type, parity, inverse, seeded sampling
//	majorana/ — operator keys, k-RDM registries, the index transform
//	cover/    — coverage tally and the randomized cover constructor
//
// Quick sketch: for n orbitals there are 2n Majorana modes. A permutation Q
// of the modes stands in for an FGU circuit U(Q); the operator it measures
// for a candidate diagonal D is Q⁻¹(D) up to a sign. The cover constructor
// keeps drawing Q until every registry operator has been hit r times.
//
// Dive into examples/ for a full 2-RDM walkthrough.
//
//	go get github.com/katalvlaran/fgucover
package fgucover
