// Package perm provides the permutation primitives underlying FGU
// measurement settings.
//
// A Perm is a bijection of {0,…,N−1} onto itself, stored as a slice and
// read as the map i → p[i]. Viewed as a permutation matrix it represents
// an orthogonal transformation of Majorana modes; its parity decides the
// matrix determinant (+1 even, −1 odd), which is why the package exposes
// both an unrestricted sampler (Random) and a determinant-+1 sampler
// (RandomEven).
//
// Capabilities:
//   - Parity via inversion counting — works for any distinct-int sequence,
//     not only full permutations (the Majorana index transform relies on
//     this to sign partial image sequences)
//   - Inverse and Compose with the usual group laws
//   - Uniform Fisher–Yates sampling from an explicit *rand.Rand; no hidden
//     global random state anywhere in the package
//
// Use this package directly when you need raw permutation algebra; the
// cover package consumes it to draw and invert measurement settings.
package perm
