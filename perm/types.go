// Package perm - types and sentinel errors.
//
// Design principles (shared by the whole module):
//   - No logging, no panics on user input - only sentinel errors.
//   - Deterministic: randomness always flows through an explicit *rand.Rand.
package perm

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for permutation construction and validation.
var (
	// ErrNegativeSize is returned when a sampler is asked for a
	// permutation of negative length.
	ErrNegativeSize = errors.New("perm: size must be non-negative")

	// ErrNotPermutation is returned when a slice is not a bijection of
	// {0,…,N−1}: an entry is out of range or appears more than once.
	ErrNotPermutation = errors.New("perm: slice is not a permutation of 0..n-1")
)

// Perm is a permutation of {0,…,N−1}, interpreted as the map i → p[i].
//
// Invariant: every value in [0, len(p)) occurs exactly once. Constructors
// in this package always return valid permutations; Valid is for data
// arriving from the caller. A Perm is treated as immutable once built —
// samplers hand out fresh slices, and Inverse/Compose never modify their
// receivers.
type Perm []int

// Identity returns the identity permutation of size n (i → i).
// For n ≤ 0 it returns an empty permutation.
//
// Complexity: O(n).
func Identity(n int) Perm {
	if n < 0 {
		n = 0
	}
	p := make(Perm, n)
	for i := 0; i < n; i++ {
		p[i] = i
	}

	return p
}

// Valid reports whether p is a bijection of {0,…,len(p)−1}.
// Returns nil on success, ErrNotPermutation otherwise.
//
// Complexity: O(n) time, O(n) space.
func (p Perm) Valid() error {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string form of p, suitable as a map key for
// deduplicating drawn measurement settings. Two permutations collide iff
// they are equal element-wise.
//
// Complexity: O(n) time, O(n) space.
func (p Perm) Key() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	q := make(Perm, len(p))
	copy(q, p)

	return q
}
