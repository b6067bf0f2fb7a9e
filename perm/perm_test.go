package perm_test

import (
	"testing"

	"github.com/katalvlaran/fgucover/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParity_Identity verifies that every identity sequence has parity 0.
func TestParity_Identity(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, 0, perm.Identity(n).Parity(), "identity of size %d must be even", n)
	}
}

// TestParity_TranspositionFlips verifies that swapping any two elements of
// the identity flips parity to 1.
func TestParity_TranspositionFlips(t *testing.T) {
	const n = 6
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := perm.Identity(n)
			p[i], p[j] = p[j], p[i]
			assert.Equal(t, 1, p.Parity(), "single transposition (%d %d) must be odd", i, j)
		}
	}
}

// TestParity_ArbitrarySequence checks parity on distinct-int sequences that
// are not permutations of 0..n-1 (the index-transform use case).
func TestParity_ArbitrarySequence(t *testing.T) {
	assert.Equal(t, 0, perm.Parity([]int{2, 5, 9}), "already sorted sequence is even")
	assert.Equal(t, 1, perm.Parity([]int{5, 2, 9}), "one inversion is odd")
	assert.Equal(t, 1, perm.Parity([]int{9, 5, 2}), "three inversions is odd")
	assert.Equal(t, 0, perm.Parity(nil), "empty sequence is even")
}

// TestInverse_Involution verifies Inverse(Inverse(p)) == p and that p
// composed with its inverse yields the identity, on random draws.
func TestInverse_Involution(t *testing.T) {
	rng := perm.NewRand(42)
	for trial := 0; trial < 50; trial++ {
		p, err := perm.Random(7, rng)
		require.NoError(t, err)

		assert.True(t, p.Inverse().Inverse().Equal(p), "double inverse must restore p")
		assert.True(t, p.Compose(p.Inverse()).Equal(perm.Identity(7)), "p∘p⁻¹ must be identity")
		assert.True(t, p.Inverse().Compose(p).Equal(perm.Identity(7)), "p⁻¹∘p must be identity")
	}
}

// TestInverse_Explicit pins the inverse of a hand-picked permutation.
func TestInverse_Explicit(t *testing.T) {
	p := perm.Perm{2, 0, 3, 1}
	assert.True(t, p.Inverse().Equal(perm.Perm{1, 3, 0, 2}), "q[p[i]] must equal i")
}

// TestValid_AcceptsAndRejects exercises the bijectivity check.
func TestValid_AcceptsAndRejects(t *testing.T) {
	assert.NoError(t, perm.Perm{3, 1, 0, 2}.Valid())
	assert.NoError(t, perm.Perm{}.Valid(), "empty permutation is valid")

	assert.ErrorIs(t, perm.Perm{0, 0, 1}.Valid(), perm.ErrNotPermutation, "duplicate entry")
	assert.ErrorIs(t, perm.Perm{0, 3}.Valid(), perm.ErrNotPermutation, "out-of-range entry")
	assert.ErrorIs(t, perm.Perm{-1, 0}.Valid(), perm.ErrNotPermutation, "negative entry")
}

// TestKey_Canonical verifies Key collides exactly on equal permutations.
func TestKey_Canonical(t *testing.T) {
	assert.Equal(t, perm.Perm{1, 0, 2}.Key(), perm.Perm{1, 0, 2}.Key())
	assert.NotEqual(t, perm.Perm{1, 0, 2}.Key(), perm.Perm{1, 2, 0}.Key())
	// Multi-digit entries must not alias single-digit pairs.
	assert.NotEqual(t, perm.Perm{11, 0}.Key(), perm.Perm{1, 10}.Key())
}

// TestClone_Independent verifies Clone detaches storage.
func TestClone_Independent(t *testing.T) {
	p := perm.Perm{1, 0}
	q := p.Clone()
	q[0] = 0
	assert.Equal(t, 1, p[0], "mutating the clone must not touch the original")
}
