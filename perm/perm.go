// Package perm - parity, inversion and composition.
//
// Parity is the workhorse of the whole module: the sign a Majorana operator
// accrues under an FGU circuit is (−1)^parity of its permuted index
// sequence, so Parity must accept arbitrary distinct-int sequences, not
// just full permutations.
package perm

// Parity returns the parity (0 even, 1 odd) of the permutation required to
// sort seq, computed as the number of inversions — pairs i<j with
// seq[i] > seq[j] — modulo 2.
//
// Contracts:
//   - Elements of seq must be pairwise distinct; ties would make the
//     sorting permutation ambiguous. The function itself never inspects
//     equality, so duplicated elements silently count as zero inversions
//     for the tied pair — callers uphold distinctness.
//   - seq need not be a permutation of 0..n−1: any distinct ints work.
//
// Properties: Parity(identity)==0; swapping any two elements flips the
// result.
//
// Complexity: O(n²) time, O(1) space — n here is a handful of Majorana
// indices or a 2n-mode permutation, so the quadratic count beats the
// constant factors of a merge-count.
func Parity(seq []int) int {
	var inv int
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inv++
			}
		}
	}

	return inv & 1
}

// Parity returns the parity of p itself (0 even, 1 odd). Even parity
// corresponds to a permutation-matrix determinant of +1.
func (p Perm) Parity() int {
	return Parity(p)
}

// Inverse returns q with q[p[i]] = i for all i.
//
// Contracts:
//   - p must be a valid permutation (constructor-produced, or checked via
//     Valid); an out-of-range entry would index out of bounds.
//
// Properties: p.Inverse().Inverse().Equal(p); p.Compose(p.Inverse())
// equals Identity(len(p)).
//
// Complexity: O(n) time, O(n) space.
func (p Perm) Inverse() Perm {
	q := make(Perm, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// Compose returns the permutation r = p∘q defined by r[i] = p[q[i]],
// i.e. q applied first. Both arguments must have the same length.
//
// Complexity: O(n) time, O(n) space.
func (p Perm) Compose(q Perm) Perm {
	r := make(Perm, len(p))
	for i := range q {
		r[i] = p[q[i]]
	}

	return r
}
