// Package majorana - the permuted index transform.
package majorana

import "github.com/katalvlaran/fgucover/perm"

// PermuteSorted maps every index i of indices through q (i → q[i]), sorts
// the image, and returns it as a canonical Key together with the ±1 sign
// accrued by the re-sort: sign = (−1)^parity of the image sequence in the
// order it was produced. The sign is the phase relating the measured
// operator to its diagonal form under the circuit's unitary action — NOT
// the sign of q itself.
//
// To find which target operator a measurement permutation Q renders
// diagonal, call PermuteSorted with Q.Inverse(): the adjoint relationship
// U(Q)·op·U(Q)† = sign·diag reads backwards from the candidate diagonal.
//
// Contracts:
//   - indices must be pairwise distinct (ErrDuplicateIndex) and within
//     [0, len(q)) (ErrIndexRange).
//   - q must be a valid permutation; injectivity of q plus distinct inputs
//     guarantee a distinct image, so the sorting parity is well defined.
//
// Properties: with q = Identity, the result is the sorted input with
// sign +1.
//
// Complexity: O(m²) for m = len(indices) (parity count dominates).
func PermuteSorted(indices []int, q perm.Perm) (Key, int, error) {
	image := make([]int, len(indices))
	for i, v := range indices {
		if v < 0 || v >= len(q) {
			return nil, 0, ErrIndexRange
		}
		image[i] = q[v]
	}
	// Distinctness check on the image: q is injective, so image collisions
	// expose duplicate inputs.
	for i := 0; i < len(image); i++ {
		for j := i + 1; j < len(image); j++ {
			if image[i] == image[j] {
				return nil, 0, ErrDuplicateIndex
			}
		}
	}

	sign := 1
	if perm.Parity(image) == 1 {
		sign = -1
	}

	insertionSort(image)

	return Key(image), sign, nil
}

// insertionSort sorts a short int slice in place. The tuples here hold a
// handful of Majorana indices, where insertion sort beats sort.Ints.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
