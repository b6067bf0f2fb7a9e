// Package cover - the per-setting coverage tally.
package cover

import (
	"github.com/katalvlaran/fgucover/majorana"
	"github.com/katalvlaran/fgucover/perm"
)

// Tally determines every registry target the setting q diagonalizes,
// credits each in place, and returns the measurement records produced.
//
// For each body order j = 1..kMax and each j-subset P of the n = len(q)/2
// orbitals, the candidate diagonal operator is the sorted index set
// {2p, 2p+1 : p ∈ P}. Pulling it back through q⁻¹ (the adjoint of the
// forward unitary action — we ask which original operator the circuit
// renders diagonal, so the map runs backwards) yields the measured
// operator and its accrued sign; on a registry hit the count is
// incremented and the triple recorded.
//
// Contracts:
//   - reg non-nil (ErrNilRegistry); its mode space must match len(q)
//     implicitly — targets indexed beyond len(q) can simply never be hit.
//   - q must be a valid permutation (perm.ErrNotPermutation) of even
//     length (ErrOddModes).
//   - kMax ≥ 0 (ErrBadBodyOrder); kMax == 0 derives the bound from the
//     registry's largest key.
//
// Side effect: mutates registry counts in place — this is how the cover
// constructor tracks progress. Records and increments correspond 1:1.
//
// Complexity: O(Σ_j C(n,j)·j²) per call.
func Tally(reg *majorana.Registry, q perm.Perm, kMax int) ([]Record, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if err := q.Valid(); err != nil {
		return nil, err
	}
	if len(q)%2 != 0 {
		return nil, ErrOddModes
	}
	if kMax < 0 {
		return nil, ErrBadBodyOrder
	}
	if kMax == 0 {
		kMax = reg.MaxBodyOrder()
	}

	n := len(q) / 2
	qInv := q.Inverse()

	var (
		records  []Record
		firstErr error
	)
	for j := 1; j <= kMax; j++ {
		majorana.Combinations(n, j, func(orbitals []int) {
			if firstErr != nil {
				return
			}

			// diag is sorted ascending by construction: orbitals arrive in
			// increasing order and each contributes the pair (2p, 2p+1).
			diag := make([]int, 0, 2*j)
			for _, p := range orbitals {
				diag = append(diag, 2*p, 2*p+1)
			}

			measured, sign, err := majorana.PermuteSorted(diag, qInv)
			if err != nil {
				firstErr = err

				return
			}
			if reg.Increment(measured) {
				records = append(records, Record{
					Measured: measured,
					Diagonal: majorana.Key(diag),
					Sign:     sign,
				})
			}
		})
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return records, nil
}
