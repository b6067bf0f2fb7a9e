package cover_test

import (
	"testing"

	"github.com/katalvlaran/fgucover/cover"
	"github.com/katalvlaran/fgucover/majorana"
	"github.com/katalvlaran/fgucover/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countsSum adds up all registry coverage counts.
func countsSum(reg *majorana.Registry) int {
	total := 0
	for _, k := range reg.Keys() {
		c, _ := reg.Count(k)
		total += c
	}

	return total
}

// TestTally_IdentityHitsEveryDiagonal verifies that the identity setting
// credits exactly the diagonal targets, all with sign +1.
func TestTally_IdentityHitsEveryDiagonal(t *testing.T) {
	reg, err := majorana.KRDM(3, 2)
	require.NoError(t, err)

	records, err := cover.Tally(reg, perm.Identity(6), 2)
	require.NoError(t, err)

	// Diagonal candidates: C(3,1) + C(3,2) = 3 + 3; all are registry keys.
	assert.Len(t, records, 6)
	for _, rec := range records {
		assert.True(t, rec.Measured.Equal(rec.Diagonal), "identity measures the diagonal itself")
		assert.Equal(t, 1, rec.Sign, "identity accrues no sign")
	}
	assert.Equal(t, 6, countsSum(reg))
}

// TestTally_RecordsMatchIncrements verifies the 1:1 correspondence between
// returned records and registry increments, and that counts never move for
// keys outside the registry.
func TestTally_RecordsMatchIncrements(t *testing.T) {
	// Deliberately sparse registry: only two of the six possible pairs.
	reg, err := majorana.NewRegistry([]majorana.Key{{0, 1}, {2, 3}}, 4)
	require.NoError(t, err)

	rng := perm.NewRand(23)
	for trial := 0; trial < 30; trial++ {
		before := countsSum(reg)
		q, err := perm.Random(4, rng)
		require.NoError(t, err)

		records, err := cover.Tally(reg, q, 1)
		require.NoError(t, err)
		assert.Equal(t, before+len(records), countsSum(reg),
			"each record corresponds to exactly one increment")

		for _, rec := range records {
			_, ok := reg.Count(rec.Measured)
			assert.True(t, ok, "records must only name registry targets")
			assert.Contains(t, []int{-1, 1}, rec.Sign)
		}
	}
}

// TestTally_DerivedBodyOrderBound verifies kMax==0 derives the bound from
// the registry, matching an explicit bound exactly.
func TestTally_DerivedBodyOrderBound(t *testing.T) {
	q := perm.Perm{2, 0, 3, 1, 5, 4}

	regA, err := majorana.KRDM(3, 2)
	require.NoError(t, err)
	regB, err := majorana.KRDM(3, 2)
	require.NoError(t, err)

	recsDerived, err := cover.Tally(regA, q, 0)
	require.NoError(t, err)
	recsExplicit, err := cover.Tally(regB, q, 2)
	require.NoError(t, err)

	assert.Equal(t, recsExplicit, recsDerived)
}

// TestTally_BoundBelowRegistryOrder verifies a tighter bound skips higher
// body orders entirely.
func TestTally_BoundBelowRegistryOrder(t *testing.T) {
	reg, err := majorana.KRDM(2, 2)
	require.NoError(t, err)

	records, err := cover.Tally(reg, perm.Identity(4), 1)
	require.NoError(t, err)
	assert.Len(t, records, 2, "only the two j=1 diagonals are swept")

	c, ok := reg.Count(majorana.Key{0, 1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, 0, c, "the body-order-2 target must stay untouched")
}

// TestTally_SignConvention pins the sign against the hand-computed swap
// case: Q swapping modes 0↔1 inverts the image of diag (0,1).
func TestTally_SignConvention(t *testing.T) {
	reg, err := majorana.NewRegistry([]majorana.Key{{0, 1}}, 2)
	require.NoError(t, err)

	records, err := cover.Tally(reg, perm.Perm{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, majorana.Key{0, 1}, records[0].Measured)
	assert.Equal(t, majorana.Key{0, 1}, records[0].Diagonal)
	assert.Equal(t, -1, records[0].Sign)
}

// TestTally_InputErrors verifies fail-fast sentinels.
func TestTally_InputErrors(t *testing.T) {
	reg, err := majorana.KRDM(1, 1)
	require.NoError(t, err)

	_, err = cover.Tally(nil, perm.Identity(2), 1)
	assert.ErrorIs(t, err, cover.ErrNilRegistry)

	_, err = cover.Tally(reg, perm.Perm{0, 0}, 1)
	assert.ErrorIs(t, err, perm.ErrNotPermutation)

	_, err = cover.Tally(reg, perm.Identity(3), 1)
	assert.ErrorIs(t, err, cover.ErrOddModes)

	_, err = cover.Tally(reg, perm.Identity(2), -1)
	assert.ErrorIs(t, err, cover.ErrBadBodyOrder)
}
