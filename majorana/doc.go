// Package majorana provides the bookkeeping layer for Majorana operators:
// canonical operator keys, coverage registries, and the permuted index
// transform that decides which operator an FGU circuit measures.
//
// Conventions:
//   - For n fermionic orbitals there are 2n Majorana modes, indexed 0..2n−1.
//   - An operator of body-order j is identified by its strictly increasing
//     tuple of 2j mode indices (a Key). Two operators are equal iff their
//     sorted tuples match; the algebraic content (products of Majorana
//     operators, phases) is reduced to index bookkeeping plus a ±1 sign.
//   - A Registry is the target set of a cover construction: a fixed,
//     immutable key set paired with per-key coverage counts. The key set
//     never grows after construction; only the counts move.
//
// The central transform is PermuteSorted: push an index tuple through a
// mode permutation, re-sort the image, and report the ±1 sign accrued by
// the re-sort. Invoked with the inverse of a candidate measurement
// permutation, it identifies the original operator that the circuit
// renders diagonal.
package majorana
