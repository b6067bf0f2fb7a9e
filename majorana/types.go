// Package majorana - operator keys and sentinel errors.
package majorana

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for key and registry construction.
var (
	// ErrEmptyKey is returned for a key with no indices.
	ErrEmptyKey = errors.New("majorana: operator key must be non-empty")

	// ErrOddKey is returned for a key of odd length; Majorana operators of
	// a fermionic RDM always carry an even number of mode indices.
	ErrOddKey = errors.New("majorana: operator key must have even length")

	// ErrKeyOrder is returned when key indices are not strictly increasing
	// (covers both unsorted and duplicated indices).
	ErrKeyOrder = errors.New("majorana: operator key indices must be strictly increasing")

	// ErrIndexRange is returned when an index falls outside [0, modes).
	ErrIndexRange = errors.New("majorana: index out of mode range")

	// ErrDuplicateIndex is returned when an index tuple contains repeats.
	ErrDuplicateIndex = errors.New("majorana: duplicate index")

	// ErrDuplicateKey is returned when a registry is built from a key list
	// containing the same operator twice.
	ErrDuplicateKey = errors.New("majorana: duplicate operator key in registry")

	// ErrBadBodyOrder is returned for a non-positive body order k.
	ErrBadBodyOrder = errors.New("majorana: body order must be positive")

	// ErrBadOrbitals is returned for a negative orbital count.
	ErrBadOrbitals = errors.New("majorana: orbital count must be non-negative")

	// ErrBadModes is returned for a negative mode count.
	ErrBadModes = errors.New("majorana: mode count must be non-negative")
)

// Key identifies a Majorana operator by its canonical index tuple: a
// strictly increasing sequence of mode indices of even length 2j, where j
// is the operator's body order. Keys are treated as immutable; functions
// returning a Key always hand out fresh storage.
type Key []int

// BodyOrder returns j for a length-2j key.
func (k Key) BodyOrder() int {
	return len(k) / 2
}

// Equal reports whether k and other denote the same operator.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}

	return true
}

// Validate checks the Key invariants against a mode count of modes
// (= 2·orbitals). Returns nil, or the first violated sentinel:
// ErrEmptyKey, ErrOddKey, ErrKeyOrder, ErrIndexRange.
//
// Complexity: O(len(k)).
func (k Key) Validate(modes int) error {
	if len(k) == 0 {
		return ErrEmptyKey
	}
	if len(k)%2 != 0 {
		return ErrOddKey
	}
	for i, v := range k {
		if v < 0 || v >= modes {
			return ErrIndexRange
		}
		if i > 0 && k[i-1] >= v {
			return ErrKeyOrder
		}
	}

	return nil
}

// Clone returns an independent copy of k.
func (k Key) Clone() Key {
	c := make(Key, len(k))
	copy(c, k)

	return c
}

// encode renders the tuple as a canonical map key. Shared by the registry
// lookup and the cover's record bookkeeping.
func (k Key) encode() string {
	var sb strings.Builder
	for i, v := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
