// Package majorana - the coverage registry.
//
// The registry keeps an immutable key set beside a separate counts array
// rather than one dual-role map: what to cover is fixed at
// construction, how much has been covered moves independently. Callers can
// therefore reuse one registry across runs (Reset) without aliasing
// surprises.
package majorana

// Registry is the target set of a cover construction: a fixed set of
// operator Keys, each paired with a mutable coverage count starting at 0.
// Keys are never added after construction; Increment on a foreign key is a
// no-op by contract.
//
// Not safe for concurrent use: counts are plain ints mutated by the single
// goroutine driving the cover loop. A parallel driver would need atomic
// counts — see the cover package docs.
type Registry struct {
	modes  int            // number of Majorana modes (2·orbitals)
	keys   []Key          // canonical construction order
	index  map[string]int // encoded key → position in keys/counts
	counts []int
}

// NewRegistry builds a registry over a space of modes Majorana modes from
// the given target keys, all counts 0. Every key is validated fail-fast
// (ErrEmptyKey, ErrOddKey, ErrKeyOrder, ErrIndexRange) and duplicates are
// rejected (ErrDuplicateKey). Keys are copied; the caller's slices stay
// untouched.
//
// Complexity: O(Σ len(key)).
func NewRegistry(keys []Key, modes int) (*Registry, error) {
	if modes < 0 {
		return nil, ErrBadModes
	}

	r := &Registry{
		modes:  modes,
		keys:   make([]Key, 0, len(keys)),
		index:  make(map[string]int, len(keys)),
		counts: make([]int, len(keys)),
	}
	for _, k := range keys {
		if err := k.Validate(modes); err != nil {
			return nil, err
		}
		enc := k.encode()
		if _, dup := r.index[enc]; dup {
			return nil, ErrDuplicateKey
		}
		r.index[enc] = len(r.keys)
		r.keys = append(r.keys, k.Clone())
	}

	return r, nil
}

// KRDM builds the registry for a complete k-body reduced density matrix
// over n orbitals: every strictly increasing tuple of even length 2j,
// j = 1..k, drawn from the 2n Majorana modes, each with count 0.
//
// Errors: ErrBadOrbitals for n<0, ErrBadBodyOrder for k<1. For n==0 the
// registry is empty (nothing to measure), which a cover construction
// treats as vacuously covered.
//
// Complexity: O(Σ_j C(2n,2j)·j) — exponential in k, as is the k-RDM itself.
func KRDM(n, k int) (*Registry, error) {
	if n < 0 {
		return nil, ErrBadOrbitals
	}
	if k < 1 {
		return nil, ErrBadBodyOrder
	}

	modes := 2 * n
	var keys []Key
	for j := 1; j <= k; j++ {
		Combinations(modes, 2*j, func(subset []int) {
			keys = append(keys, Key(subset).Clone())
		})
	}

	return NewRegistry(keys, modes)
}

// Modes returns the number of Majorana modes the registry is defined over.
func (r *Registry) Modes() int { return r.modes }

// Len returns the number of target operators.
func (r *Registry) Len() int { return len(r.keys) }

// Keys returns the target operators in construction order, as independent
// copies.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.keys))
	for i, k := range r.keys {
		out[i] = k.Clone()
	}

	return out
}

// Count returns the coverage count for k and whether k is a target.
func (r *Registry) Count(k Key) (int, bool) {
	i, ok := r.index[k.encode()]
	if !ok {
		return 0, false
	}

	return r.counts[i], true
}

// Increment bumps the coverage count of k by one and reports whether k is
// a registry target; foreign keys are left untouched and never inserted.
func (r *Registry) Increment(k Key) bool {
	i, ok := r.index[k.encode()]
	if !ok {
		return false
	}
	r.counts[i]++

	return true
}

// MinCount returns the smallest coverage count, or 0 for an empty registry.
func (r *Registry) MinCount() int {
	if len(r.counts) == 0 {
		return 0
	}
	minC := r.counts[0]
	for _, c := range r.counts[1:] {
		if c < minC {
			minC = c
		}
	}

	return minC
}

// Covered reports whether every target has been covered at least rMin
// times. An empty registry is vacuously covered.
func (r *Registry) Covered(rMin int) bool {
	for _, c := range r.counts {
		if c < rMin {
			return false
		}
	}

	return true
}

// MaxBodyOrder returns the largest body order among the targets, or 0 for
// an empty registry. Cover constructions use it to bound their search when
// the caller does not.
func (r *Registry) MaxBodyOrder() int {
	maxJ := 0
	for _, k := range r.keys {
		if j := k.BodyOrder(); j > maxJ {
			maxJ = j
		}
	}

	return maxJ
}

// Reset zeroes all coverage counts so the registry can seed a fresh cover
// construction.
func (r *Registry) Reset() {
	for i := range r.counts {
		r.counts[i] = 0
	}
}
