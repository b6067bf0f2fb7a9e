// Package cover - result types, options and sentinel errors.
package cover

import (
	"errors"

	"github.com/katalvlaran/fgucover/majorana"
	"github.com/katalvlaran/fgucover/perm"
)

// Sentinel errors for cover construction.
var (
	// ErrNilRegistry is returned when no registry is supplied.
	ErrNilRegistry = errors.New("cover: registry is nil")

	// ErrBadMinCoverage is returned for a coverage threshold below 1.
	ErrBadMinCoverage = errors.New("cover: MinCoverage must be at least 1")

	// ErrBadBodyOrder is returned for a negative MaxBodyOrder option.
	ErrBadBodyOrder = errors.New("cover: MaxBodyOrder must be non-negative")

	// ErrBadMaxDraws is returned for a negative draw budget.
	ErrBadMaxDraws = errors.New("cover: MaxDraws must be non-negative")

	// ErrOddModes is returned when the mode space has odd size; Majorana
	// modes come in pairs (2p, 2p+1), one pair per orbital.
	ErrOddModes = errors.New("cover: number of Majorana modes must be even")

	// ErrBudgetExhausted is returned when MaxDraws settings were drawn
	// without covering every target. The partial cover is returned
	// alongside so callers can inspect how far the search got.
	ErrBudgetExhausted = errors.New("cover: not achievable within draw budget")
)

// Record is one measurement bookkeeping triple: under the setting's
// circuit, Measured is rendered as Sign·Diagonal — the unitary action
// U(Q)·Measured·U(Q)† = Sign·Diagonal. Diagonal is always a union of
// {2p, 2p+1} pairs; Sign is ±1.
type Record struct {
	Measured majorana.Key
	Diagonal majorana.Key
	Sign     int
}

// Setting pairs one drawn permutation with every registry target it
// covers. Records is never empty: settings that cover nothing are not
// retained.
type Setting struct {
	Perm    perm.Perm
	Records []Record
}

// Cover is the ordered collection of retained measurement settings. Each
// permutation appears at most once; insertion order is draw order, which
// is deterministic for a fixed seed.
type Cover struct {
	settings []Setting
	index    map[string]int // perm key → position in settings
}

func newCover() *Cover {
	return &Cover{index: make(map[string]int)}
}

// add inserts a setting; the caller guarantees q is not yet present.
func (c *Cover) add(q perm.Perm, records []Record) {
	c.index[q.Key()] = len(c.settings)
	c.settings = append(c.settings, Setting{Perm: q, Records: records})
}

// Len returns the number of retained settings.
func (c *Cover) Len() int { return len(c.settings) }

// Contains reports whether q was already retained.
func (c *Cover) Contains(q perm.Perm) bool {
	_, ok := c.index[q.Key()]

	return ok
}

// Records returns the measurement records of setting q and whether q is in
// the cover.
func (c *Cover) Records(q perm.Perm) ([]Record, bool) {
	i, ok := c.index[q.Key()]
	if !ok {
		return nil, false
	}

	return c.settings[i].Records, true
}

// Settings returns the retained settings in draw order. The slice is a
// copy; the settings themselves share storage with the cover.
func (c *Cover) Settings() []Setting {
	out := make([]Setting, len(c.settings))
	copy(out, c.settings)

	return out
}

// TotalRecords returns the number of records across all settings — the
// total coverage credited during construction, incidental double-coverage
// included.
func (c *Cover) TotalRecords() int {
	total := 0
	for _, s := range c.settings {
		total += len(s.Records)
	}

	return total
}

// Options configures Build.
//
// Fields:
//   - MinCoverage — r: every registry target must be credited at least
//     this many times before the search stops. Must be ≥ 1.
//   - MaxBodyOrder — bound on the body-order sweep per setting; 0 derives
//     the bound from the registry's largest key. Setting it explicitly is
//     a speedup, never a semantic change, when it matches that maximum.
//   - Seed — random seed; 0 selects the stable default stream.
//   - MaxDraws — optional draw budget; 0 means unbounded. Duplicate draws
//     count against the budget.
//   - EvenOnly — sample only even (determinant +1) permutations. Off by
//     default: coverage semantics do not require det +1 circuits.
type Options struct {
	MinCoverage  int
	MaxBodyOrder int
	Seed         int64
	MaxDraws     int
	EvenOnly     bool
}

// DefaultOptions returns the stock configuration: threshold r=10,
// derived body-order bound, default seed, no draw budget, unrestricted
// parity.
func DefaultOptions() Options {
	return Options{
		MinCoverage:  10,
		MaxBodyOrder: 0,
		Seed:         0,
		MaxDraws:     0,
		EvenOnly:     false,
	}
}

// validate checks internal consistency of the options.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.MinCoverage < 1 {
		return ErrBadMinCoverage
	}
	if o.MaxBodyOrder < 0 {
		return ErrBadBodyOrder
	}
	if o.MaxDraws < 0 {
		return ErrBadMaxDraws
	}

	return nil
}
