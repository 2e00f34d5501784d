// Package levenshtein defines the cost model, options and calculator
// type for weighted edit-distance computation.
//
// A Calculator is built once with a fixed cost configuration and then
// answers distance queries through three interchangeable evaluators
// (DistanceNaive, DistanceMemoized, DistanceIterative). All three
// return the same number for the same inputs; they differ only in
// time/space complexity.
//
// Errors (sentinel):
//
//	– ErrNegativeCost  if any construction cost is negative (or NaN).
//	– ErrBadMemoryMode if MemoryMode is not FullMatrix or TwoRows.
//
// Example usage:
//
//	calc, err := levenshtein.New(
//	    levenshtein.WithCosts(levenshtein.Costs{Add: 1, Remove: 1, Change: 1.5}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(calc.DistanceIterative("algorithme", "gorilles"))
package levenshtein

import (
	"errors"
	"sync"
)

// Sentinel errors returned by New.
var (
	// ErrNegativeCost indicates that a negative (or NaN) cost was supplied.
	// Negative edge weights break the minimality argument of the recurrence,
	// so they are rejected outright rather than clamped.
	ErrNegativeCost = errors.New("levenshtein: costs must be non-negative")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("levenshtein: unknown memory mode")
)

// Costs weights the three edit operations.
//
//	Add    – cost of inserting one character.
//	Remove – cost of deleting one character.
//	Change – cost of substituting one character for another.
//
// All weights must be non-negative. Add and Remove need not be equal;
// with asymmetric weights the distance is directional:
// Distance(a,b) under (Add, Remove) equals Distance(b,a) under the
// swapped pair (Remove, Add).
type Costs struct {
	Add    float64
	Remove float64
	Change float64
}

// DefaultCosts returns the standard configuration:
// Add = 1, Remove = 1, Change = 1.5.
func DefaultCosts() Costs {
	return Costs{Add: 1, Remove: 1, Change: 1.5}
}

// valid reports whether every weight is a non-negative number.
// The c >= 0 form also rejects NaN.
func (c Costs) valid() bool {
	return c.Add >= 0 && c.Remove >= 0 && c.Change >= 0
}

// MemoryMode controls how DistanceIterative stores its DP matrix.
//
//   - FullMatrix — keep the entire (|b|+1)x(|a|+1) matrix in memory.
//     Memory: O(|a|·|b|).
//
//   - TwoRows — keep only the current and previous row.
//     Memory: O(|a|). Same numeric result.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, uses O(N) memory.
	TwoRows
)

// Option configures a Calculator at construction time.
type Option func(*Calculator)

// WithCosts overrides the default cost configuration.
func WithCosts(c Costs) Option {
	return func(calc *Calculator) { calc.costs = c }
}

// WithMemoryMode selects the DP storage strategy for DistanceIterative.
func WithMemoryMode(m MemoryMode) Option {
	return func(calc *Calculator) { calc.mode = m }
}

// suffixPair identifies a subproblem: the unconsumed tails of both
// inputs. Go string equality is value equality, so the pair works
// directly as a map key.
type suffixPair struct {
	a, b string
}

// Calculator computes weighted edit distances under one fixed cost
// configuration. Construct it with New; the zero value is not usable.
//
// DistanceNaive and DistanceIterative are pure functions and safe for
// unrestricted concurrent use. DistanceMemoized mutates the
// calculator-owned cache and serializes itself on an internal mutex,
// so concurrent calls on one instance are safe but run one at a time.
//
// The memo cache grows monotonically across calls and is never
// evicted; an instance fed many distinct string pairs accumulates
// memory for its whole lifetime. Discard the instance to release it.
type Calculator struct {
	costs Costs
	mode  MemoryMode

	mu           sync.Mutex
	cache        map[suffixPair]float64
	computations int
}

// New returns a Calculator with the given options applied over the
// defaults (DefaultCosts, FullMatrix).
//
// Returns ErrNegativeCost if any configured cost is negative or NaN,
// and ErrBadMemoryMode if the memory mode is out of range.
func New(opts ...Option) (*Calculator, error) {
	calc := &Calculator{
		costs: DefaultCosts(),
		mode:  FullMatrix,
		cache: make(map[suffixPair]float64),
	}
	for _, opt := range opts {
		opt(calc)
	}

	if !calc.costs.valid() {
		return nil, ErrNegativeCost
	}
	if calc.mode != FullMatrix && calc.mode != TwoRows {
		return nil, ErrBadMemoryMode
	}

	return calc, nil
}

// Costs returns the active cost configuration.
func (c *Calculator) Costs() Costs { return c.costs }
