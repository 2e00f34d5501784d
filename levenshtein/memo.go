package levenshtein

import "unicode/utf8"

// DistanceMemoized computes the same weighted edit distance as
// DistanceNaive, backed by a calculator-owned cache keyed by the pair
// of unconsumed suffixes, so each distinct subproblem is solved once
// per Calculator lifetime.
//
// Only mismatch subproblems are stored; the equal-leading-character
// reduction recurses straight into the cache-aware call, so its cost
// is captured transitively when the reduced pair is computed.
//
// Complexity:
//
//	Time   = O(|a|·|b|) distinct subproblems, amortized across all
//	         calls on this instance.
//	Memory = O(|a|·|b|) cache entries per distinct input pair,
//	         monotonically growing, never evicted.
//
// The whole evaluation runs under the calculator's mutex: concurrent
// calls on the same instance are safe, but serialized. Entries are
// write-once, so a cached value never changes after it is stored.
func (c *Calculator) DistanceMemoized(a, b string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.memoized(a, b)
}

// memoized mirrors naive, consulting the cache before branching on a
// mismatch and storing the freshly computed minimum before returning.
// Callers must hold c.mu.
func (c *Calculator) memoized(a, b string) float64 {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return float64(utf8.RuneCountInString(b)) * c.costs.Add
	case b == "":
		return float64(utf8.RuneCountInString(a)) * c.costs.Remove
	}

	key := suffixPair{a: a, b: b}
	if cost, ok := c.cache[key]; ok {
		return cost
	}

	ra, sizeA := utf8.DecodeRuneInString(a)
	rb, sizeB := utf8.DecodeRuneInString(b)

	if ra == rb {
		return c.memoized(a[sizeA:], b[sizeB:])
	}

	c.computations++

	costAdd := c.costs.Add + c.memoized(a, b[sizeB:])
	costRemove := c.costs.Remove + c.memoized(a[sizeA:], b)
	costChange := c.costs.Change + c.memoized(a[sizeA:], b[sizeB:])

	cost := min3(costAdd, costRemove, costChange)
	c.cache[key] = cost

	return cost
}
