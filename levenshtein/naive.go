package levenshtein

import "unicode/utf8"

// DistanceNaive computes the weighted edit distance from a to b by
// direct recursive application of the recurrence, with no memoization.
//
// Recurrence (X, Y arbitrary strings; p, q single characters):
//
//	d(ε, ε)  = 0
//	d(ε, Y)  = |Y| · Add
//	d(X, ε)  = |X| · Remove
//	d(pX, pY) = d(X, Y)
//	d(pX, qY) = min(Add + d(pX, Y), Remove + d(X, qY), Change + d(X, Y))
//
// Complexity:
//
//	Time   = exponential in the input lengths (3-way branching on every
//	         mismatch), so this is a correctness baseline for short
//	         inputs only — beyond a few dozen characters prefer
//	         DistanceIterative.
//	Memory = O(min(|a|,|b|)) call-stack depth.
//
// Purely deterministic, no side effects, safe for concurrent use.
func (c *Calculator) DistanceNaive(a, b string) float64 {
	return c.naive(a, b)
}

// naive walks the unconsumed suffixes from the front. Strings are
// sliced at rune boundaries, so multi-byte characters count as one
// unit each.
func (c *Calculator) naive(a, b string) float64 {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return float64(utf8.RuneCountInString(b)) * c.costs.Add
	case b == "":
		return float64(utf8.RuneCountInString(a)) * c.costs.Remove
	}

	ra, sizeA := utf8.DecodeRuneInString(a)
	rb, sizeB := utf8.DecodeRuneInString(b)

	// Equal leading characters cost nothing; skip both.
	if ra == rb {
		return c.naive(a[sizeA:], b[sizeB:])
	}

	costAdd := c.costs.Add + c.naive(a, b[sizeB:])
	costRemove := c.costs.Remove + c.naive(a[sizeA:], b)
	costChange := c.costs.Change + c.naive(a[sizeA:], b[sizeB:])

	return min3(costAdd, costRemove, costChange)
}
