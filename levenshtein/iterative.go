package levenshtein

// DistanceIterative computes the weighted edit distance from a to b by
// bottom-up dynamic programming — no recursion, no cache, stateless
// across calls.
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(a), m = len(b) in runes. Allocate an (m+1)x(n+1)
//     matrix D; rows track consumed characters of b, columns of a.
//  2. Initialize:
//     D[0][x] = x · Remove    (turn a prefix of a into the empty string)
//     D[y][0] = y · Add       (build a prefix of b from the empty string)
//  3. For y = 1..m, x = 1..n:
//     subst = 0 if a[x-1] == b[y-1], else Change
//     D[y][x] = min(D[y-1][x] + Add, D[y][x-1] + Remove, D[y-1][x-1] + subst)
//  4. distance = D[m][n].
//
// In TwoRows mode only the current and previous row are kept; the
// numbers are identical, the matrix is never materialized.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(n) (TwoRows)
//
// Pure function, safe for unrestricted concurrent use. The transient
// matrix is discarded when the call returns.
func (c *Calculator) DistanceIterative(a, b string) float64 {
	runesA, runesB := []rune(a), []rune(b)
	if c.mode == TwoRows {
		return c.fillTwoRows(runesA, runesB)
	}

	return c.fillFullMatrix(runesA, runesB)
}

// fillFullMatrix materializes the whole DP table.
func (c *Calculator) fillFullMatrix(a, b []rune) float64 {
	n, m := len(a), len(b)

	costs := make([][]float64, m+1)
	for y := range costs {
		costs[y] = make([]float64, n+1)
	}
	for x := 1; x <= n; x++ {
		costs[0][x] = float64(x) * c.costs.Remove
	}
	for y := 1; y <= m; y++ {
		costs[y][0] = float64(y) * c.costs.Add
	}

	for y := 1; y <= m; y++ {
		for x := 1; x <= n; x++ {
			subst := c.costs.Change
			if a[x-1] == b[y-1] {
				subst = 0
			}
			costs[y][x] = min3(
				costs[y-1][x]+c.costs.Add,
				costs[y][x-1]+c.costs.Remove,
				costs[y-1][x-1]+subst,
			)
		}
	}

	return costs[m][n]
}

// fillTwoRows runs the same fill keeping only two rows, swapping them
// after every row of b.
func (c *Calculator) fillTwoRows(a, b []rune) float64 {
	n, m := len(a), len(b)

	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for x := 1; x <= n; x++ {
		prev[x] = float64(x) * c.costs.Remove
	}

	for y := 1; y <= m; y++ {
		curr[0] = float64(y) * c.costs.Add
		for x := 1; x <= n; x++ {
			subst := c.costs.Change
			if a[x-1] == b[y-1] {
				subst = 0
			}
			curr[x] = min3(
				prev[x]+c.costs.Add,
				curr[x-1]+c.costs.Remove,
				prev[x-1]+subst,
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
