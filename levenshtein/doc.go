// Package levenshtein computes weighted edit distances between strings:
// the minimum total cost of single-character insertions, deletions and
// substitutions transforming one string into another.
//
// 🚀 What is a weighted edit distance?
//
//	The classic Levenshtein distance counts edits; this package weights
//	them. Each Calculator carries a fixed Costs triple (Add, Remove,
//	Change) and answers distance queries against it. Weighted distances
//	are widely used in:
//	  • Fuzzy string matching & search suggestions
//	  • Spell-correction candidate ranking
//	  • Record linkage / deduplication
//	  • Diff-cost estimation
//
// ✨ Key features:
//   - configurable, possibly asymmetric costs (Add need not equal Remove)
//   - three evaluators over one recurrence, numerically identical:
//     DistanceNaive     — plain recursion, exponential, baseline
//     DistanceMemoized  — recursion + per-instance suffix-pair cache
//     DistanceIterative — bottom-up DP matrix, O(N·M) worst case
//   - FullMatrix or TwoRows storage for the iterative fill (MemoryMode)
//   - rune-aware comparison: multi-byte characters count as one unit
//     (exact code-point equality, no Unicode normalization)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strdist/levenshtein"
//
//	calc, err := levenshtein.New()          // Add=1, Remove=1, Change=1.5
//	if err != nil { ... }
//
//	d := calc.DistanceIterative("algorithme", "gorilles") // 7.0
//
// Choosing an evaluator:
//
//   - DistanceIterative is the workhorse: deterministic O(N·M) time, no
//     recursion depth risk. Prefer it for anything beyond a few dozen
//     characters.
//   - DistanceMemoized amortizes repeated queries on one instance; its
//     cache is never evicted, so long-lived instances fed many distinct
//     pairs grow without bound.
//   - DistanceNaive exists as the readable reference implementation and
//     a cross-check; its call tree is exponential on mismatch-heavy
//     inputs.
//
// Distances are always finite and non-negative for any inputs; empty
// strings are ordinary base cases, not errors. Construction rejects
// negative costs with ErrNegativeCost.
//
// See example_test.go for runnable examples and bench_test.go for a
// side-by-side comparison of the three strategies.
package levenshtein
