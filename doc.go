// Package strdist is your in-memory toolkit for measuring how far apart
// two strings are — weighted edit distances with interchangeable
// evaluation strategies.
//
// 🚀 What is strdist?
//
//	A small, focused library that computes the minimum total cost of
//	single-character insertions, deletions and substitutions needed to
//	turn one string into another:
//		• Configurable cost model: independent add / remove / change weights
//		• Three evaluators, one answer: naive recursion, memoized recursion,
//		  bottom-up matrix iteration — numerically identical results
//		• Memory modes: full DP matrix or a two-row rolling fill
//		• Thread-safe memoization: per-calculator cache guarded under a lock
//
// ✨ Why choose strdist?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – value-equal results across strategies, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Honest complexity – each evaluator documents its exact time/space trade-off
//
// Everything lives in one subpackage:
//
//	levenshtein/ — cost model, Calculator and the three distance evaluators
//
// Quick ASCII example (unit costs, "CAT" → "DOG"):
//
//	    CAT
//	   0123
//	 D 1123
//	 O 2223
//	 G 3333
//
//	the bottom-right cell holds the answer: distance 3.
//
// Typical uses: fuzzy matching, spell-correction candidate ranking,
// diff-cost estimation, or comparing the strategies themselves side by
// side in benchmarks.
//
//	go get github.com/katalvlaran/strdist/levenshtein
package strdist
