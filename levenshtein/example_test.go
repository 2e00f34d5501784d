package levenshtein_test

import (
	"fmt"

	"github.com/katalvlaran/strdist/levenshtein"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleNew
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Default cost model (Add=1, Remove=1, Change=1.5), "CAT" → "DOG".
//	Every position differs, so three substitutions at 1.5 each win over
//	any add/remove mix.
//
// Complexity: O(N·M) time with the iterative evaluator.
func ExampleNew() {
	calc, err := levenshtein.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("distance=%.1f\n", calc.DistanceIterative("CAT", "DOG"))
	// Output:
	// distance=4.5
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleNew_unitCosts
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Unit costs reproduce the classic Levenshtein count. The "CAT"/"DOG"
//	matrix fills to
//
//	    CAT
//	   0123
//	 D 1123
//	 O 2223
//	 G 3333
//
//	and the bottom-right cell is the answer.
func ExampleNew_unitCosts() {
	calc, err := levenshtein.New(
		levenshtein.WithCosts(levenshtein.Costs{Add: 1, Remove: 1, Change: 1}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("distance=%.0f\n", calc.DistanceIterative("CAT", "DOG"))
	// Output:
	// distance=3
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleCalculator_DistanceMemoized
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The demo pair "algorithme"/"gorilles" under default costs. The
//	second query is answered straight from the instance cache and is
//	guaranteed to match the first.
func ExampleCalculator_DistanceMemoized() {
	calc, err := levenshtein.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	first := calc.DistanceMemoized("algorithme", "gorilles")
	second := calc.DistanceMemoized("algorithme", "gorilles")
	fmt.Printf("first=%.1f second=%.1f\n", first, second)
	// Output:
	// first=7.0 second=7.0
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleCalculator_DistanceNaive
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Asymmetric weights: additions are cheap, removals expensive.
//	Turning "ab" into "abba" only ever adds, so the direction matters:
//	the reverse transformation pays the removal price.
func ExampleCalculator_DistanceNaive() {
	calc, err := levenshtein.New(
		levenshtein.WithCosts(levenshtein.Costs{Add: 1, Remove: 4, Change: 2}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("grow=%.0f shrink=%.0f\n",
		calc.DistanceNaive("ab", "abba"),
		calc.DistanceNaive("abba", "ab"),
	)
	// Output:
	// grow=2 shrink=8
}
