package levenshtein

// Test-bridge (white-box) for the memo cache internals.
//
// Exposes the unexported cache bookkeeping to the external levenshtein_test
// package only, so cache behavior can be asserted without widening the
// production API.

// Computations_TestOnly reports how many fresh mismatch subproblems the
// memoized evaluator has solved on this instance so far. Cache hits and
// base cases do not count.
func (c *Calculator) Computations_TestOnly() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.computations
}

// CacheLen_TestOnly reports the number of suffix pairs currently stored
// in the instance cache.
func (c *Calculator) CacheLen_TestOnly() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.cache)
}

// MemoryMode_TestOnly reports the configured DP storage strategy.
func (c *Calculator) MemoryMode_TestOnly() MemoryMode {
	return c.mode
}
