package searcher

import "math"

// Inf bounds every score the searches produce.
const Inf = math.MaxInt32

// SolveDepth is the default budget for exact solves. Leaf scores are scaled by
// the remaining depth, so the budget has to exceed the longest possible game
// for the scores to encode the distance to the result.
const SolveDepth = 1000

// MaxSearchDepth caps caller supplied budgets and with them recursion depth.
const MaxSearchDepth = 4096

// ExpectiDepth is the default lookahead, in deterministic plies, of the
// stochastic searches.
const ExpectiDepth = 3

// MaxVariationLength bounds stochastic principal variations, which need not
// terminate in a bounded number of plies.
const MaxVariationLength = 1024

// Memoized perft only caches nodes with more remaining depth than this.
const perftCacheDepth = 3

// Chance outcomes are weighted in fixed point to bound rounding error.
const probabilityScale = 1_000_000
