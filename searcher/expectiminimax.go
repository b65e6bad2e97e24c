package searcher

import (
	"math"

	"adversarial/game"
)

// Expectiminimax searches max, min and chance nodes and returns a heuristic
// value from the first player's perspective. Only deterministic plies consume
// depth: a chance node passes its full budget to every outcome.
func Expectiminimax[M any](node game.StochasticSolvable[M], depth int) int {
	if depth <= 0 || node.IsTerminal() {
		return node.Heuristic()
	}

	switch node.ToMove() {
	case game.Chance:
		outcomes := node.GenerateMovesWithProbabilities(make([]game.Weighted[M], 0, node.ActionSpaceSize()))
		var sum int64
		for _, o := range outcomes {
			value := descend(node, o.Move, func() int {
				return Expectiminimax(node, depth)
			})
			sum += int64(value) * int64(math.Round(o.Probability*probabilityScale))
		}
		return int(sum / probabilityScale)

	case game.Maximizer:
		moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
		if len(moves) == 0 {
			return node.Heuristic()
		}
		best := -Inf
		for _, m := range moves {
			best = max(best, descend(node, m, func() int {
				return Expectiminimax(node, depth-1)
			}))
		}
		return best

	default:
		moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
		if len(moves) == 0 {
			return node.Heuristic()
		}
		best := Inf
		for _, m := range moves {
			best = min(best, descend(node, m, func() int {
				return Expectiminimax(node, depth-1)
			}))
		}
		return best
	}
}
