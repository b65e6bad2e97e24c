package searcher

import (
	"fmt"

	"adversarial/game"
	"adversarial/utils"
)

// descend plays move for the duration of fn and pops it on every exit path.
func descend[M any, R any](node game.State[M], move M, fn func() R) R {
	node.Push(move)
	defer node.Pop(move)
	return fn()
}

// leafValue scores a node that is not expanded, relative to the side to move.
// Scaling by the remaining depth ranks a result found near the root above the
// same result found deeper, so faster wins and slower losses are preferred.
func leafValue[M any](node game.State[M], depth int) int {
	return node.Turn() * node.Evaluate() * max(depth, 0)
}

// Negamax is a fail-soft alpha-beta search. The value is relative to the side
// to move at node. The node is restored before returning.
func Negamax[M any](node game.State[M], depth, alpha, beta int) int {
	if depth <= 0 || node.IsTerminal() {
		return leafValue(node, depth)
	}

	moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
	if len(moves) == 0 {
		return leafValue(node, depth)
	}

	best := -Inf
	for _, m := range moves {
		value := -descend(node, m, func() int {
			return Negamax(node, depth-1, -beta, -alpha)
		})
		best = max(best, value)
		alpha = max(alpha, best)
		if best >= beta {
			break
		}
	}
	return best
}

// Solve searches node exactly and returns the number of plies until the game
// is decided, signed by the winner: positive for the first player, negative for
// the second, 0 for a draw. The default budget is SolveDepth.
//
// The ply count is only meaningful when the budget exceeds the longest possible
// game. A shallower budget still ranks moves but the count is not a distance.
func Solve[M any](node game.State[M], opts ...Option) int {
	depth := newOptions(opts).depthOr(SolveDepth)
	value := Negamax(node, depth, -Inf, Inf) * node.Turn()
	return PliesToResolution(value, depth)
}

// PliesToResolution turns a depth-scaled score from the first player's
// perspective into signed plies until the result.
func PliesToResolution(value, budget int) int {
	return (budget - utils.Abs(value)) * utils.Sign(value)
}

// DescribeSolve renders a Solve result.
func DescribeSolve(score int) string {
	switch outcome := game.Classify(score); outcome {
	case game.Draw:
		return outcome.String()
	default:
		return fmt.Sprintf("%s in %d", outcome, utils.Abs(score))
	}
}
