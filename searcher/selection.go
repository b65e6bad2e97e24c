package searcher

import (
	"adversarial/game"

	"github.com/samber/lo"
)

// Scored pairs a root move with its value for the player making it.
type Scored[M any] struct {
	Move  M
	Value int
}

// EvaluateMoves scores every legal root move with a full negamax search of the
// resulting position. Values are depth scaled and relative to the player to
// move at node.
func EvaluateMoves[M any](node game.State[M], opts ...Option) []Scored[M] {
	depth := newOptions(opts).depthOr(SolveDepth)
	moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
	scored := make([]Scored[M], len(moves))
	for i, m := range moves {
		value := -descend(node, m, func() int {
			return Negamax(node, depth, -Inf, Inf)
		})
		scored[i] = Scored[M]{Move: m, Value: value}
	}
	return scored
}

// best picks the highest value, keeping the earliest move on ties.
func best[M any](scored []Scored[M]) M {
	if len(scored) == 0 {
		panic("no legal moves to choose from")
	}
	return lo.MaxBy(scored, func(a, b Scored[M]) bool {
		return a.Value > b.Value
	}).Move
}

// BestMove returns the root move with the highest negamax value. Ties go to
// the move generated first. It panics when node has no legal moves.
func BestMove[M any](node game.State[M], opts ...Option) M {
	return best(EvaluateMoves(node, opts...))
}

// PrincipalVariation plays BestMove until the game ends and returns the line.
// The node is restored before returning.
func PrincipalVariation[M any](node game.State[M], opts ...Option) []M {
	var line []M
	defer func() {
		for i := len(line) - 1; i >= 0; i-- {
			node.Pop(line[i])
		}
	}()

	for !node.IsTerminal() {
		scored := EvaluateMoves(node, opts...)
		if len(scored) == 0 {
			break
		}
		m := best(scored)
		node.Push(m)
		line = append(line, m)
	}
	return append([]M(nil), line...)
}

// ExpectiBestMove returns the root move with the best expectiminimax value for
// the player to move. At a chance node every move gets a random value, so the
// result is a uniformly random outcome.
func ExpectiBestMove[M any](node game.StochasticSolvable[M], opts ...Option) M {
	return expectiBestMove(node, newOptions(opts))
}

func expectiBestMove[M any](node game.StochasticSolvable[M], o *options) M {
	depth := o.depthOr(ExpectiDepth)
	toMove := node.ToMove()
	moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
	scored := make([]Scored[M], len(moves))
	for i, m := range moves {
		var value int
		switch toMove {
		case game.Maximizer:
			value = descend(node, m, func() int {
				return Expectiminimax(node, depth-1)
			})
		case game.Minimizer:
			value = -descend(node, m, func() int {
				return Expectiminimax(node, depth-1)
			})
		default:
			value = o.random().Int()
		}
		scored[i] = Scored[M]{Move: m, Value: value}
	}
	return best(scored)
}

// ExpectiPrincipalVariation plays ExpectiBestMove, chance nodes included, until
// the game ends or the line reaches the WithMaxPlies bound. The node is
// restored before returning.
func ExpectiPrincipalVariation[M any](node game.StochasticSolvable[M], opts ...Option) []M {
	o := newOptions(opts)
	var line []M
	defer func() {
		for i := len(line) - 1; i >= 0; i-- {
			node.Pop(line[i])
		}
	}()

	for !node.IsTerminal() && len(line) < o.maxPlies {
		m := expectiBestMove(node, o)
		node.Push(m)
		line = append(line, m)
	}
	return append([]M(nil), line...)
}
