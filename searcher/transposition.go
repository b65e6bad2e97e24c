package searcher

import "adversarial/game"

// Bound tells how a cached value relates to the true value of a position.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "unknown"
	}
}

type Entry struct {
	Depth int
	Bound Bound
	Value int
}

// Table caches search results by hash key. Entries are overwritten on every
// store regardless of depth, and colliding positions share an entry.
type Table map[uint64]Entry

func NewTable() Table {
	return make(Table)
}

// NegamaxTT is Negamax with a transposition table probed and stored at node.
//
// The children are searched with plain Negamax, so the table only ever holds
// the positions NegamaxTT is called on directly.
func NegamaxTT[M any](node game.Keyed[M], depth, alpha, beta int, table Table) int {
	if depth <= 0 || node.IsTerminal() {
		return leafValue(node, depth)
	}

	alphaOrig := alpha
	key := node.HashKey()
	if entry, ok := table[key]; ok && entry.Depth >= depth {
		switch entry.Bound {
		case Exact:
			return entry.Value
		case LowerBound:
			alpha = max(alpha, entry.Value)
		case UpperBound:
			beta = min(beta, entry.Value)
		}
		if alpha >= beta {
			return alpha
		}
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

	bound := Exact
	switch {
	case best <= alphaOrig:
		bound = UpperBound
	case best >= beta:
		bound = LowerBound
	}
	table[key] = Entry{Depth: depth, Bound: bound, Value: best}
	return best
}

// SolveTT is Solve through NegamaxTT with a table private to the call.
func SolveTT[M any](node game.Keyed[M], opts ...Option) int {
	depth := newOptions(opts).depthOr(SolveDepth)
	value := NegamaxTT(node, depth, -Inf, Inf, NewTable()) * node.Turn()
	return PliesToResolution(value, depth)
}
