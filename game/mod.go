package game

// ToMove classifies a node for searches that mix players and chance.
type ToMove int8

const (
	Maximizer ToMove = iota
	Minimizer
	Chance
)

func (t ToMove) String() string {
	switch t {
	case Maximizer:
		return "max"
	case Minimizer:
		return "min"
	case Chance:
		return "chance"
	default:
		return "unknown"
	}
}

// State is the contract every game position implements. Searches mutate a State
// in place through Push/Pop and restore it before returning.
//
// Pop must be called with exactly the move most recently pushed and not yet
// popped. This is not checked; violating it leaves the state undefined.
type State[M any] interface {
	// Turn is +1 or -1 for the player to move. Meaningless at chance nodes.
	Turn() int
	// Evaluate returns -1, 0 or +1 from the first player's perspective. It is
	// non-zero only when the game has been decided.
	Evaluate() int
	IsTerminal() bool
	// GenerateMoves appends every legal move to buffer and returns it. The
	// buffer is never cleared and the order is deterministic for a given state.
	GenerateMoves(buffer []M) []M
	Push(move M)
	Pop(move M)
	// ActionSpaceSize is a capacity hint for move buffers.
	ActionSpaceSize() int
	ToMove() ToMove
}

// Keyed states can be cached in a transposition table. Keys need not be
// collision free but must be a deterministic function of the position.
type Keyed[M any] interface {
	State[M]
	HashKey() uint64
}

// Snapshotter states can hand out an owned, comparable copy of themselves.
// Equal snapshots must have identical future move trees.
type Snapshotter[M any, K comparable] interface {
	State[M]
	Snapshot() K
}

// Weighted is one outcome of a chance node.
type Weighted[M any] struct {
	Move        M
	Probability float64
}

// Stochastic states expose the full outcome distribution at chance nodes.
// Calling GenerateMovesWithProbabilities anywhere else panics.
type Stochastic[M any] interface {
	State[M]
	GenerateMovesWithProbabilities(buffer []Weighted[M]) []Weighted[M]
}

// PartiallySolvable states can be scored before the game ends. The score is
// from the first player's perspective; terminal positions return a magnitude
// larger than any non-terminal score.
type PartiallySolvable[M any] interface {
	State[M]
	Heuristic() int
}

// StochasticSolvable is what depth-limited expectiminimax needs.
type StochasticSolvable[M any] interface {
	Stochastic[M]
	PartiallySolvable[M]
}

// ToMoveFromTurn is the classification for games without chance nodes.
func ToMoveFromTurn(turn int) ToMove {
	if turn > 0 {
		return Maximizer
	}
	return Minimizer
}
