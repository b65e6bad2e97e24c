// Package agent provides the move providers the engine plays with.
package agent

import (
	"fmt"

	"adversarial/game"
	"adversarial/searcher"
	"adversarial/utils"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

var (
	ErrMoveNotFound = errors.New("move not found")
	ErrNoMoves      = errors.New("no legal moves")
	ErrUnsupported  = errors.New("state does not support this agent")
)

type Agent[M any] interface {
	// FindMove returns the move to play at state. State is left as it was found.
	FindMove(state game.State[M]) (M, error)
}

// MoveNames lists the legal moves at state by their string form.
func MoveNames[M any](state game.State[M]) []string {
	return lo.Map(state.GenerateMoves(nil), func(m M, _ int) string {
		return fmt.Sprint(m)
	})
}

// ParseMove matches token against the string form of the legal moves.
func ParseMove[M any](state game.State[M], token string) (M, error) {
	moves := state.GenerateMoves(nil)
	i := utils.FindIndex(moves, func(m M) bool {
		return fmt.Sprint(m) == token
	})
	if i < 0 {
		var zero M
		return zero, errors.Wrapf(ErrMoveNotFound, "%q", token)
	}
	return moves[i], nil
}

func legal[M any](state game.State[M]) error {
	if state.IsTerminal() || len(state.GenerateMoves(nil)) == 0 {
		return ErrNoMoves
	}
	return nil
}

// Solver plays the negamax best move.
type Solver[M any] struct {
	options []searcher.Option
}

func NewSolver[M any](opts ...searcher.Option) *Solver[M] {
	return &Solver[M]{options: opts}
}

func (s *Solver[M]) FindMove(state game.State[M]) (M, error) {
	if err := legal(state); err != nil {
		var zero M
		return zero, err
	}
	return searcher.BestMove(state, s.options...), nil
}

// Expecti plays the expectiminimax best move. It needs a state that exposes
// chance odds and a heuristic.
type Expecti[M any] struct {
	options []searcher.Option
}

func NewExpecti[M any](opts ...searcher.Option) *Expecti[M] {
	return &Expecti[M]{options: opts}
}

func (e *Expecti[M]) FindMove(state game.State[M]) (M, error) {
	var zero M
	stochastic, ok := state.(game.StochasticSolvable[M])
	if !ok {
		return zero, errors.Wrapf(ErrUnsupported, "expectiminimax on %T", state)
	}
	if err := legal(state); err != nil {
		return zero, err
	}
	return searcher.ExpectiBestMove(stochastic, e.options...), nil
}

// Roller resolves chance nodes by sampling the outcome odds.
type Roller[M any] struct {
	rng *rand.Rand
}

func NewRoller[M any](seed uint64) *Roller[M] {
	return &Roller[M]{rng: rand.New(rand.NewSource(seed))}
}

func (r *Roller[M]) FindMove(state game.State[M]) (M, error) {
	var zero M
	stochastic, ok := state.(game.Stochastic[M])
	if !ok {
		return zero, errors.Wrapf(ErrUnsupported, "dice on %T", state)
	}
	if state.ToMove() != game.Chance {
		return zero, errors.Errorf("roller asked to move at a %s node", state.ToMove())
	}

	outcomes := stochastic.GenerateMovesWithProbabilities(nil)
	if len(outcomes) == 0 {
		return zero, ErrNoMoves
	}
	x := r.rng.Float64()
	for _, o := range outcomes {
		x -= o.Probability
		if x < 0 {
			return o.Move, nil
		}
	}
	return outcomes[len(outcomes)-1].Move, nil
}

// Random plays a uniformly random legal move.
type Random[M any] struct {
	rng *rand.Rand
}

func NewRandom[M any](seed uint64) *Random[M] {
	return &Random[M]{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random[M]) FindMove(state game.State[M]) (M, error) {
	moves := state.GenerateMoves(nil)
	if len(moves) == 0 {
		var zero M
		return zero, ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}
