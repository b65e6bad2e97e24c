package experiments

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
	"adversarial/utils"

	"github.com/rs/zerolog/log"
)

// Root is the SolveMetric.Move of the position itself.
const Root = "root"

// SolveReport solves state and then every root move, and returns the moves
// sorted from worst to best for the player to move. Scores are signed plies
// from the root position until the result.
func SolveReport[M any](name string, state game.State[M], depth int) []metrics.SolveMetric {
	start := time.Now()
	score := searcher.Solve(state, searcher.WithDepth(depth))
	report := []metrics.SolveMetric{{Game: name, Move: Root, Score: score, Duration: time.Since(start)}}
	log.Info().Msgf("%s: %s", name, searcher.DescribeSolve(score))

	var moves []metrics.SolveMetric
	for _, m := range state.GenerateMoves(nil) {
		start := time.Now()
		state.Push(m)
		var plies int
		if state.IsTerminal() {
			plies = state.Evaluate()
		} else {
			plies = searcher.Solve(state, searcher.WithDepth(depth))
			plies += utils.Sign(plies)
		}
		state.Pop(m)
		moves = append(moves, metrics.SolveMetric{Game: name, Move: fmt.Sprint(m), Score: plies, Duration: time.Since(start)})
	}

	turn := state.Turn()
	slices.SortStableFunc(moves, func(a, b metrics.SolveMetric) int {
		return cmp.Compare(rank(a.Score*turn), rank(b.Score*turn))
	})
	for _, m := range moves {
		log.Info().Msgf("%s: %s: %s", name, m.Move, searcher.DescribeSolve(m.Score))
	}
	return append(report, moves...)
}

// rank orders scores from the mover's point of view: fast losses, slow
// losses, draws, slow wins, fast wins.
func rank(plies int) int {
	const decided = math.MaxInt32
	switch {
	case plies > 0:
		return decided - plies
	case plies < 0:
		return -decided - plies
	default:
		return 0
	}
}
