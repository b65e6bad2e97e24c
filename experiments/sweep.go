package experiments

import (
	"fmt"
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"

	"github.com/rs/zerolog/log"
)

type sweepable[M any, K comparable] interface {
	game.StochasticSolvable[M]
	Snapshot() K
}

// ExpectiSweep evaluates state with expectiminimax at depths 1 to maxDepth. It
// panics if a search leaves the state changed.
func ExpectiSweep[M any, K comparable](name string, state sweepable[M, K], maxDepth int) []metrics.SweepMetric {
	before := state.Snapshot()
	var sweep []metrics.SweepMetric
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		value := searcher.Expectiminimax(state, depth)
		elapsed := time.Since(start)
		if state.Snapshot() != before {
			panic(fmt.Sprintf("%s: expectiminimax at depth %d did not restore the state", name, depth))
		}

		log.Info().Msgf("%s: depth %d: eval %d in %v", name, depth, value, elapsed)
		sweep = append(sweep, metrics.SweepMetric{Game: name, Depth: depth, Value: value, Duration: elapsed})
	}
	return sweep
}
