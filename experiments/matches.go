package experiments

import (
	"adversarial/engine"
	"adversarial/experiments/metrics"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RunMatches plays games on engines built by newEngine and collects the game
// and move records.
func RunMatches(name string, games int, newEngine func(game int) engine.Engine) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for i := 1; i <= games; i++ {
		log.Info().Msgf("starting game %d of %d...", i, games)

		gameMetric, moveMetrics, err := newEngine(i).Run()
		if err != nil {
			return gameRecords, moveRecords, errors.Wrapf(err, "game %d", i)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i, MoveMetric: mm})
		}

		log.Info().Msgf("completed game %d: %s", i, gameMetric.Outcome)
	}

	log.Info().Msgf("completed %s experiment", name)
	return gameRecords, moveRecords, nil
}
