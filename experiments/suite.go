package experiments

import (
	"context"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/games/connect4"
	"adversarial/games/cover"
	"adversarial/games/knight"
	"adversarial/games/tictactoe"
	"adversarial/games/ur"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Job runs the perft driver on a fresh position of one game.
type Job struct {
	Name string
	Run  func(opts ...PerftOption) []metrics.PerftMetric
}

func PerftJob[M any, K comparable, S game.Snapshotter[M, K]](name string, newState func() S) Job {
	return Job{
		Name: name,
		Run: func(opts ...PerftOption) []metrics.PerftMetric {
			return RunPerft[M, K](name, newState(), opts...)
		},
	}
}

// Jobs is the perft job for every game, keyed by name.
func Jobs() []Job {
	return []Job{
		PerftJob[tictactoe.Move, tictactoe.Board]("tictactoe", tictactoe.New),
		PerftJob[cover.Move, cover.Board]("cover", cover.New),
		PerftJob[connect4.Move, connect4.Board]("connect4", connect4.New),
		PerftJob[ur.Move, ur.Board]("ur", ur.New),
		PerftJob[knight.Move, knight.Board]("knight", knight.New),
	}
}

// FindJob looks a job up by name.
func FindJob(name string) (Job, bool) {
	return lo.Find(Jobs(), func(j Job) bool {
		return j.Name == name
	})
}

// RunSuite runs jobs on at most goroutines goroutines. Each job owns its state,
// cache and collector, so nothing is shared between them. Jobs not yet started
// are skipped once ctx is done.
func RunSuite(ctx context.Context, jobs []Job, goroutines int, opts ...PerftOption) ([]metrics.PerftMetric, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(goroutines, 1))

	results := make([][]metrics.PerftMetric, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("suite: starting %s", job.Name)
			jobOpts := append(append([]PerftOption(nil), opts...), WithCollector(metrics.NewCollector()))
			results[i] = job.Run(jobOpts...)
			log.Info().Msgf("suite: finished %s", job.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lo.Flatten(results), nil
}
