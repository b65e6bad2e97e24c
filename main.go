package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/games/connect4"
	"adversarial/games/cover"
	"adversarial/games/knight"
	"adversarial/games/tictactoe"
	"adversarial/games/ur"
	"adversarial/meta"
	"adversarial/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := zerolog.ParseLevel(config.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(config); err != nil {
		log.Error().Err(err).Msgf("%s failed", config.Mode)
		os.Exit(1)
	}
}

// loadConfig applies the config file, if any, and then the flags that were set
// explicitly.
func loadConfig(args []string) (meta.Config, error) {
	defaults := meta.Default()
	fs := flag.NewFlagSet("adversarial", flag.ContinueOnError)
	path := fs.String("config", "", "YAML config file")
	mode := fs.String("mode", defaults.Mode, "perft, suite, solve, play, expecti or match")
	name := fs.String("game", defaults.Game, "tictactoe, cover, connect4, ur or knight")
	logLevel := fs.String("log_level", defaults.LogLevel, "zerolog level")
	solveDepth := fs.Int("solve_depth", defaults.SolveDepth, "negamax budget in plies")
	playDepth := fs.Int("play_depth", defaults.PlayDepth, "engine budget in interactive play")
	expectiDepth := fs.Int("expecti_depth", defaults.ExpectiDepth, "expectiminimax deterministic plies")
	perftDepth := fs.Int("perft_max_depth", defaults.PerftMaxDepth, "deepest perft")
	perftBudget := fs.Duration("perft_time_budget", defaults.PerftTimeBudget, "perft time budget")
	plain := fs.Bool("plain", defaults.Plain, "perft without memoization")
	goroutines := fs.Int("goroutines", defaults.Goroutines, "concurrent suite games")
	maxMoves := fs.Int("max_moves", defaults.MaxMoves, "move limit per game")
	games := fs.Int("games", defaults.Games, "games per match")
	seed := fs.Uint64("seed", defaults.Seed, "dice and random agent seed, 0 for the clock")
	outDir := fs.String("out", defaults.OutDir, "directory for CSV results, empty to skip")
	compress := fs.Bool("compress", defaults.Compress, "zstd compress CSV results")
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	config := defaults
	if *path != "" {
		var err error
		config, err = meta.Load(*path)
		if err != nil {
			return config, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			config.Mode = *mode
		case "game":
			config.Game = *name
		case "log_level":
			config.LogLevel = *logLevel
		case "solve_depth":
			config.SolveDepth = *solveDepth
		case "play_depth":
			config.PlayDepth = *playDepth
		case "expecti_depth":
			config.ExpectiDepth = *expectiDepth
		case "perft_max_depth":
			config.PerftMaxDepth = *perftDepth
		case "perft_time_budget":
			config.PerftTimeBudget = *perftBudget
		case "plain":
			config.Plain = *plain
		case "goroutines":
			config.Goroutines = *goroutines
		case "max_moves":
			config.MaxMoves = *maxMoves
		case "games":
			config.Games = *games
		case "seed":
			config.Seed = *seed
		case "out":
			config.OutDir = *outDir
		case "compress":
			config.Compress = *compress
		}
	})

	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	return config, config.Validate()
}

func run(config meta.Config) error {
	switch config.Mode {
	case "perft":
		job, ok := experiments.FindJob(config.Game)
		if !ok {
			return fmt.Errorf("unknown game %q", config.Game)
		}
		records := job.Run(perftOptions(config)...)
		return store(config, "perft", func(w *metrics.Writer) error {
			return w.WritePerftMetrics(records)
		})

	case "suite":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		records, err := experiments.RunSuite(ctx, experiments.Jobs(), config.Goroutines, perftOptions(config)...)
		if err != nil {
			return err
		}
		return store(config, "suite", func(w *metrics.Writer) error {
			return w.WritePerftMetrics(records)
		})

	case "solve":
		return solve(config)

	case "play":
		return play(config)

	case "expecti":
		sweep := experiments.ExpectiSweep[ur.Move, ur.Board]("ur", ur.New(), config.ExpectiDepth)
		return store(config, "expecti", func(w *metrics.Writer) error {
			return w.WriteSweepMetrics(sweep)
		})

	case "match":
		return match(config)
	}
	return fmt.Errorf("unknown mode %q", config.Mode)
}

func perftOptions(config meta.Config) []experiments.PerftOption {
	opts := []experiments.PerftOption{
		experiments.WithMaxDepth(config.PerftMaxDepth),
		experiments.WithTimeBudget(config.PerftTimeBudget),
	}
	if config.Plain {
		opts = append(opts, experiments.WithPlain())
	}
	return opts
}

// store runs write against a fresh writer when an output directory is set.
func store(config meta.Config, name string, write func(w *metrics.Writer) error) error {
	if config.OutDir == "" {
		return nil
	}
	var opts []metrics.WriterOption
	if config.Compress {
		opts = append(opts, metrics.WithCompression())
	}
	w, err := metrics.NewWriter(config.OutDir, name, opts...)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		return err
	}
	log.Info().Msgf("stored results in %s", w.Dir())
	return nil
}

func solve(config meta.Config) error {
	var report []metrics.SolveMetric
	switch config.Game {
	case "tictactoe":
		report = experiments.SolveReport[tictactoe.Move]("tictactoe", tictactoe.New(), config.SolveDepth)
	case "cover":
		report = experiments.SolveReport[cover.Move]("cover", cover.New(), config.SolveDepth)
	default:
		return fmt.Errorf("%s cannot be solved exactly", config.Game)
	}
	return store(config, "solve", func(w *metrics.Writer) error {
		return w.WriteSolveMetrics(report)
	})
}

func play(config meta.Config) error {
	switch config.Game {
	case "tictactoe":
		return playDeterministic[tictactoe.Move](config, tictactoe.New())
	case "cover":
		return playDeterministic[cover.Move](config, cover.New())
	case "connect4":
		return playDeterministic[connect4.Move](config, connect4.New())
	case "knight":
		return playDeterministic[knight.Move](config, knight.New())
	case "ur":
		human := agent.NewHuman[ur.Move](os.Stdin, os.Stdout)
		expecti := agent.NewExpecti[ur.Move](searcher.WithDepth(config.ExpectiDepth))
		return playGame(config, "ur", ur.New(), []agent.Agent[ur.Move]{human, expecti},
			engine.WithRoller[ur.Move](agent.NewRoller[ur.Move](config.Seed)))
	}
	return fmt.Errorf("unknown game %q", config.Game)
}

func playDeterministic[M any](config meta.Config, state game.State[M]) error {
	human := agent.NewHuman[M](os.Stdin, os.Stdout)
	solver := agent.NewSolver[M](searcher.WithDepth(config.PlayDepth))
	return playGame(config, config.Game, state, []agent.Agent[M]{human, solver})
}

func playGame[M any](config meta.Config, name string, state game.State[M], agents []agent.Agent[M], opts ...engine.Option[M]) error {
	opts = append(opts,
		engine.WithMaxMoves[M](config.MaxMoves),
		engine.WithObserver(func(step int, move M, _ game.State[M]) {
			fmt.Printf("move %d: %v\n", step, move)
		}),
	)
	gameMetric, _, err := engine.LocalEngine(name, state, agents, opts...).Run()
	if err != nil {
		return err
	}
	fmt.Printf("%v\n%s\n", state, gameMetric.Outcome)
	return nil
}

func match(config meta.Config) error {
	newEngine := func(i int) engine.Engine {
		switch config.Game {
		case "ur":
			agents := []agent.Agent[ur.Move]{
				agent.NewExpecti[ur.Move](searcher.WithDepth(config.ExpectiDepth)),
				agent.NewRandom[ur.Move](config.Seed + uint64(i)),
			}
			return engine.LocalEngine[ur.Move]("ur", ur.New(), agents,
				engine.WithRoller[ur.Move](agent.NewRoller[ur.Move](config.Seed+uint64(i))),
				engine.WithMaxMoves[ur.Move](config.MaxMoves))
		default:
			agents := []agent.Agent[tictactoe.Move]{
				agent.NewSolver[tictactoe.Move](searcher.WithDepth(config.SolveDepth)),
				agent.NewRandom[tictactoe.Move](config.Seed + uint64(i)),
			}
			return engine.LocalEngine[tictactoe.Move]("tictactoe", tictactoe.New(), agents,
				engine.WithMaxMoves[tictactoe.Move](config.MaxMoves))
		}
	}
	if config.Game != "ur" && config.Game != "tictactoe" {
		return fmt.Errorf("matches are played on ur or tictactoe, not %q", config.Game)
	}

	gameRecords, moveRecords, err := experiments.RunMatches(config.Game, config.Games, newEngine)
	if err != nil {
		return err
	}
	return store(config, "match", func(w *metrics.Writer) error {
		if err := w.WriteGameRecords(gameRecords); err != nil {
			return err
		}
		return w.WriteMoveRecords(moveRecords)
	})
}
