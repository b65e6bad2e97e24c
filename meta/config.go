package meta

import (
	"fmt"
	"os"
	"time"

	"adversarial/searcher"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var Modes = []string{"perft", "suite", "solve", "play", "expecti", "match"}

type Config struct {
	Mode            string        `yaml:"mode"`
	Game            string        `yaml:"game"`
	LogLevel        string        `yaml:"log_level"`
	SolveDepth      int           `yaml:"solve_depth"`
	PlayDepth       int           `yaml:"play_depth"`
	ExpectiDepth    int           `yaml:"expecti_depth"`
	PerftMaxDepth   int           `yaml:"perft_max_depth"`
	PerftTimeBudget time.Duration `yaml:"perft_time_budget"`
	Plain           bool          `yaml:"plain"`
	Goroutines      int           `yaml:"goroutines"`
	MaxMoves        int           `yaml:"max_moves"`
	Games           int           `yaml:"games"`
	Seed            uint64        `yaml:"seed"`
	OutDir          string        `yaml:"out_dir"`
	Compress        bool          `yaml:"compress"`
}

func Default() Config {
	return Config{
		Mode:            "solve",
		Game:            "tictactoe",
		LogLevel:        "info",
		SolveDepth:      SOLVE_DEPTH,
		PlayDepth:       PLAY_DEPTH,
		ExpectiDepth:    EXPECTI_DEPTH,
		PerftMaxDepth:   PERFT_MAX_DEPTH,
		PerftTimeBudget: PERFT_TIME_BUDGET,
		Goroutines:      GO_ROUTINES,
		MaxMoves:        MAX_MOVES,
		Games:           GAMES,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if !lo.Contains(Modes, c.Mode) {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	depths := []struct {
		name  string
		value int
	}{
		{"solve_depth", c.SolveDepth},
		{"play_depth", c.PlayDepth},
		{"expecti_depth", c.ExpectiDepth},
		{"perft_max_depth", c.PerftMaxDepth},
	}
	for _, d := range depths {
		if d.value <= 0 || d.value > searcher.MaxSearchDepth {
			return fmt.Errorf("%s must be in [1, %d], got %d", d.name, searcher.MaxSearchDepth, d.value)
		}
	}

	if c.PerftTimeBudget <= 0 {
		return fmt.Errorf("perft_time_budget must be positive, got %v", c.PerftTimeBudget)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.MaxMoves <= 0 || c.Games <= 0 {
		return fmt.Errorf("max_moves and games must be positive")
	}
	return nil
}
