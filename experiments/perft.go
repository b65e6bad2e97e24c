package experiments

import (
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/meta"
	"adversarial/searcher"

	"github.com/rs/zerolog/log"
)

type perftConfig struct {
	budget    time.Duration
	maxDepth  int
	plain     bool
	collector metrics.Collector
}

type PerftOption func(c *perftConfig)

// WithTimeBudget stops the driver once a depth finishes past the budget.
func WithTimeBudget(budget time.Duration) PerftOption {
	return func(c *perftConfig) {
		if budget > 0 {
			c.budget = budget
		}
	}
}

func WithMaxDepth(depth int) PerftOption {
	return func(c *perftConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithPlain counts without memoization.
func WithPlain() PerftOption {
	return func(c *perftConfig) {
		c.plain = true
	}
}

func WithCollector(collector metrics.Collector) PerftOption {
	return func(c *perftConfig) {
		if collector != nil {
			c.collector = collector
		}
	}
}

func newPerftConfig(opts []PerftOption) *perftConfig {
	c := &perftConfig{
		budget:    meta.PERFT_TIME_BUDGET,
		maxDepth:  meta.PERFT_MAX_DEPTH,
		collector: metrics.NewCollector(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunPerft counts the tree under state at depths 1, 2, ... until the time
// budget or the max depth is reached. The budget is only checked between
// depths.
func RunPerft[M any, K comparable](name string, state game.Snapshotter[M, K], opts ...PerftOption) []metrics.PerftMetric {
	c := newPerftConfig(opts)
	c.collector.Start(name, !c.plain)

	start := time.Now()
	for depth := 1; depth <= c.maxDepth; depth++ {
		depthStart := time.Now()
		var nodes uint64
		if c.plain {
			nodes = searcher.Perft(state, depth)
		} else {
			nodes = searcher.PerftCached(state, depth)
		}
		elapsed := time.Since(depthStart)
		c.collector.AddDepth(depth, nodes)

		rate := metrics.PerftMetric{Nodes: nodes, Duration: elapsed}.NodesPerSecond()
		log.Info().Msgf("%s: depth %d: %d nodes in %v (%.0f nodes/s)", name, depth, nodes, elapsed, rate)

		if time.Since(start) >= c.budget {
			log.Info().Msgf("%s: time budget of %v spent", name, c.budget)
			break
		}
	}
	return c.collector.Complete()
}
