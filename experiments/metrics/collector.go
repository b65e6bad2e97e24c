package metrics

import (
	"time"
)

// PerftMetric is one depth of a perft run.
type PerftMetric struct {
	Game     string
	Depth    int
	Nodes    uint64
	Duration time.Duration
	Memoized bool
}

func (m PerftMetric) NodesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Nodes) / m.Duration.Seconds()
}

// SolveMetric is one root move of a solve report.
type SolveMetric struct {
	Game     string
	Move     string
	Score    int // signed plies until the result, 0 for a draw
	Duration time.Duration
}

// SweepMetric is one depth of an expectiminimax sweep.
type SweepMetric struct {
	Game     string
	Depth    int
	Value    int
	Duration time.Duration
}

type MoveMetric struct {
	Step     int
	Player   int // turn of the mover, 0 for chance
	Move     string
	Duration time.Duration
}

type GameMetric struct {
	Game       string
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector records perft depths as they complete. A collector belongs to one
// run and is not safe for concurrent use.
type Collector interface {
	Start(game string, memoized bool)
	AddDepth(depth int, nodes uint64)
	Complete() []PerftMetric
}

type collector struct {
	game     string
	memoized bool
	last     time.Time
	depths   []PerftMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(game string, memoized bool) {
	c.game = game
	c.memoized = memoized
	c.last = time.Now()
	c.depths = nil
}

func (c *collector) AddDepth(depth int, nodes uint64) {
	now := time.Now()
	c.depths = append(c.depths, PerftMetric{
		Game:     c.game,
		Depth:    depth,
		Nodes:    nodes,
		Duration: now.Sub(c.last),
		Memoized: c.memoized,
	})
	c.last = now
}

func (c *collector) Complete() []PerftMetric {
	return c.depths
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(game string, memoized bool)  {}
func (c *dummyCollector) AddDepth(depth int, nodes uint64) {}
func (c *dummyCollector) Complete() []PerftMetric          { return nil }
