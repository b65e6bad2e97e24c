package engine

import (
	"adversarial/experiments/metrics"
	"adversarial/meta"
)

const MaxMoves = meta.MAX_MOVES

type Engine interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
