package engine

import (
	"fmt"
	"time"

	"adversarial/agent"
	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Unfinished is the outcome recorded when the move limit stops a game.
const Unfinished = "unfinished"

type Option[M any] func(e *Local[M])

// WithRoller sets the agent that resolves chance nodes.
func WithRoller[M any](roller agent.Agent[M]) Option[M] {
	return func(e *Local[M]) {
		e.roller = roller
	}
}

func WithMaxMoves[M any](moves int) Option[M] {
	return func(e *Local[M]) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithObserver is called after every move is played.
func WithObserver[M any](observe func(step int, move M, state game.State[M])) Option[M] {
	return func(e *Local[M]) {
		e.observe = observe
	}
}

// Local plays a game in process. Agents[0] moves for the first player and
// Agents[1] for the second.
type Local[M any] struct {
	Name   string
	State  game.State[M]
	Agents []agent.Agent[M]

	roller   agent.Agent[M]
	maxMoves int
	observe  func(step int, move M, state game.State[M])
}

func LocalEngine[M any](name string, state game.State[M], agents []agent.Agent[M], opts ...Option[M]) *Local[M] {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Local[M]{
		Name:     name,
		State:    state,
		Agents:   agents,
		maxMoves: MaxMoves,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Local[M]) mover() (agent.Agent[M], int) {
	switch e.State.ToMove() {
	case game.Chance:
		if e.roller == nil {
			panic("chance node reached without a roller")
		}
		return e.roller, 0
	case game.Maximizer:
		return e.Agents[0], 1
	default:
		return e.Agents[1], -1
	}
}

// Run plays moves on State until the game ends. The moves are not undone.
func (e *Local[M]) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{Game: e.Name, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s: starting game", e.Name)

	step := 1
	for !e.State.IsTerminal() && step <= e.maxMoves {
		current, player := e.mover()

		start := time.Now()
		move, err := current.FindMove(e.State)
		if err != nil {
			return gameMetric, moveMetrics, errors.Wrapf(err, "%s: move %d", e.Name, step)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Move:     fmt.Sprint(move),
			Duration: time.Since(start),
		})

		e.State.Push(move)
		log.Debug().Msgf("%s: move %d by %d: %v", e.Name, step, player, move)
		if e.observe != nil {
			e.observe(step, move, e.State)
		}
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if e.State.IsTerminal() {
		gameMetric.Outcome = game.ClassifyTerminal(e.State.Evaluate()).String()
	} else {
		gameMetric.Outcome = Unfinished
		log.Warn().Msgf("%s: stopped after %d moves", e.Name, e.maxMoves)
	}

	log.Info().Msgf("%s: game over after %d moves: %s", e.Name, gameMetric.TotalMoves, gameMetric.Outcome)
	return gameMetric, moveMetrics, nil
}
