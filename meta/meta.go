// meta/meta.go
package meta

import (
	"time"

	"adversarial/searcher"
)

// GO_ROUTINES defines the number of games the perft suite runs at once.
const GO_ROUTINES = 4

// SOLVE_DEPTH defines the search budget for exact solves.
const SOLVE_DEPTH = searcher.SolveDepth

// PLAY_DEPTH defines the search budget of the engine in interactive play. It is
// deep enough to play 3x3 games perfectly.
const PLAY_DEPTH = 10

// EXPECTI_DEPTH defines the number of deterministic plies expectiminimax looks ahead.
const EXPECTI_DEPTH = searcher.ExpectiDepth

// PERFT_MAX_DEPTH defines the deepest perft the driver attempts.
const PERFT_MAX_DEPTH = 12

// PERFT_TIME_BUDGET defines when the perft driver stops starting new depths.
const PERFT_TIME_BUDGET = 10 * time.Second

// MAX_MOVES defines the move limit of a single game.
const MAX_MOVES = 10000

// GAMES defines the number of games in a match.
const GAMES = 10
