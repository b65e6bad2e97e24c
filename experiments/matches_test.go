package experiments

import (
	"testing"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/games/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestRunMatches(t *testing.T) {
	newEngine := func(i int) engine.Engine {
		agents := []agent.Agent[tictactoe.Move]{
			agent.NewSolver[tictactoe.Move](),
			agent.NewRandom[tictactoe.Move](uint64(i)),
		}
		return engine.LocalEngine[tictactoe.Move]("tictactoe", tictactoe.New(), agents)
	}

	games, moves, err := RunMatches("solver_vs_random", 3, newEngine)
	require.NoError(t, err)
	require.Len(t, games, 3)
	require.Equal(t, 3, games[2].ID)
	for _, g := range games {
		require.NotEqual(t, "second player wins", g.Outcome, "The solver moves first and never loses")
	}

	total := 0
	for _, g := range games {
		total += g.TotalMoves
	}
	require.Len(t, moves, total, "One move record per move")
	require.Equal(t, 1, moves[0].Game)
}
