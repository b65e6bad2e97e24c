package searcher

import (
	"testing"

	"adversarial/games/tictactoe"

	"github.com/stretchr/testify/require"
)

func ticTacToe(moves ...tictactoe.Move) *tictactoe.Board {
	b := tictactoe.New()
	for _, m := range moves {
		b.Push(m)
	}
	return b
}

func TestNegamax(t *testing.T) {
	t.Run("a faster win scores higher", func(t *testing.T) {
		root := branch(branch(leaf(1)), leaf(1))
		state := newTreeState(root)

		require.Equal(t, 3, Negamax(state, 4, -Inf, Inf), "The immediate win keeps three plies of budget")
		require.Equal(t, 1, Solve(state, WithDepth(4)))
		require.Equal(t, 1, BestMove(state, WithDepth(4)), "Should prefer the immediate win")
	})

	t.Run("a slower loss scores higher", func(t *testing.T) {
		root := branch(leaf(-1), branch(leaf(-1)))
		state := newTreeState(root)

		require.Equal(t, -2, Negamax(state, 4, -Inf, Inf))
		require.Equal(t, -2, Solve(state, WithDepth(4)), "Second player wins two plies later")
		require.Equal(t, 1, BestMove(state, WithDepth(4)), "Should delay the loss")
	})

	t.Run("leaves are scaled by the remaining depth", func(t *testing.T) {
		require.Equal(t, 0, Negamax(newTreeState(branch(leaf(1))), 0, -Inf, Inf), "No budget left")
		require.Equal(t, -5, Negamax(newTreeState(leaf(-1)), 5, -Inf, Inf))
	})

	t.Run("pruning matches plain minimax", func(t *testing.T) {
		positions := []*tictactoe.Board{
			ticTacToe(),
			ticTacToe(4),
			ticTacToe(0, 4),
			ticTacToe(4, 1),
			ticTacToe(1, 4, 7),
		}
		for _, b := range positions {
			for _, depth := range []int{2, 5, 10} {
				require.Equal(t, minimax(b, depth), Negamax(b, depth, -Inf, Inf), "position\n%s depth %d", b, depth)
			}
		}
	})

	t.Run("the node is restored", func(t *testing.T) {
		b := ticTacToe(4)
		before := b.Snapshot()
		Negamax(b, SolveDepth, -Inf, Inf)
		require.Equal(t, before, b.Snapshot())

		state := newTreeState(complete(3, 4))
		Negamax(state, 10, -Inf, Inf)
		require.Len(t, state.path, 1, "Every push should be popped")
	})
}

func TestSolve(t *testing.T) {
	t.Run("empty board is a draw", func(t *testing.T) {
		require.Equal(t, 0, Solve(ticTacToe()))
	})

	t.Run("centre then edge wins for X", func(t *testing.T) {
		require.Equal(t, 5, Solve(ticTacToe(4, 1)))
	})

	t.Run("corner centre corner wins for O", func(t *testing.T) {
		require.Equal(t, -5, Solve(ticTacToe(1, 4, 7)))
	})

	t.Run("budgets are clamped", func(t *testing.T) {
		require.Equal(t, MaxSearchDepth, newOptions([]Option{WithDepth(1 << 20)}).depth)
		require.Equal(t, 0, newOptions([]Option{WithDepth(-3)}).depth, "Non-positive budgets are ignored")
		require.Equal(t, 1, Solve(newTreeState(branch(leaf(1))), WithDepth(1<<20)))
	})
}

func TestPliesToResolution(t *testing.T) {
	require.Equal(t, 3, PliesToResolution(97, 100))
	require.Equal(t, -3, PliesToResolution(-97, 100))
	require.Equal(t, 0, PliesToResolution(0, 100))
}

func TestDescribeSolve(t *testing.T) {
	require.Equal(t, "draw", DescribeSolve(0))
	require.Equal(t, "first player wins in 5", DescribeSolve(5))
	require.Equal(t, "second player wins in 5", DescribeSolve(-5))
}
