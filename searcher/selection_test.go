package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluateMoves(t *testing.T) {
	root := branch(leaf(1), leaf(0))
	require.Equal(t, []Scored[int]{{Move: 0, Value: SolveDepth}, {Move: 1, Value: 0}}, EvaluateMoves(newTreeState(root)))
	require.Equal(t, []Scored[int]{{Move: 0, Value: 7}, {Move: 1, Value: 0}}, EvaluateMoves(newTreeState(root), WithDepth(7)))
}

func TestBestMove(t *testing.T) {
	t.Run("ties go to the first move", func(t *testing.T) {
		require.Equal(t, 0, BestMove(newTreeState(branch(leaf(1), leaf(1)))))
		require.Equal(t, 1, BestMove(newTreeState(branch(leaf(0), leaf(1), leaf(1)))))
	})

	t.Run("second player picks its own win", func(t *testing.T) {
		state := newTreeState(branch(leaf(1), leaf(-1)))
		state.first = -1
		require.Equal(t, 1, BestMove(state))
	})

	t.Run("panics without legal moves", func(t *testing.T) {
		require.Panics(t, func() {
			BestMove(newTreeState(leaf(0)))
		}, "A terminal node has nothing to choose from")
	})

	t.Run("3x3 grid takes the winning square", func(t *testing.T) {
		b := ticTacToe(0, 3, 1, 4)
		require.EqualValues(t, 2, BestMove(b), "X completes the top row")
	})
}

func TestPrincipalVariation(t *testing.T) {
	t.Run("forced win", func(t *testing.T) {
		b := ticTacToe(4, 1)
		before := b.Snapshot()
		line := PrincipalVariation(b)
		require.Len(t, line, 5, "X needs five more plies")
		require.Equal(t, before, b.Snapshot(), "The board should be restored")

		for _, m := range line {
			b.Push(m)
		}
		require.Equal(t, 1, b.Evaluate())
	})

	t.Run("draw fills the board", func(t *testing.T) {
		b := ticTacToe()
		line := PrincipalVariation(b)
		require.Len(t, line, 9)
		for _, m := range line {
			b.Push(m)
		}
		require.True(t, b.IsTerminal())
		require.Equal(t, 0, b.Evaluate())
	})

	t.Run("terminal root gives an empty line", func(t *testing.T) {
		require.Empty(t, PrincipalVariation(newTreeState(leaf(1))))
	})
}

func TestExpectiBestMove(t *testing.T) {
	t.Run("maximizer", func(t *testing.T) {
		require.Equal(t, 1, ExpectiBestMove(newTreeState(branch(scored(5), scored(9), scored(9)))))
	})

	t.Run("minimizer", func(t *testing.T) {
		state := newTreeState(branch(scored(5), scored(-3)))
		state.first = -1
		require.Equal(t, 1, ExpectiBestMove(state), "Lower is better for the second player")
	})

	t.Run("chance root falls back to a random pick", func(t *testing.T) {
		root := roll([]float64{0.25, 0.25, 0.5}, scored(1), scored(2), scored(3))
		pick := func(seed uint64) int {
			return ExpectiBestMove(newTreeState(root), WithRand(rand.New(rand.NewSource(seed))))
		}
		require.Equal(t, pick(42), pick(42), "The same seed picks the same outcome")
		require.Contains(t, []int{0, 1, 2}, pick(7))
	})

	t.Run("the node is restored", func(t *testing.T) {
		state := newTreeState(branch(roll([]float64{0.5, 0.5}, scored(1), scored(2)), scored(3)))
		ExpectiBestMove(state, WithDepth(4))
		require.Len(t, state.path, 1)
	})
}

func TestExpectiPrincipalVariation(t *testing.T) {
	root := branch(roll([]float64{0.5, 0.5}, scored(10), scored(30)), scored(15))
	rng := WithRand(rand.New(rand.NewSource(1)))

	state := newTreeState(root)
	line := ExpectiPrincipalVariation(state, rng)
	require.Len(t, line, 2, "A move, a roll, then the game ends")
	require.Equal(t, 0, line[0], "The expected 20 beats the certain 15")
	require.Len(t, state.path, 1)

	require.Len(t, ExpectiPrincipalVariation(newTreeState(root), rng, WithMaxPlies(1)), 1)
}
