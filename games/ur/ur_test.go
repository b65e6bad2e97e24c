package ur

import (
	"testing"

	"adversarial/game"
	"adversarial/game/gametest"
	"adversarial/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestOpening(t *testing.T) {
	b := New()
	require.Equal(t, game.Chance, b.ToMove(), "Every turn starts with the dice")
	require.Equal(t, []string{"roll 0", "roll 1", "roll 2", "roll 3", "roll 4"}, gametest.Moves[Move](b))

	t.Run("a zero roll forces a pass", func(t *testing.T) {
		b.Push(Move{Kind: Roll, Roll: 0})
		defer b.Pop(Move{Kind: Roll, Roll: 0})
		require.Equal(t, game.Maximizer, b.ToMove())
		require.Equal(t, []Move{{Kind: Pass, Roll: 0}}, b.GenerateMoves(nil))
	})

	t.Run("any other roll enters a piece", func(t *testing.T) {
		for r := int8(1); r <= 4; r++ {
			b.Push(Move{Kind: Roll, Roll: r})
			require.Equal(t, []Move{{Kind: Advance, From: Pot, To: r - 1, Roll: r}}, b.GenerateMoves(nil))
			b.Pop(Move{Kind: Roll, Roll: r})
		}
	})
}

func TestDiceOdds(t *testing.T) {
	b := New()
	outcomes := b.GenerateMovesWithProbabilities(nil)
	require.Len(t, outcomes, 5)

	var total float64
	for i, o := range outcomes {
		require.Equal(t, int8(i), o.Move.Roll)
		total += o.Probability
	}
	require.InDelta(t, 1.0, total, 1e-12, "Odds should sum to one")
	require.Equal(t, 6.0/16, outcomes[2].Probability)

	b.Push(outcomes[2].Move)
	require.Panics(t, func() {
		b.GenerateMovesWithProbabilities(nil)
	}, "Should refuse odds once the dice are thrown")
}

func TestRules(t *testing.T) {
	t.Run("landing on a rosette keeps the turn", func(t *testing.T) {
		b := New()
		b.Push(Move{Kind: Roll, Roll: 4})
		enter := Move{Kind: Advance, From: Pot, To: 3, Roll: 4}
		b.Push(enter)
		require.Equal(t, 1, b.Turn(), "X moves again after reaching square 3")
		require.Equal(t, game.Chance, b.ToMove())
		b.Pop(enter)
		require.Equal(t, int8(4), b.roll, "Pop should restore the roll")
		require.Equal(t, Pieces, int(b.pots[0]))
	})

	t.Run("capture sends the piece home", func(t *testing.T) {
		b := &Board{slots: bit(5, 0) | bit(4, 1), pots: [2]int8{6, 6}, moves: 1, roll: 1}
		before := b.Snapshot()
		capture := Move{Kind: Advance, From: 4, To: 5, Capture: true, Roll: 1}
		require.Contains(t, b.GenerateMoves(nil), capture)

		b.Push(capture)
		require.Equal(t, int8(7), b.pots[0], "The captured piece returns to the pot")
		require.False(t, b.occupied(5, 0))
		require.True(t, b.occupied(5, 1))
		b.Pop(capture)
		require.Equal(t, before, b.Snapshot())
	})

	t.Run("private squares never capture", func(t *testing.T) {
		b := &Board{slots: bit(1, 0) | bit(0, 1), pots: [2]int8{6, 6}, moves: 1, roll: 1}
		require.Contains(t, b.GenerateMoves(nil), Move{Kind: Advance, From: 0, To: 1, Roll: 1}, "Square 1 differs for each player")
	})

	t.Run("the middle rosette is safe", func(t *testing.T) {
		b := &Board{slots: bit(7, 0) | bit(6, 1), pots: [2]int8{6, 6}, moves: 1, roll: 1}
		for _, m := range b.GenerateMoves(nil) {
			require.NotEqual(t, int8(7), m.To, "O cannot land on a guarded rosette")
		}
	})

	t.Run("blocked pieces pass", func(t *testing.T) {
		b := &Board{slots: bit(5, 0) | bit(6, 0) | bit(7, 1), pots: [2]int8{0, 6}, roll: 1}
		require.Equal(t, []Move{{Kind: Pass, Roll: 1}}, b.GenerateMoves(nil))
	})

	t.Run("the pass check ignores earlier buffer contents", func(t *testing.T) {
		b := &Board{slots: bit(5, 0) | bit(6, 0) | bit(7, 1), pots: [2]int8{0, 6}, roll: 1}
		buffer := []Move{{Kind: Roll, Roll: 3}}
		require.Equal(t, []Move{{Kind: Roll, Roll: 3}, {Kind: Pass, Roll: 1}}, b.GenerateMoves(buffer))
	})

	t.Run("bearing off", func(t *testing.T) {
		b := &Board{slots: bit(12, 0), pots: [2]int8{0, 7}, roll: 3}
		off := Move{Kind: Advance, From: 12, To: OffBoard, Roll: 3}
		require.Equal(t, []Move{off}, b.GenerateMoves(nil))
		b.Push(off)
		require.Equal(t, 1, b.Evaluate(), "X has borne off every piece")
		require.True(t, b.IsTerminal())
		require.Equal(t, MateScore, b.Heuristic())
	})
}

func TestPerft(t *testing.T) {
	expected := []uint64{1, 5, 5, 25, 28}
	for depth, count := range expected {
		require.Equal(t, count, searcher.Perft(New(), depth), "depth %d", depth)
	}
	for depth := 1; depth <= 8; depth++ {
		require.Equal(t, searcher.Perft(New(), depth), searcher.PerftCached(New(), depth), "depth %d", depth)
	}
}

func TestRoundTrip(t *testing.T) {
	gametest.RoundTrip(t, New(), 8)
	gametest.PerftMatchesMoveCount[Move](t, New())
	gametest.StableKeys(t, New(), 8)
}

func TestHeuristic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		b := New()
		for !b.IsTerminal() {
			h := b.Heuristic()
			require.Less(t, h, MateScore/10, "Unfinished games score far below mate")
			require.Greater(t, h, -MateScore/10)
			moves := b.GenerateMoves(nil)
			b.Push(moves[rng.Intn(len(moves))])
		}
		require.Equal(t, MateScore*b.Evaluate(), b.Heuristic())
	}

	t.Run("progress is rewarded", func(t *testing.T) {
		behind := &Board{slots: bit(2, 0), pots: [2]int8{6, 7}, roll: -1}
		ahead := &Board{slots: bit(9, 0), pots: [2]int8{6, 7}, roll: -1}
		require.Greater(t, ahead.Heuristic(), behind.Heuristic())
		require.Greater(t, behind.Heuristic(), New().Heuristic())
	})
}

func TestExpectiminimax(t *testing.T) {
	b := New()
	before := b.Snapshot()
	for depth := 1; depth <= 3; depth++ {
		value := searcher.Expectiminimax(b, depth)
		require.Less(t, value, MateScore)
		require.Greater(t, value, -MateScore)
		require.Equal(t, before, b.Snapshot(), "Search should restore the board")
	}

	b.Push(Move{Kind: Roll, Roll: 2})
	require.Equal(t, Move{Kind: Advance, From: Pot, To: 1, Roll: 2}, searcher.ExpectiBestMove(b, searcher.WithDepth(2)))
}

func TestExpectiPrincipalVariation(t *testing.T) {
	b := New()
	line := searcher.ExpectiPrincipalVariation(b,
		searcher.WithDepth(1),
		searcher.WithMaxPlies(40),
		searcher.WithRand(rand.New(rand.NewSource(1))),
	)
	require.Len(t, line, 40, "A game of Ur takes longer than forty plies")
	require.Equal(t, Roll, line[0].Kind)
	require.Equal(t, New().Snapshot(), b.Snapshot())
}

func TestString(t *testing.T) {
	require.Equal(t, "* . . .     * . \n. . . * . . . . \n* . . .     * . \n\nMove 0, roll ? | pots: 7 X, 7 O\n", New().String())
}
