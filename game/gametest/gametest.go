// Package gametest holds property checks shared by the game implementations.
package gametest

import (
	"fmt"
	"testing"

	"adversarial/game"
	"adversarial/searcher"

	"github.com/stretchr/testify/require"
)

// RoundTrip plays every line up to depth and checks that each Push followed by
// the matching Pop restores the exact position.
func RoundTrip[M any, K comparable](t testing.TB, state game.Snapshotter[M, K], depth int) {
	t.Helper()
	roundTrip(t, state, depth)
}

func roundTrip[M any, K comparable](t testing.TB, state game.Snapshotter[M, K], depth int) {
	if depth == 0 || state.IsTerminal() {
		return
	}
	moves := state.GenerateMoves(make([]M, 0, state.ActionSpaceSize()))
	for _, m := range moves {
		before := state.Snapshot()
		state.Push(m)
		roundTrip(t, state, depth-1)
		state.Pop(m)
		require.Equal(t, before, state.Snapshot(), "Push then Pop of %v should restore the position", m)
	}
}

type keyedSnapshotter[M any, K comparable] interface {
	game.Snapshotter[M, K]
	HashKey() uint64
}

// StableKeys checks that equal positions reached by different lines share a
// hash key, and that Pop restores the key.
func StableKeys[M any, K comparable](t testing.TB, state keyedSnapshotter[M, K], depth int) {
	t.Helper()
	seen := make(map[K]uint64)
	stableKeys(t, state, depth, seen)
}

func stableKeys[M any, K comparable](t testing.TB, state keyedSnapshotter[M, K], depth int, seen map[K]uint64) {
	snapshot, key := state.Snapshot(), state.HashKey()
	if known, ok := seen[snapshot]; ok {
		require.Equal(t, known, key, "Equal positions should share a hash key")
	}
	seen[snapshot] = key
	if depth == 0 || state.IsTerminal() {
		return
	}
	moves := state.GenerateMoves(nil)
	for _, m := range moves {
		state.Push(m)
		stableKeys(t, state, depth-1, seen)
		state.Pop(m)
		require.Equal(t, key, state.HashKey(), "Pop of %v should restore the hash key", m)
	}
}

// Moves lists the root moves by their string form.
func Moves[M any](state game.State[M]) []string {
	moves := state.GenerateMoves(nil)
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = fmt.Sprint(m)
	}
	return names
}

// UniqueMoves checks that the root move list has no duplicates.
func UniqueMoves[M any](t testing.TB, state game.State[M]) {
	t.Helper()
	names := Moves(state)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		require.False(t, seen[name], "Move %s should be generated once", name)
		seen[name] = true
	}
}

// PerftMatchesMoveCount checks that a depth-1 perft counts exactly the root
// moves.
func PerftMatchesMoveCount[M any](t testing.TB, state game.State[M]) {
	t.Helper()
	moves := state.GenerateMoves(nil)
	require.Equal(t, uint64(len(moves)), searcher.Perft(state, 1), "Depth one should count the root moves")
}
