package searcher

import "adversarial/game"

// Perft counts the leaves of the game tree to depth. Terminal nodes count as
// one leaf.
func Perft[M any](node game.State[M], depth int) uint64 {
	if depth <= 0 || node.IsTerminal() {
		return 1
	}

	moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
	if depth == 1 {
		return uint64(len(moves))
	}

	var count uint64
	for _, m := range moves {
		count += descend(node, m, func() uint64 {
			return Perft(node, depth-1)
		})
	}
	return count
}

type perftKey[K comparable] struct {
	position K
	depth    int
}

// PerftCached is Perft with subtree counts memoized by position, so positions
// reached through several move orders are only expanded once. It must agree
// with Perft on every input.
func PerftCached[M any, K comparable](node game.Snapshotter[M, K], depth int) uint64 {
	seen := make(map[perftKey[K]]uint64)
	return perftCached(node, depth, seen)
}

func perftCached[M any, K comparable](node game.Snapshotter[M, K], depth int, seen map[perftKey[K]]uint64) uint64 {
	if depth <= 0 || node.IsTerminal() {
		return 1
	}

	var key perftKey[K]
	if depth > perftCacheDepth {
		key = perftKey[K]{position: node.Snapshot(), depth: depth}
		if count, ok := seen[key]; ok {
			return count
		}
	}

	moves := node.GenerateMoves(make([]M, 0, node.ActionSpaceSize()))
	if depth == 1 {
		return uint64(len(moves))
	}

	var count uint64
	for _, m := range moves {
		count += descend(node, m, func() uint64 {
			return perftCached(node, depth-1, seen)
		})
	}

	if depth > perftCacheDepth {
		seen[key] = count
	}
	return count
}
