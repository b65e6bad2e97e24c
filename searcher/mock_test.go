package searcher

import "adversarial/game"

// tree is a hand-built game tree. Nodes may be shared to model transpositions.
type tree struct {
	eval      int
	heuristic int
	key       uint64
	odds      []float64 // set on chance nodes, one per child
	children  []*tree
}

func leaf(eval int) *tree {
	return &tree{eval: eval}
}

func scored(heuristic int) *tree {
	return &tree{heuristic: heuristic}
}

func branch(children ...*tree) *tree {
	return &tree{children: children}
}

func roll(odds []float64, children ...*tree) *tree {
	return &tree{odds: odds, children: children}
}

// treeState walks a tree. Turn flips on every deterministic ply and stays put
// across chance nodes.
type treeState struct {
	path   []*tree
	first  int
	pushes int
}

func newTreeState(root *tree) *treeState {
	return &treeState{path: []*tree{root}, first: 1}
}

func (s *treeState) node() *tree {
	return s.path[len(s.path)-1]
}

func (s *treeState) Turn() int {
	turn := s.first
	for _, n := range s.path[:len(s.path)-1] {
		if n.odds == nil {
			turn = -turn
		}
	}
	return turn
}

func (s *treeState) Evaluate() int {
	return s.node().eval
}

func (s *treeState) IsTerminal() bool {
	return len(s.node().children) == 0
}

func (s *treeState) GenerateMoves(buffer []int) []int {
	for i := range s.node().children {
		buffer = append(buffer, i)
	}
	return buffer
}

func (s *treeState) Push(move int) {
	s.path = append(s.path, s.node().children[move])
	s.pushes++
}

func (s *treeState) Pop(int) {
	s.path = s.path[:len(s.path)-1]
}

func (s *treeState) ActionSpaceSize() int {
	return 4
}

func (s *treeState) ToMove() game.ToMove {
	if s.node().odds != nil {
		return game.Chance
	}
	return game.ToMoveFromTurn(s.Turn())
}

func (s *treeState) HashKey() uint64 {
	return s.node().key
}

func (s *treeState) Snapshot() *tree {
	return s.node()
}

func (s *treeState) GenerateMovesWithProbabilities(buffer []game.Weighted[int]) []game.Weighted[int] {
	n := s.node()
	if n.odds == nil {
		panic("not a chance node")
	}
	for i, p := range n.odds {
		buffer = append(buffer, game.Weighted[int]{Move: i, Probability: p})
	}
	return buffer
}

func (s *treeState) Heuristic() int {
	return s.node().heuristic
}

// complete builds a tree where every inner node has width children.
func complete(width, depth int) *tree {
	if depth == 0 {
		return leaf(0)
	}
	children := make([]*tree, width)
	for i := range children {
		children[i] = complete(width, depth-1)
	}
	return branch(children...)
}

// minimax is an unpruned reference search.
func minimax[M any](node game.State[M], depth int) int {
	if depth <= 0 || node.IsTerminal() {
		return leafValue(node, depth)
	}
	best := -Inf
	for _, m := range node.GenerateMoves(nil) {
		node.Push(m)
		best = max(best, -minimax(node, depth-1))
		node.Pop(m)
	}
	return best
}
