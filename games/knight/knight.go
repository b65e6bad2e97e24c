// Package knight is a two player knight's tour on an 8x8 board. Players take
// turns moving a single shared knight to a square it has never visited. The
// player who cannot move loses.
package knight

import (
	"strconv"
	"strings"
	"sync"

	"adversarial/game"
	"adversarial/utils"
)

const (
	Squares = 64
	// Start is the first square of the fifth rank on the a-file.
	Start = 32
)

var offsets = [...]int8{-17, -15, -10, -6, 6, 10, 15, 17}

var (
	squareKeysOnce sync.Once
	squareKeys     [Squares]uint64
)

func initSquareKeys() {
	squareKeysOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		for sq := range squareKeys {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			squareKeys[sq] = z ^ (z >> 31)
		}
	})
}

// Move records the square the knight left so Pop can put it back.
type Move struct {
	From, To int8
}

func (m Move) String() string {
	return strconv.Itoa(int(m.To))
}

type Board struct {
	square  int8
	moves   int
	visited uint64
}

func New() *Board {
	return &Board{square: Start, visited: 1 << Start}
}

func (b *Board) Turn() int {
	if b.moves&1 == 0 {
		return 1
	}
	return -1
}

func (b *Board) GenerateMoves(buffer []Move) []Move {
	col := int(b.square % 8)
	for _, offset := range offsets {
		to := b.square + offset
		if to < 0 || to >= Squares || b.visited&(1<<to) != 0 {
			continue
		}
		if utils.Abs(int(to%8)-col) > 2 {
			continue
		}
		buffer = append(buffer, Move{From: b.square, To: to})
	}
	return buffer
}

// Evaluate reports a loss for the player to move when the knight is stuck.
func (b *Board) Evaluate() int {
	var buffer [len(offsets)]Move
	if len(b.GenerateMoves(buffer[:0])) == 0 {
		return -b.Turn()
	}
	return 0
}

func (b *Board) IsTerminal() bool {
	return b.Evaluate() != 0
}

func (b *Board) Push(m Move) {
	b.square = m.To
	b.visited |= 1 << m.To
	b.moves++
}

func (b *Board) Pop(m Move) {
	b.moves--
	b.visited &^= 1 << m.To
	b.square = m.From
}

func (b *Board) ActionSpaceSize() int {
	return len(offsets)
}

func (b *Board) ToMove() game.ToMove {
	return game.ToMoveFromTurn(b.Turn())
}

func (b *Board) HashKey() uint64 {
	initSquareKeys()
	return b.visited ^ squareKeys[b.square]
}

func (b *Board) Snapshot() Board {
	return *b
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			sq := int8(row*8 + col)
			switch {
			case sq == b.square:
				sb.WriteString("N ")
			case b.visited&(1<<sq) != 0:
				sb.WriteString("* ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
