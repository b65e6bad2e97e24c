// Package connect4 is the 7x6 column-drop game: four in a row wins.
//
// Stones are kept in one bitboard per player. Column c uses bits 7c to 7c+5,
// bottom up; bit 7c+6 stays empty so shifted lines never wrap between columns.
package connect4

import (
	"strconv"
	"strings"

	"adversarial/game"
)

const (
	Width  = 7
	Height = 6
	stride = Height + 1
)

// Move is the column to drop a stone into.
type Move int

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

type Board struct {
	stones  [2]uint64 // X, O
	heights [Width]int8
	moves   int
}

func New() *Board {
	return &Board{}
}

func connected(stones uint64) bool {
	for _, shift := range [...]uint{1, stride, stride - 1, stride + 1} {
		pairs := stones & (stones >> shift)
		if pairs&(pairs>>(2*shift)) != 0 {
			return true
		}
	}
	return false
}

func (b *Board) Turn() int {
	if b.moves&1 == 0 {
		return 1
	}
	return -1
}

func (b *Board) Evaluate() int {
	if b.moves > 0 && connected(b.stones[(b.moves+1)&1]) {
		return -b.Turn()
	}
	return 0
}

func (b *Board) IsTerminal() bool {
	return b.moves == Width*Height || b.Evaluate() != 0
}

func (b *Board) GenerateMoves(buffer []Move) []Move {
	for col := 0; col < Width; col++ {
		if b.heights[col] < Height {
			buffer = append(buffer, Move(col))
		}
	}
	return buffer
}

func (b *Board) bit(col Move) uint64 {
	return 1 << (int(col)*stride + int(b.heights[col]))
}

func (b *Board) Push(m Move) {
	b.stones[b.moves&1] |= b.bit(m)
	b.heights[m]++
	b.moves++
}

func (b *Board) Pop(m Move) {
	b.moves--
	b.heights[m]--
	b.stones[b.moves&1] &^= b.bit(m)
}

func (b *Board) ActionSpaceSize() int {
	return Width
}

func (b *Board) ToMove() game.ToMove {
	return game.ToMoveFromTurn(b.Turn())
}

// HashKey adds X's stones to the occupancy mask, which is unique per position.
func (b *Board) HashKey() uint64 {
	return (b.stones[0] | b.stones[1]) + b.stones[0]
}

func (b *Board) Snapshot() Board {
	return *b
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			mask := uint64(1) << (col*stride + row)
			switch {
			case b.stones[0]&mask != 0:
				sb.WriteString("X ")
			case b.stones[1]&mask != 0:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	for col := 0; col < Width; col++ {
		sb.WriteString(strconv.Itoa(col))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")
	return sb.String()
}
