// Package tictactoe is noughts and crosses on a 3x3 grid. Squares are indexed
// row-major from 0 to 8 and X moves first.
package tictactoe

import (
	"math/bits"
	"strconv"
	"strings"

	"adversarial/game"
)

const full = 0b111_111_111

var lines = [...]uint16{
	0b000_000_111, 0b000_111_000, 0b111_000_000, // rows
	0b001_001_001, 0b010_010_010, 0b100_100_100, // columns
	0b100_010_001, 0b001_010_100, // diagonals
}

// Move is the index of the square to mark.
type Move int

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

type Board struct {
	marks [2]uint16 // X, O
	moves int
}

func New() *Board {
	return &Board{}
}

func (b *Board) Turn() int {
	if b.moves&1 == 0 {
		return 1
	}
	return -1
}

// Evaluate only inspects the side that just moved; nobody else can have
// completed a line.
func (b *Board) Evaluate() int {
	if b.moves == 0 {
		return 0
	}
	last := b.marks[(b.moves+1)&1]
	for _, line := range lines {
		if last&line == line {
			return -b.Turn()
		}
	}
	return 0
}

func (b *Board) IsTerminal() bool {
	return b.moves == 9 || b.Evaluate() != 0
}

func (b *Board) GenerateMoves(buffer []Move) []Move {
	empty := ^(b.marks[0] | b.marks[1]) & full
	for empty != 0 {
		buffer = append(buffer, Move(bits.TrailingZeros16(empty)))
		empty &= empty - 1
	}
	return buffer
}

func (b *Board) Push(m Move) {
	b.marks[b.moves&1] |= 1 << m
	b.moves++
}

func (b *Board) Pop(m Move) {
	b.moves--
	b.marks[b.moves&1] &^= 1 << m
}

func (b *Board) ActionSpaceSize() int {
	return 9
}

func (b *Board) ToMove() game.ToMove {
	return game.ToMoveFromTurn(b.Turn())
}

func (b *Board) HashKey() uint64 {
	return uint64(b.marks[0]) | uint64(b.marks[1])<<9
}

func (b *Board) Snapshot() Board {
	return *b
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sq := uint16(1) << (row*3 + col)
			switch {
			case b.marks[0]&sq != 0:
				sb.WriteString("X ")
			case b.marks[1]&sq != 0:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
