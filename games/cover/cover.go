// Package cover is tic-tac-toe with nested pieces. Each player owns three big,
// three medium and three small pieces; a piece may be placed on an empty square
// or over a strictly smaller piece of either colour. The top-most piece owns
// the square, and three owned squares in a line win.
package cover

import (
	"fmt"
	"math/bits"
	"strings"

	"adversarial/game"
)

const (
	full      = 0b111_111_111
	perSize   = 3
	numLayers = 6
)

var lines = [...]uint16{
	0b000_000_111, 0b000_111_000, 0b111_000_000,
	0b001_001_001, 0b010_010_010, 0b100_100_100,
	0b100_010_001, 0b001_010_100,
}

type Size int8

const (
	Big Size = iota
	Medium
	Small
)

var sizeRunes = [...][2]byte{Big: {'B', 'b'}, Medium: {'M', 'm'}, Small: {'S', 's'}}

type Move struct {
	Square int8
	Size   Size
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", sizeRunes[m.Size][0], m.Square)
}

// Board keeps one bitmask per (size, side): index 2*size + side, X = 0.
type Board struct {
	layers [numLayers]uint16
	moves  int
}

func New() *Board {
	return &Board{}
}

func (b *Board) layer(size Size) uint16 {
	return b.layers[2*size] | b.layers[2*size+1]
}

// visible returns the squares whose top-most piece belongs to side.
func (b *Board) visible(side int) uint16 {
	big, medium := b.layer(Big), b.layer(Medium)
	return b.layers[side] |
		b.layers[2+side]&^big |
		b.layers[4+side]&^big&^medium
}

// options returns where the side to move may place a piece of size.
func (b *Board) options(size Size) uint16 {
	side := b.moves & 1
	if bits.OnesCount16(b.layers[2*int(size)+side]) >= perSize {
		return 0
	}
	covered := uint16(0)
	for s := Big; s <= size; s++ {
		covered |= b.layer(s)
	}
	return ^covered & full
}

func (b *Board) Turn() int {
	if b.moves&1 == 0 {
		return 1
	}
	return -1
}

func (b *Board) Evaluate() int {
	if b.moves == 0 {
		return 0
	}
	owned := b.visible((b.moves + 1) & 1)
	for _, line := range lines {
		if owned&line == line {
			return -b.Turn()
		}
	}
	return 0
}

// IsTerminal also ends the game when the side to move has nothing to place.
func (b *Board) IsTerminal() bool {
	if b.Evaluate() != 0 {
		return true
	}
	for s := Big; s <= Small; s++ {
		if b.options(s) != 0 {
			return false
		}
	}
	return true
}

func (b *Board) GenerateMoves(buffer []Move) []Move {
	for s := Big; s <= Small; s++ {
		options := b.options(s)
		for options != 0 {
			buffer = append(buffer, Move{Square: int8(bits.TrailingZeros16(options)), Size: s})
			options &= options - 1
		}
	}
	return buffer
}

func (b *Board) Push(m Move) {
	b.layers[2*int(m.Size)+b.moves&1] |= 1 << m.Square
	b.moves++
}

func (b *Board) Pop(m Move) {
	b.moves--
	b.layers[2*int(m.Size)+b.moves&1] &^= 1 << m.Square
}

func (b *Board) ActionSpaceSize() int {
	return 9 * 3
}

func (b *Board) ToMove() game.ToMove {
	return game.ToMoveFromTurn(b.Turn())
}

func (b *Board) HashKey() uint64 {
	var key uint64
	for i, layer := range b.layers {
		key |= uint64(layer) << (9 * i)
	}
	return key
}

func (b *Board) Snapshot() Board {
	return *b
}

// String prints the top-most piece of every square, upper case for X.
func (b *Board) String() string {
	var sb strings.Builder
	for sq := 0; sq < 9; sq++ {
		sb.WriteByte(b.charAt(sq))
		sb.WriteByte(' ')
		if sq%3 == 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) charAt(sq int) byte {
	mask := uint16(1) << sq
	for s := Big; s <= Small; s++ {
		for side := 0; side < 2; side++ {
			if b.layers[2*int(s)+side]&mask != 0 {
				return sizeRunes[s][side]
			}
		}
	}
	return '.'
}
