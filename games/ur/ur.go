// Package ur is the Royal Game of Ur for two players with seven pieces each.
//
// Each player's route has squares 0 to 13. Squares 4 to 11 are the shared
// middle lane, the rest are private. A piece enters from the pot and leaves the
// board by moving past square 13. Landing on a rosette (3, 7, 13) grants an
// extra turn and the middle rosette protects its occupant from capture.
//
// Every turn starts with a chance node where four binary dice are thrown.
package ur

import (
	"fmt"
	"math/bits"
	"strings"

	"adversarial/game"
)

const (
	Pieces = 7
	// Pot is Move.From for a piece entering the board.
	Pot int8 = 14
	// OffBoard is Move.To for a piece leaving the board.
	OffBoard int8 = 14

	lastSquare = 13
	sideShift  = 32
	routeMask  = 1<<(lastSquare+1) - 1

	rosettes uint64 = 1<<3 | 1<<7 | 1<<13
	shared   uint64 = 0b1111_1111 << 4
	safe     int8   = 7

	MateScore      = 1_000_000
	inPotPenalty   = 50
	progressScore  = 100
	finishingScore = 2000
)

// rollOdds is the chance of each dice total, in sixteenths.
var rollOdds = [...]int{1, 4, 6, 4, 1}

type Kind int8

const (
	Advance Kind = iota
	Roll
	Pass
)

// Move carries the dice total it was played under so Pop can restore it.
type Move struct {
	Kind    Kind
	From    int8
	To      int8
	Capture bool
	Roll    int8
}

func (m Move) String() string {
	switch m.Kind {
	case Roll:
		return fmt.Sprintf("roll %d", m.Roll)
	case Pass:
		return "pass"
	}
	from, to := fmt.Sprint(m.From), fmt.Sprint(m.To)
	if m.From == Pot {
		from = "pot"
	}
	if m.To == OffBoard {
		to = "off"
	}
	if m.Capture {
		return from + "x" + to
	}
	return from + "-" + to
}

// Board is comparable and fully describes a position.
type Board struct {
	slots uint64 // X on bits 0-13, O on bits 32-45
	pots  [2]int8
	moves int
	roll  int8 // -1 until the dice are thrown
}

func New() *Board {
	return &Board{pots: [2]int8{Pieces, Pieces}, roll: -1}
}

func (b *Board) side() int {
	return b.moves & 1
}

func bit(square int8, side int) uint64 {
	return 1 << (int(square) + sideShift*side)
}

func (b *Board) occupied(square int8, side int) bool {
	return square <= lastSquare && b.slots&bit(square, side) != 0
}

func isShared(square int8) bool {
	return square <= lastSquare && shared&(1<<square) != 0
}

func isRosette(square int8) bool {
	return square <= lastSquare && rosettes&(1<<square) != 0
}

func (b *Board) route(side int) uint64 {
	return (b.slots >> (sideShift * side)) & routeMask
}

// Roll is the dice total in play, or -1 at a chance node.
func (b *Board) Roll() int {
	return int(b.roll)
}

func (b *Board) Turn() int {
	if b.side() == 0 {
		return 1
	}
	return -1
}

func (b *Board) finished(side int) bool {
	return b.pots[side] == 0 && b.route(side) == 0
}

func (b *Board) Evaluate() int {
	switch {
	case b.finished(0):
		return 1
	case b.finished(1):
		return -1
	default:
		return 0
	}
}

func (b *Board) IsTerminal() bool {
	return b.Evaluate() != 0
}

func (b *Board) ToMove() game.ToMove {
	if b.roll < 0 {
		return game.Chance
	}
	return game.ToMoveFromTurn(b.Turn())
}

func (b *Board) ActionSpaceSize() int {
	return Pieces + 1
}

func (b *Board) GenerateMoves(buffer []Move) []Move {
	if b.roll < 0 {
		for r := range rollOdds {
			buffer = append(buffer, Move{Kind: Roll, Roll: int8(r)})
		}
		return buffer
	}

	start := len(buffer)
	us, them := b.side(), 1-b.side()
	for pieces := b.route(us); pieces != 0; pieces &= pieces - 1 {
		from := int8(bits.TrailingZeros64(pieces))
		to := min(from+b.roll, OffBoard)
		if m, ok := b.advance(from, to, us, them); ok {
			buffer = append(buffer, m)
		}
	}
	if b.pots[us] > 0 && b.roll > 0 {
		if m, ok := b.advance(Pot, b.roll-1, us, them); ok {
			buffer = append(buffer, m)
		}
	}
	if len(buffer) == start {
		buffer = append(buffer, Move{Kind: Pass, Roll: b.roll})
	}
	return buffer
}

func (b *Board) advance(from, to int8, us, them int) (Move, bool) {
	if to != OffBoard && (to == from || b.occupied(to, us)) {
		return Move{}, false
	}
	capture := isShared(to) && b.occupied(to, them)
	if capture && to == safe {
		return Move{}, false
	}
	return Move{Kind: Advance, From: from, To: to, Capture: capture, Roll: b.roll}, true
}

// GenerateMovesWithProbabilities appends the dice totals with their odds. It
// panics unless the dice are about to be thrown.
func (b *Board) GenerateMovesWithProbabilities(buffer []game.Weighted[Move]) []game.Weighted[Move] {
	if b.roll >= 0 {
		panic("dice odds requested after the dice were thrown")
	}
	for r, odds := range rollOdds {
		buffer = append(buffer, game.Weighted[Move]{
			Move:        Move{Kind: Roll, Roll: int8(r)},
			Probability: float64(odds) / 16,
		})
	}
	return buffer
}

func (b *Board) Push(m Move) {
	switch m.Kind {
	case Roll:
		b.roll = m.Roll
	case Pass:
		b.moves++
		b.roll = -1
	case Advance:
		us, them := b.side(), 1-b.side()
		if m.From == Pot {
			b.pots[us]--
		} else {
			b.slots &^= bit(m.From, us)
		}
		if m.To != OffBoard {
			b.slots |= bit(m.To, us)
		}
		if m.Capture {
			b.slots &^= bit(m.To, them)
			b.pots[them]++
		}
		if !isRosette(m.To) {
			b.moves++
		}
		b.roll = -1
	}
}

func (b *Board) Pop(m Move) {
	switch m.Kind {
	case Roll:
		b.roll = -1
	case Pass:
		b.moves--
		b.roll = m.Roll
	case Advance:
		if !isRosette(m.To) {
			b.moves--
		}
		us, them := b.side(), 1-b.side()
		if m.Capture {
			b.pots[them]--
			b.slots |= bit(m.To, them)
		}
		if m.To != OffBoard {
			b.slots &^= bit(m.To, us)
		}
		if m.From == Pot {
			b.pots[us]++
		} else {
			b.slots |= bit(m.From, us)
		}
		b.roll = m.Roll
	}
}

// Heuristic rewards progress along the route and pieces borne off, and
// penalizes pieces waiting in the pot. Finished games score ±MateScore.
func (b *Board) Heuristic() int {
	switch b.Evaluate() {
	case 1:
		return MateScore
	case -1:
		return -MateScore
	}
	return b.score(0) - b.score(1)
}

func (b *Board) score(side int) int {
	route := b.route(side)
	onBoard := int8(bits.OnesCount64(route))
	finished := Pieces - int(b.pots[side]) - int(onBoard)

	score := finished*finishingScore - int(b.pots[side])*inPotPenalty
	for pieces := route; pieces != 0; pieces &= pieces - 1 {
		score += (bits.TrailingZeros64(pieces) + 1) * progressScore
	}
	return score
}

// HashKey packs the position into disjoint bit ranges.
func (b *Board) HashKey() uint64 {
	return b.slots |
		uint64(b.pots[0])<<16 |
		uint64(b.side())<<20 |
		uint64(b.roll+1)<<24 |
		uint64(b.pots[1])<<48
}

func (b *Board) Snapshot() Board {
	return *b
}

func (b *Board) cell(square int8, side int) string {
	switch {
	case b.occupied(square, side):
		return [...]string{"X", "O"}[side]
	case isRosette(square):
		return "*"
	default:
		return "."
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	private := func(side int) {
		for sq := int8(3); sq >= 0; sq-- {
			sb.WriteString(b.cell(sq, side) + " ")
		}
		sb.WriteString("    ")
		for sq := int8(lastSquare); sq >= 12; sq-- {
			sb.WriteString(b.cell(sq, side) + " ")
		}
		sb.WriteString("\n")
	}

	private(0)
	for sq := int8(4); sq <= 11; sq++ {
		switch {
		case b.occupied(sq, 0):
			sb.WriteString("X ")
		case b.occupied(sq, 1):
			sb.WriteString("O ")
		default:
			sb.WriteString(b.cell(sq, 0) + " ")
		}
	}
	sb.WriteString("\n")
	private(1)

	fmt.Fprintf(&sb, "\nMove %d, ", b.moves)
	if b.roll < 0 {
		sb.WriteString("roll ?")
	} else {
		fmt.Fprintf(&sb, "roll %d", b.roll)
	}
	fmt.Fprintf(&sb, " | pots: %d X, %d O\n", b.pots[0], b.pots[1])
	return sb.String()
}
