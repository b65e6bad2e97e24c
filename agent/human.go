package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"adversarial/game"

	"github.com/pkg/errors"
)

// Human reads move tokens, one per line, and asks again until a token matches
// a legal move.
type Human[M any] struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman[M any](in io.Reader, out io.Writer) *Human[M] {
	return &Human[M]{in: bufio.NewScanner(in), out: out}
}

func (h *Human[M]) FindMove(state game.State[M]) (M, error) {
	var zero M
	if err := legal(state); err != nil {
		return zero, err
	}

	for {
		fmt.Fprintf(h.out, "%v\nmoves: %s\n> ", state, strings.Join(MoveNames(state), ", "))
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return zero, errors.Wrap(err, "reading move")
			}
			return zero, errors.Wrap(io.ErrUnexpectedEOF, "reading move")
		}

		token := strings.TrimSpace(h.in.Text())
		move, err := ParseMove(state, token)
		if errors.Is(err, ErrMoveNotFound) {
			fmt.Fprintln(h.out, err)
			continue
		}
		return move, err
	}
}
