package game

import "fmt"

// Outcome is the result of a finished game.
type Outcome int8

const (
	Draw Outcome = iota
	FirstPlayerWin
	SecondPlayerWin
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case FirstPlayerWin:
		return "first player wins"
	case SecondPlayerWin:
		return "second player wins"
	default:
		return "invalid state"
	}
}

// Classify maps a signed score to an outcome by its sign.
func Classify(score int) Outcome {
	switch {
	case score > 0:
		return FirstPlayerWin
	case score < 0:
		return SecondPlayerWin
	default:
		return Draw
	}
}

// ClassifyTerminal maps the Evaluate result of a terminal state. Values outside
// {-1, 0, 1} are reported as Invalid so callers can print a diagnostic.
func ClassifyTerminal(evaluation int) Outcome {
	if evaluation < -1 || evaluation > 1 {
		return Invalid
	}
	return Classify(evaluation)
}

// FormatTerminal renders a terminal evaluation. Anything outside {-1, 0, 1} is
// a logic error in the game implementation and panics.
func FormatTerminal(evaluation int) string {
	outcome := ClassifyTerminal(evaluation)
	if outcome == Invalid {
		panic(fmt.Sprintf("terminal evaluation %d outside {-1, 0, 1}", evaluation))
	}
	return outcome.String()
}
