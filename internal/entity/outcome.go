package entity

type BoardStatus string

const (
	BoardOpen  BoardStatus = ""
	BoardWon   BoardStatus = "won"
	BoardDrawn BoardStatus = "drawn"
)

// Outcome is the derived status of a sub-board: open, won by a player, or drawn.
type Outcome struct {
	Status BoardStatus `json:"status,omitempty"`
	Winner Mark        `json:"winner,omitempty"`
}

func WonBy(player Mark) Outcome {
	return Outcome{Status: BoardWon, Winner: player}
}

func Drawn() Outcome {
	return Outcome{Status: BoardDrawn}
}

func (that Outcome) IsWon() bool {
	return that.Status == BoardWon
}

// Decided reports a won or drawn sub-board.
func (that Outcome) Decided() bool {
	return that.Status != BoardOpen
}

// ResolveCells - derives a sub-board's outcome: any complete line wins, otherwise a full grid is a draw.
func ResolveCells(board *Grid[Mark]) Outcome {
	if winner, ok := board.Line(Mark.IsPlayer); ok {
		return WonBy(winner)
	}

	if board.Full(Mark.IsPlayer) {
		return Drawn()
	}

	return Outcome{}
}

// ResolveOutcomes - derives the super-board's outcome from the sub-board outcomes. A drawn sub-board
// never belongs to a line, and the super-board is drawn once every sub-board is decided without a line.
func ResolveOutcomes(outcomes *Grid[Outcome]) Outcome {
	if line, ok := outcomes.Line(Outcome.IsWon); ok {
		return WonBy(line.Winner)
	}

	if outcomes.Full(Outcome.Decided) {
		return Drawn()
	}

	return Outcome{}
}
