package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

const (
	BoardCount = GridSize * GridSize

	// AnyBoard - the next move may go to any open sub-board.
	AnyBoard = -1
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Move addresses one cell of the super-board: the sub-board index (row*3+col) and the cell inside it.
type Move struct {
	Board int `json:"board"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// Cell is the flat index of the move's cell inside its sub-board.
func (that Move) Cell() int {
	return that.Row*GridSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("board %d (%d,%d)", that.Board, that.Row, that.Col)
}

// Game is the complete state of one game of Ultimate Tic-Tac-Toe.
type Game struct {
	ID       string                 `json:"id"`
	Boards   [BoardCount]Grid[Mark] `json:"boards"`
	Outcomes Grid[Outcome]          `json:"outcomes"`
	Turn     Mark                   `json:"turn"`
	Active   int                    `json:"active"`
	Moves    int                    `json:"moves"`
	Winner   Mark                   `json:"winner"`
	Status   string                 `json:"status"`
}

// NewGame - returns an empty game where PlayerX moves first into any sub-board.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerX,
		Active: AnyBoard,
		Status: StatusOngoing,
	}
}

// Outcome of the sub-board at index i.
func (that *Game) Outcome(i int) Outcome {
	return that.Outcomes.At(i)
}

// SetOutcome records the derived status of the sub-board at index i.
func (that *Game) SetOutcome(i int, outcome Outcome) {
	that.Outcomes[i/GridSize][i%GridSize] = outcome
}

// IsPlayable reports whether the sub-board at index i accepts moves under the active constraint.
func (that *Game) IsPlayable(i int) bool {
	if i < 0 || i >= BoardCount || !that.IsOngoing() {
		return false
	}

	if that.Active != AnyBoard && that.Active != i {
		return false
	}

	return !that.Outcome(i).Decided()
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
