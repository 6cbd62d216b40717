package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type TerminalState string

const (
	InProgress TerminalState = "in-progress"
	Won        TerminalState = "won"
	Drawn      TerminalState = "drawn"
)

// Terminal - whether a game is over, and who won it.
type Terminal struct {
	State  TerminalState `json:"state"`
	Winner entity.Mark   `json:"winner,omitempty"`
}

func (that Terminal) IsOver() bool {
	return that.State != InProgress
}

// MoveResult describes what a successful move changed.
type MoveResult struct {
	Move     entity.Move    `json:"move"`
	Player   entity.Mark    `json:"player"`
	Board    entity.Outcome `json:"board"`
	Next     int            `json:"next"`
	Terminal Terminal       `json:"terminal"`
}

// ApplyMove - plays the current player's mark at move. A rejected move wraps apperror.ErrIllegalMove
// and leaves the game unchanged.
func ApplyMove(game *entity.Game, move entity.Move) (*MoveResult, error) {
	if err := validateMove(game, move); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrIllegalMove, move, err)
	}

	player := game.Turn

	game.Boards[move.Board][move.Row][move.Col] = player
	game.Moves++

	outcome := entity.ResolveCells(&game.Boards[move.Board])
	game.SetOutcome(move.Board, outcome)

	updateGameStatus(game, move)

	return &MoveResult{
		Move:     move,
		Player:   player,
		Board:    outcome,
		Next:     game.Active,
		Terminal: CheckTerminal(game),
	}, nil
}

// CheckTerminal - reports whether the game is still in progress, won or drawn.
func CheckTerminal(game *entity.Game) Terminal {
	switch {
	case !game.IsFinished():
		return Terminal{State: InProgress}
	case game.Winner.IsPlayer():
		return Terminal{State: Won, Winner: game.Winner}
	default:
		return Terminal{State: Drawn}
	}
}

// LegalMoves - every move ApplyMove would accept right now, in board then cell order.
func LegalMoves(game *entity.Game) []entity.Move {
	var moves []entity.Move

	for board := range game.Boards {
		if !game.IsPlayable(board) {
			continue
		}

		for row := range entity.GridSize {
			for col := range entity.GridSize {
				if game.Boards[board][row][col] == entity.EmptyCell {
					moves = append(moves, entity.Move{Board: board, Row: row, Col: col})
				}
			}
		}
	}

	return moves
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if move.Board < 0 || move.Board >= entity.BoardCount || !entity.InRange(move.Row, move.Col) {
		return apperror.ErrInvalidCell
	}

	if game.Active != entity.AnyBoard && game.Active != move.Board {
		return fmt.Errorf("%w: active board is %d", apperror.ErrWrongBoard, game.Active)
	}

	if game.Outcome(move.Board).Decided() {
		return apperror.ErrBoardDecided
	}

	if game.Boards[move.Board][move.Row][move.Col] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the super-board after a move and hands the turn over.
func updateGameStatus(game *entity.Game, move entity.Move) {
	switch result := entity.ResolveOutcomes(&game.Outcomes); result.Status {
	case entity.BoardWon:
		game.Winner = result.Winner
		game.Status = entity.StatusFinished
		game.Active = entity.AnyBoard
	case entity.BoardDrawn:
		game.Winner = entity.EmptyCell
		game.Status = entity.StatusFinished
		game.Active = entity.AnyBoard
	default:
		game.Active = nextActive(game, move)
		game.Turn = game.Turn.Opponent()
	}
}

// nextActive - the sub-board matching the cell just played, unless it is already decided.
func nextActive(game *entity.Game, move entity.Move) int {
	next := move.Cell()
	if game.Outcome(next).Decided() {
		return entity.AnyBoard
	}

	return next
}
