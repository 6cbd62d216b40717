package apperror

import "errors"

var (
	// ErrIllegalMove is wrapped by every rejected move; the game is left untouched.
	ErrIllegalMove = errors.New("illegal move")

	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrWrongBoard   = errors.New("move must be played in the active board")
	ErrBoardDecided = errors.New("board is already decided")

	ErrGameNotFinished   = errors.New("game is not finished")
	ErrSeriesFinished    = errors.New("series is already finished")
	ErrInvalidTransition = errors.New("action is not available on this screen")
)
