package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Series tracks round wins across the games of one mode. Every finished game counts toward the
// mode's game count; a drawn game awards nothing and the round is played again while games remain.
type Series struct {
	Mode   entity.Mode         `json:"mode"`
	Wins   map[entity.Mark]int `json:"wins"`
	Played int                 `json:"played"`
	Draws  int                 `json:"draws"`
}

func NewSeries(mode entity.Mode) *Series {
	return &Series{
		Mode: mode,
		Wins: map[entity.Mark]int{entity.PlayerX: 0, entity.PlayerO: 0},
	}
}

// Record - books a finished game and reports whether the series is over.
func (that *Series) Record(terminal Terminal) (bool, error) {
	if that.IsFinished() {
		return true, apperror.ErrSeriesFinished
	}

	switch terminal.State {
	case Won:
		if !terminal.Winner.IsPlayer() {
			return false, fmt.Errorf("%w: won by %q", entity.ErrUnknownGameStatus, terminal.Winner)
		}

		that.Wins[terminal.Winner]++
	case Drawn:
		that.Draws++
	case InProgress:
		return false, apperror.ErrGameNotFinished
	default:
		return false, fmt.Errorf("%w: %s", entity.ErrUnknownGameStatus, terminal.State)
	}

	that.Played++

	return that.IsFinished(), nil
}

// IsFinished - a player reached the wins needed, or every configured game has been played.
func (that *Series) IsFinished() bool {
	if that.Played >= that.Mode.Games() {
		return true
	}

	for _, wins := range that.Wins {
		if wins >= that.Mode.WinsNeeded() {
			return true
		}
	}

	return false
}

// Round is the 1-based number of the game being played, or of the last one once the series is over.
func (that *Series) Round() int {
	if that.IsFinished() {
		return that.Played
	}
	return that.Played + 1
}

// Winner - the player with more round wins once the series is over.
func (that *Series) Winner() (entity.Mark, bool) {
	if !that.IsFinished() {
		return entity.EmptyCell, false
	}

	x, o := that.Wins[entity.PlayerX], that.Wins[entity.PlayerO]
	switch {
	case x > o:
		return entity.PlayerX, true
	case o > x:
		return entity.PlayerO, true
	default:
		return entity.EmptyCell, false
	}
}
