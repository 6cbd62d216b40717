package entity

import (
	"errors"
	"fmt"
)

type Mode string

const (
	ModeSingle      Mode = "single"
	ModeBestOfThree Mode = "best-of-3"
)

var ErrUnknownMode = errors.New("unknown game mode")

// Modes lists every mode in menu order.
var Modes = []Mode{ModeSingle, ModeBestOfThree}

func ParseMode(value string) (Mode, error) {
	for _, mode := range Modes {
		if string(mode) == value {
			return mode, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

// Games is the configured number of games in a series of this mode.
func (that Mode) Games() int {
	if that == ModeBestOfThree {
		return 3
	}
	return 1
}

// WinsNeeded is the number of round wins that ends the series early.
func (that Mode) WinsNeeded() int {
	return (that.Games() + 1) / 2
}

func (that Mode) Title() string {
	if that == ModeBestOfThree {
		return "Best of 3"
	}
	return "Single Game"
}

// Score is the fewest moves a player needed to win a game in some mode.
type Score struct {
	Player string `json:"player"`
	Moves  int    `json:"score"`
}

// BestScores holds at most one score per mode; a missing mode has no record yet.
type BestScores map[Mode]Score

// Beats reports whether moves is a new record for mode.
func (that BestScores) Beats(mode Mode, moves int) bool {
	current, ok := that[mode]
	return !ok || moves < current.Moves
}

// Describe - menu line for the mode, with N/A placeholders when no record exists.
func (that BestScores) Describe(mode Mode) string {
	title := "Best Single Game"
	if mode == ModeBestOfThree {
		title = "Best of 3"
	}

	current, ok := that[mode]
	if !ok {
		return title + ": N/A moves by N/A"
	}

	return fmt.Sprintf("%s: %d moves by %s", title, current.Moves, current.Player)
}
