package entity

import (
	"fmt"
	"unicode"
)

const DefaultNicknameMaxLength = 10

// Player is a nickname bound to a mark for the whole series.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark,omitempty"`
}

// NicknameRune reports whether r may appear in a nickname.
func NicknameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Label is the player's name with the mark, as shown next to the board.
func (that *Player) Label() string {
	return fmt.Sprintf("%s (%s)", that.Name, that.Mark)
}
