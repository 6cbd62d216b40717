package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Screen is one of MenuScreen, ModeScreen, NicknameScreen, PlayingScreen or GameOverScreen.
type Screen interface {
	screen()
}

type MenuScreen struct{}

type ModeScreen struct{}

// NicknameScreen collects the nickname of player Index (0 plays O, 1 plays X).
type NicknameScreen struct {
	Index  int
	Buffer string
}

type PlayingScreen struct{}

// GameOverScreen - Winner is empty when the series ended tied; Moves is the length of the last game.
type GameOverScreen struct {
	Winner entity.Mark
	Moves  int
}

func (MenuScreen) screen()     {}
func (ModeScreen) screen()     {}
func (NicknameScreen) screen() {}
func (PlayingScreen) screen()  {}
func (GameOverScreen) screen() {}

// Mark played by the player whose nickname is being entered.
func (that NicknameScreen) Mark() entity.Mark {
	return nicknameMarks[that.Index]
}

var nicknameMarks = [2]entity.Mark{entity.PlayerO, entity.PlayerX}

func ScreenName(screen Screen) string {
	switch screen.(type) {
	case MenuScreen:
		return "menu"
	case ModeScreen:
		return "mode"
	case NicknameScreen:
		return "nickname"
	case PlayingScreen:
		return "playing"
	case GameOverScreen:
		return "game-over"
	default:
		panic(fmt.Sprintf("unknown screen %T", screen))
	}
}
