package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/pkg"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

type scoreRepoDep interface {
	Load(ctx context.Context) (entity.BestScores, error)
	Save(ctx context.Context, mode entity.Mode, score entity.Score) error
}

// Session drives one local sitting: menu, mode choice, nicknames, the games of a series and the
// game-over screen. It is not safe for concurrent use.
type Session struct {
	logger    *slog.Logger
	scoreRepo scoreRepoDep

	nicknameMaxLength int

	screen  Screen
	mode    entity.Mode
	players [2]*entity.Player
	series  *tictactoe.Series
	game    *entity.Game
	scores  entity.BestScores
}

// NewSession - loads the best scores and opens the menu. A failing store is logged and the session
// starts without records.
func NewSession(ctx context.Context, logger *slog.Logger, scoreRepo scoreRepoDep, nicknameMaxLength int) *Session {
	log := logger.With("component", "session")

	if nicknameMaxLength <= 0 {
		nicknameMaxLength = entity.DefaultNicknameMaxLength
	}

	scores, err := scoreRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load best scores", "error", err)
	}

	if scores == nil {
		scores = entity.BestScores{}
	}

	return &Session{
		logger:    log,
		scoreRepo: scoreRepo,

		nicknameMaxLength: nicknameMaxLength,

		screen: MenuScreen{},
		scores: scores,
	}
}

func (that *Session) Screen() Screen {
	return that.screen
}

func (that *Session) Mode() entity.Mode {
	return that.mode
}

// Game is the game being played, or the last one once the series is over.
func (that *Session) Game() *entity.Game {
	return that.game
}

func (that *Session) Series() *tictactoe.Series {
	return that.series
}

func (that *Session) BestScores() entity.BestScores {
	return that.scores
}

func (that *Session) NicknameMaxLength() int {
	return that.nicknameMaxLength
}

// Player returns the player holding mark, or nil before nicknames are entered.
func (that *Session) Player(mark entity.Mark) *entity.Player {
	for _, player := range that.players {
		if player != nil && player.Mark == mark {
			return player
		}
	}

	return nil
}

// Start - leaves the menu for the mode choice.
func (that *Session) Start() error {
	if _, ok := that.screen.(MenuScreen); !ok {
		return that.invalidTransition("start")
	}

	that.moveTo(ModeScreen{})

	return nil
}

// ChooseMode - picks single game or best of 3 and asks for the first nickname.
func (that *Session) ChooseMode(mode entity.Mode) error {
	if _, ok := that.screen.(ModeScreen); !ok {
		return that.invalidTransition("choose mode")
	}

	if _, err := entity.ParseMode(string(mode)); err != nil {
		return fmt.Errorf("failed to choose mode: %w", err)
	}

	that.mode = mode
	that.players = [2]*entity.Player{}
	that.moveTo(NicknameScreen{})

	return nil
}

// TypeRune - appends a letter or digit to the nickname being entered; other runes and runes beyond
// the maximum length are dropped.
func (that *Session) TypeRune(r rune) error {
	nickname, ok := that.screen.(NicknameScreen)
	if !ok {
		return that.invalidTransition("type")
	}

	if !entity.NicknameRune(r) || utf8.RuneCountInString(nickname.Buffer) >= that.nicknameMaxLength {
		return nil
	}

	nickname.Buffer += string(r)
	that.screen = nickname

	return nil
}

func (that *Session) Backspace() error {
	nickname, ok := that.screen.(NicknameScreen)
	if !ok {
		return that.invalidTransition("backspace")
	}

	if nickname.Buffer == "" {
		return nil
	}

	runes := []rune(nickname.Buffer)
	nickname.Buffer = string(runes[:len(runes)-1])
	that.screen = nickname

	return nil
}

// SubmitName - stores the nickname being entered. The second nickname starts the series.
func (that *Session) SubmitName() error {
	nickname, ok := that.screen.(NicknameScreen)
	if !ok {
		return that.invalidTransition("submit name")
	}

	// an empty nickname is not accepted; keep waiting for input
	if nickname.Buffer == "" {
		return nil
	}

	that.players[nickname.Index] = &entity.Player{Name: nickname.Buffer, Mark: nickname.Mark()}

	if nickname.Index+1 < len(that.players) {
		that.moveTo(NicknameScreen{Index: nickname.Index + 1})
		return nil
	}

	that.series = tictactoe.NewSeries(that.mode)
	that.newGame()
	that.moveTo(PlayingScreen{})

	return nil
}

// Play - applies move for the player whose turn it is. An illegal move is returned as is and changes
// nothing. A finished game updates the best score and the series, and either starts the next game or
// ends on the game-over screen.
func (that *Session) Play(ctx context.Context, move entity.Move) (*tictactoe.MoveResult, error) {
	log := that.logger.With("method", "Play")

	if _, ok := that.screen.(PlayingScreen); !ok {
		return nil, that.invalidTransition("play")
	}

	result, err := tictactoe.ApplyMove(that.game, move)
	if err != nil {
		log.Debug("move rejected", "game_id", that.game.ID, "move", move.String(), "error", err)
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if !result.Terminal.IsOver() {
		return result, nil
	}

	log.Info("game finished",
		"game_id", that.game.ID,
		"state", result.Terminal.State,
		"winner", result.Terminal.Winner,
		"moves", that.game.Moves,
	)

	if result.Terminal.State == tictactoe.Won {
		that.updateBestScore(ctx, result.Terminal.Winner)
	}

	over, err := that.series.Record(result.Terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	if !over {
		that.newGame()
		return result, nil
	}

	winner, _ := that.series.Winner()
	that.moveTo(GameOverScreen{Winner: winner, Moves: that.game.Moves})

	return result, nil
}

// BackToMenu - leaves the game-over screen and forgets the series and the nicknames.
func (that *Session) BackToMenu() error {
	if _, ok := that.screen.(GameOverScreen); !ok {
		return that.invalidTransition("back to menu")
	}

	that.players = [2]*entity.Player{}
	that.series = nil
	that.game = nil
	that.moveTo(MenuScreen{})

	return nil
}

func (that *Session) newGame() {
	that.game = entity.NewGame(pkg.GenerateGameID())

	that.logger.Debug("game started", "game_id", that.game.ID, "mode", that.mode, "round", that.series.Round())
}

// updateBestScore - records the finished game when it beats the mode's best score. The store is
// best effort: a failed save is logged and the in-memory record is kept.
func (that *Session) updateBestScore(ctx context.Context, winner entity.Mark) {
	log := that.logger.With("method", "updateBestScore")

	if !that.scores.Beats(that.mode, that.game.Moves) {
		return
	}

	player := that.Player(winner)
	if player == nil {
		log.Error("no player for winning mark", "mark", winner)
		return
	}

	score := entity.Score{Player: player.Name, Moves: that.game.Moves}
	that.scores[that.mode] = score

	if err := that.scoreRepo.Save(ctx, that.mode, score); err != nil {
		log.Error("failed to save best score", "mode", that.mode, "error", err)
		return
	}

	log.Info("new best score", "mode", that.mode, "player", score.Player, "moves", score.Moves)
}

func (that *Session) moveTo(screen Screen) {
	that.logger.Debug("screen changed", "from", ScreenName(that.screen), "to", ScreenName(screen))
	that.screen = screen
}

func (that *Session) invalidTransition(action string) error {
	return fmt.Errorf("%w: %s on %s screen", apperror.ErrInvalidTransition, action, ScreenName(that.screen))
}
