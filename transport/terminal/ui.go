package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleButton = tcell.StyleDefault.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite)
	styleX      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleO      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorYellow)

	activeBackground = tcell.NewRGBColor(60, 60, 110)
	cursorBackground = tcell.ColorSilver
)

// UI renders the session on a terminal screen and turns key presses and mouse clicks into session calls.
type UI struct {
	logger  *slog.Logger
	screen  tcell.Screen
	session *usecase.Session

	cursor  entity.Move
	message string
	pressed bool
}

func New(logger *slog.Logger, screen tcell.Screen, session *usecase.Session) *UI {
	return &UI{
		logger:  logger.With("component", "terminal"),
		screen:  screen,
		session: session,
		cursor:  entity.Move{Board: 4, Row: 1, Col: 1},
	}
}

// Run - draws and handles events until the player quits or ctx is canceled.
func (that *UI) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			if err := that.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				that.logger.Error("failed to interrupt event loop", "error", err)
			}
		case <-done:
		}
	}()

	for {
		that.draw()

		switch ev := that.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			if quit := that.handleKey(ctx, ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			that.handleMouse(ctx, ev)
		}
	}
}

// handleKey - reports true when the player asked to quit.
func (that *UI) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}

	var err error

	switch that.session.Screen().(type) {
	case usecase.MenuScreen:
		if ev.Key() == tcell.KeyEnter {
			err = that.session.Start()
		}
	case usecase.ModeScreen:
		switch ev.Rune() {
		case '1':
			err = that.session.ChooseMode(entity.ModeSingle)
		case '3':
			err = that.session.ChooseMode(entity.ModeBestOfThree)
		}
	case usecase.NicknameScreen:
		switch ev.Key() {
		case tcell.KeyEnter:
			err = that.session.SubmitName()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			err = that.session.Backspace()
		case tcell.KeyRune:
			err = that.session.TypeRune(ev.Rune())
		}
	case usecase.PlayingScreen:
		that.handlePlayingKey(ctx, ev)
	case usecase.GameOverScreen:
		if ev.Key() == tcell.KeyEnter {
			err = that.session.BackToMenu()
		}
	}

	if err != nil {
		that.logger.Error("failed to handle key", "screen", usecase.ScreenName(that.session.Screen()), "error", err)
	}

	return false
}

func (that *UI) handlePlayingKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		that.cursor = step(that.cursor, 0, -1)
	case tcell.KeyDown:
		that.cursor = step(that.cursor, 0, 1)
	case tcell.KeyLeft:
		that.cursor = step(that.cursor, -1, 0)
	case tcell.KeyRight:
		that.cursor = step(that.cursor, 1, 0)
	case tcell.KeyEnter:
		that.play(ctx, that.cursor)
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			that.play(ctx, that.cursor)
		}
	}
}

// handleMouse - acts on the press of the primary button only, not while it is held.
func (that *UI) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !that.pressed
	that.pressed = down

	if !pressed {
		return
	}

	if _, ok := that.session.Screen().(usecase.PlayingScreen); !ok {
		return
	}

	width, height := that.screen.Size()
	x, y := ev.Position()

	if move, ok := CenteredLayout(width, height).HitTest(x, y); ok {
		that.cursor = move
		that.play(ctx, move)
	}
}

func (that *UI) play(ctx context.Context, move entity.Move) {
	that.message = ""

	result, err := that.session.Play(ctx, move)
	if errors.Is(err, apperror.ErrIllegalMove) {
		that.message = "Illegal move: " + illegalReason(err)
		return
	}

	if err != nil {
		that.logger.Error("failed to play", "move", move.String(), "error", err)
		that.message = "Something went wrong, see the log"
		return
	}

	if _, playing := that.session.Screen().(usecase.PlayingScreen); playing && result.Terminal.IsOver() {
		that.message = terminalMessage(result.Terminal, that.session)
	}
}

func illegalReason(err error) string {
	for _, reason := range []error{
		apperror.ErrGameFinished,
		apperror.ErrInvalidCell,
		apperror.ErrWrongBoard,
		apperror.ErrBoardDecided,
		apperror.ErrCellOccupied,
	} {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}

	return err.Error()
}

func (that *UI) draw() {
	that.screen.Clear()

	width, height := that.screen.Size()

	switch screen := that.session.Screen().(type) {
	case usecase.MenuScreen:
		that.drawMenu(width, height)
	case usecase.ModeScreen:
		that.drawMode(width, height)
	case usecase.NicknameScreen:
		that.drawNickname(width, height, screen)
	case usecase.PlayingScreen:
		that.drawGame(width, height)
	case usecase.GameOverScreen:
		that.drawGameOver(width, height, screen)
	}

	that.screen.Show()
}

func (that *UI) drawMenu(width, height int) {
	scores := that.session.BestScores()

	that.centered(width, height/2-4, styleTitle, "Ultimate Tic Tac Toe")
	that.centered(width, height/2-1, styleButton, "  Start [Enter]  ")
	that.centered(width, height/2+2, styleText, scores.Describe(entity.ModeSingle))
	that.centered(width, height/2+3, styleText, scores.Describe(entity.ModeBestOfThree))
	that.centered(width, height-1, styleEmpty, "Esc to quit")
}

func (that *UI) drawMode(width, height int) {
	that.centered(width, height/2-4, styleTitle, "Choose Game Mode")
	that.centered(width, height/2-1, styleButton, "  [1] "+entity.ModeSingle.Title()+"  ")
	that.centered(width, height/2+1, styleButton, "  [3] "+entity.ModeBestOfThree.Title()+"  ")
}

func (that *UI) drawNickname(width, height int, screen usecase.NicknameScreen) {
	prompt := fmt.Sprintf("Player %d (%s) Nickname (max %d chars):",
		screen.Index+1, screen.Mark(), that.session.NicknameMaxLength())

	that.centered(width, height/2-4, styleTitle, "Enter Player Nickname")
	that.centered(width, height/2-2, styleText, prompt)
	that.centered(width, height/2, styleButton, fmt.Sprintf(" %-*s ", that.session.NicknameMaxLength(), screen.Buffer+"_"))
}

func (that *UI) drawGame(width, height int) {
	game := that.session.Game()
	layout := CenteredLayout(width, height)

	that.centered(width, layout.Y-2, styleText, that.status(game))

	for board := range entity.BoardCount {
		that.drawBoard(layout, game, board)
	}

	_, boardHeight := Size()
	that.centered(width, layout.Y+boardHeight+1, styleError, that.message)
}

func (that *UI) drawBoard(layout Layout, game *entity.Game, board int) {
	outcome := game.Outcome(board)
	playable := game.IsPlayable(board)

	for row := range entity.GridSize {
		for col := range entity.GridSize {
			move := entity.Move{Board: board, Row: row, Col: col}
			mark := game.Boards[board][row][col]

			style := markStyle(mark)
			if outcome.IsWon() {
				style = markStyle(outcome.Winner).Reverse(true)
				mark = outcome.Winner
			} else if outcome.Decided() {
				style = styleEmpty
			}

			if playable {
				style = style.Background(activeBackground)
			}
			if move == that.cursor {
				style = style.Background(cursorBackground)
			}

			x, y := layout.CellOrigin(move)
			that.text(x, y, style, " "+markRune(mark)+" ")
		}
	}
}

func (that *UI) status(game *entity.Game) string {
	player := that.session.Player(game.Turn)
	status := fmt.Sprintf("%s's turn", player.Label())

	if series := that.session.Series(); series.Mode == entity.ModeBestOfThree {
		status += fmt.Sprintf("  |  game %d of %d  |  %s %d - %d %s",
			series.Round(), series.Mode.Games(),
			entity.PlayerO, series.Wins[entity.PlayerO], series.Wins[entity.PlayerX], entity.PlayerX)
	}

	return status
}

func (that *UI) drawGameOver(width, height int, screen usecase.GameOverScreen) {
	message := "It's a draw!"
	if player := that.session.Player(screen.Winner); player != nil {
		message = fmt.Sprintf("%s wins in %d moves!", player.Name, screen.Moves)
	}

	that.centered(width, height/2-2, styleTitle, message)
	that.centered(width, height/2+1, styleButton, "  Back to Menu [Enter]  ")
}

func (that *UI) centered(width, y int, style tcell.Style, text string) {
	that.text((width-len([]rune(text)))/2, y, style, text)
}

func (that *UI) text(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, style)
	}
}

func markStyle(mark entity.Mark) tcell.Style {
	switch mark {
	case entity.PlayerX:
		return styleX
	case entity.PlayerO:
		return styleO
	default:
		return styleEmpty
	}
}

func markRune(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return "·"
	}
	return string(mark)
}

// terminalMessage is shown for a finished game while the next one of the series starts.
func terminalMessage(terminal tictactoe.Terminal, session *usecase.Session) string {
	if terminal.State != tictactoe.Won {
		return "Previous game drawn"
	}

	return fmt.Sprintf("%s won the previous game", session.Player(terminal.Winner).Label())
}
