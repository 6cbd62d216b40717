package terminal

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/ultimate-tictactoe/mocks/usecase"
)

func newTestUI(t *testing.T, scores entity.BestScores) (*UI, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	scoreRepo := mockedUseCase.NewMockscoreRepoDep(t)
	scoreRepo.EXPECT().Load(mock.Anything).Return(scores, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := usecase.NewSession(context.Background(), logger, scoreRepo, 10)

	return New(logger, screen, session), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func press(t *testing.T, ui *UI, events ...*tcell.EventKey) {
	t.Helper()

	for _, ev := range events {
		require.False(t, ui.handleKey(context.Background(), ev))
	}
}

func typeText(t *testing.T, ui *UI, text string) {
	t.Helper()

	for _, r := range text {
		press(t, ui, runeKey(r))
	}
}

// contents - the simulated screen as one string per row.
func contents(screen tcell.SimulationScreen) []string {
	cells, width, height := screen.GetContents()

	rows := make([]string, height)
	for y := range height {
		var row strings.Builder
		for x := range width {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				row.WriteRune(' ')
				continue
			}
			row.WriteRune(runes[0])
		}
		rows[y] = row.String()
	}

	return rows
}

func assertShown(t *testing.T, screen tcell.SimulationScreen, text string) {
	t.Helper()

	for _, row := range contents(screen) {
		if strings.Contains(row, text) {
			return
		}
	}

	assert.Failf(t, "text is not on screen", "%q not found in\n%s", text, strings.Join(contents(screen), "\n"))
}

func TestUI_Menu(t *testing.T) {
	t.Run("Menu shows the best scores", func(t *testing.T) {
		// Given: a single game record and no best-of-3 record
		ui, screen := newTestUI(t, entity.BestScores{
			entity.ModeSingle: {Player: "ann", Moves: 25},
		})

		// When: the menu is drawn
		ui.draw()

		// Then: both records are listed
		assertShown(t, screen, "Ultimate Tic Tac Toe")
		assertShown(t, screen, "Best Single Game: 25 moves by ann")
		assertShown(t, screen, "Best of 3: N/A moves by N/A")
	})

	t.Run("Escape quits", func(t *testing.T) {
		ui, _ := newTestUI(t, entity.BestScores{})

		assert.True(t, ui.handleKey(context.Background(), key(tcell.KeyEscape)))
		assert.True(t, ui.handleKey(context.Background(), key(tcell.KeyCtrlC)))
	})
}

func TestUI_Flow(t *testing.T) {
	// Given: a fresh session
	ui, screen := newTestUI(t, entity.BestScores{})

	// When: the players pick best of 3 and enter their nicknames
	press(t, ui, key(tcell.KeyEnter))
	require.IsType(t, usecase.ModeScreen{}, ui.session.Screen())

	press(t, ui, runeKey('3'))
	require.IsType(t, usecase.NicknameScreen{}, ui.session.Screen())

	ui.draw()
	assertShown(t, screen, "Player 1 (O) Nickname (max 10 chars):")

	typeText(t, ui, "annx")
	press(t, ui, key(tcell.KeyBackspace2), key(tcell.KeyEnter))
	typeText(t, ui, "bob")
	press(t, ui, key(tcell.KeyEnter))

	// Then: the first game of the series is on screen with X to move
	require.IsType(t, usecase.PlayingScreen{}, ui.session.Screen())
	assert.Equal(t, entity.ModeBestOfThree, ui.session.Mode())
	assert.Equal(t, "ann", ui.session.Player(entity.PlayerO).Name)

	ui.draw()
	assertShown(t, screen, "bob (X)'s turn")
	assertShown(t, screen, "game 1 of 3")
}

func TestUI_Playing(t *testing.T) {
	newGame := func(t *testing.T) (*UI, tcell.SimulationScreen) {
		t.Helper()

		ui, screen := newTestUI(t, entity.BestScores{})
		press(t, ui, key(tcell.KeyEnter), runeKey('1'))
		typeText(t, ui, "ann")
		press(t, ui, key(tcell.KeyEnter))
		typeText(t, ui, "bob")
		press(t, ui, key(tcell.KeyEnter))
		require.IsType(t, usecase.PlayingScreen{}, ui.session.Screen())

		return ui, screen
	}

	t.Run("Arrow keys move the cursor and Enter plays", func(t *testing.T) {
		// Given: a new game with the cursor on the centre cell
		ui, _ := newGame(t)

		// When: the cursor moves right and X plays
		press(t, ui, key(tcell.KeyRight), key(tcell.KeyEnter))

		// Then: X owns board 4 (1,2) and O is sent to board 5
		game := ui.session.Game()
		assert.Equal(t, entity.PlayerX, game.Boards[4][1][2])
		assert.Equal(t, 5, game.Active)
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Empty(t, ui.message)
	})

	t.Run("Illegal move is reported and changes nothing", func(t *testing.T) {
		// Given: X played board 4 (1,1), so O must play board 4
		ui, screen := newGame(t)
		press(t, ui, runeKey(' '))
		require.Equal(t, 4, ui.session.Game().Active)

		// When: O tries to play board 5
		press(t, ui, key(tcell.KeyRight), key(tcell.KeyRight), key(tcell.KeyEnter))

		// Then: the move is rejected with a reason
		game := ui.session.Game()
		assert.Equal(t, entity.EmptyCell, game.Boards[5][1][0])
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, "Illegal move: move must be played in the active board", ui.message)

		ui.draw()
		assertShown(t, screen, "Illegal move: move must be played in the active board")
	})

	t.Run("Mouse click plays the cell under the pointer once per press", func(t *testing.T) {
		// Given: a new game on an 80x25 screen
		ui, _ := newGame(t)
		layout := CenteredLayout(80, 25)

		// When: the centre cell is clicked and the button is held over another cell
		x, y := layout.CellOrigin(entity.Move{Board: 4, Row: 1, Col: 1})
		ui.handleMouse(context.Background(), tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

		x, y = layout.CellOrigin(entity.Move{Board: 4, Row: 0, Col: 0})
		ui.handleMouse(context.Background(), tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

		// Then: only the first press is played
		game := ui.session.Game()
		assert.Equal(t, entity.PlayerX, game.Boards[4][1][1])
		assert.Equal(t, entity.EmptyCell, game.Boards[4][0][0])
		assert.Equal(t, 1, game.Moves)

		// When: the button is released and pressed again
		ui.handleMouse(context.Background(), tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
		ui.handleMouse(context.Background(), tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

		// Then: O plays the cell under the pointer
		assert.Equal(t, entity.PlayerO, game.Boards[4][0][0])
		assert.Equal(t, 2, game.Moves)
		assert.Equal(t, entity.Move{Board: 4, Row: 0, Col: 0}, ui.cursor)
	})

	t.Run("Click in a gap plays nothing", func(t *testing.T) {
		ui, _ := newGame(t)
		layout := CenteredLayout(80, 25)

		ui.handleMouse(context.Background(), tcell.NewEventMouse(layout.X+boardWidth, layout.Y, tcell.Button1, tcell.ModNone))

		assert.Zero(t, ui.session.Game().Moves)
	})
}

func TestUI_Run(t *testing.T) {
	t.Run("Escape ends the loop", func(t *testing.T) {
		// Given: an escape key waiting in the event queue
		ui, screen := newTestUI(t, entity.BestScores{})
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

		// When: the loop runs
		err := ui.Run(context.Background())

		// Then: it returns without error
		require.NoError(t, err)
	})

	t.Run("Canceled context ends the loop", func(t *testing.T) {
		// Given: a canceled context
		ui, _ := newTestUI(t, entity.BestScores{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the loop runs
		err := ui.Run(ctx)

		// Then: it returns without error
		require.NoError(t, err)
	})
}
