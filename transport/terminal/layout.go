package terminal

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

const (
	cellWidth  = 3
	cellHeight = 1
	colGap     = 2
	rowGap     = 1

	boardWidth  = cellWidth * entity.GridSize
	boardHeight = cellHeight * entity.GridSize

	// side of the 9x9 grid of all cells
	span = entity.GridSize * entity.GridSize
)

// Layout places the super-board on screen with its top-left corner at X, Y.
type Layout struct {
	X, Y int
}

// CenteredLayout - a layout centred in a screen of the given size, leaving room for a title and a status line.
func CenteredLayout(width, height int) Layout {
	w, h := Size()

	return Layout{
		X: max((width-w)/2, 0),
		Y: max((height-h)/2, 2),
	}
}

// Size of the drawn super-board in screen cells.
func Size() (int, int) {
	return entity.GridSize*boardWidth + (entity.GridSize-1)*colGap,
		entity.GridSize*boardHeight + (entity.GridSize-1)*rowGap
}

// BoardOrigin is the top-left screen position of sub-board i.
func (that Layout) BoardOrigin(i int) (int, int) {
	row, col := i/entity.GridSize, i%entity.GridSize

	return that.X + col*(boardWidth+colGap), that.Y + row*(boardHeight+rowGap)
}

// CellOrigin is the top-left screen position of the cell addressed by move.
func (that Layout) CellOrigin(move entity.Move) (int, int) {
	x, y := that.BoardOrigin(move.Board)

	return x + move.Col*cellWidth, y + move.Row*cellHeight
}

// HitTest - the cell under screen position x, y; gaps between boards hit nothing.
func (that Layout) HitTest(x, y int) (entity.Move, bool) {
	for board := range entity.BoardCount {
		bx, by := that.BoardOrigin(board)
		if x < bx || x >= bx+boardWidth || y < by || y >= by+boardHeight {
			continue
		}

		return entity.Move{
			Board: board,
			Row:   (y - by) / cellHeight,
			Col:   (x - bx) / cellWidth,
		}, true
	}

	return entity.Move{}, false
}

// moveAt converts coordinates on the 9x9 grid of all cells to a move.
func moveAt(gx, gy int) entity.Move {
	return entity.Move{
		Board: (gy/entity.GridSize)*entity.GridSize + gx/entity.GridSize,
		Row:   gy % entity.GridSize,
		Col:   gx % entity.GridSize,
	}
}

// gridPos is the inverse of moveAt.
func gridPos(move entity.Move) (int, int) {
	return (move.Board%entity.GridSize)*entity.GridSize + move.Col,
		(move.Board/entity.GridSize)*entity.GridSize + move.Row
}

// step moves the cursor by dx, dy on the 9x9 grid, clamped to its edges.
func step(move entity.Move, dx, dy int) entity.Move {
	gx, gy := gridPos(move)

	return moveAt(min(max(gx+dx, 0), span-1), min(max(gy+dy, 0), span-1))
}
