package entity

const GridSize = 3

// WinCombos - every line of a 3x3 grid as flat indices, rows first, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Grid is a 3x3 board of labels. Cells of a sub-board and outcomes of the super-board are both grids.
type Grid[T comparable] [GridSize][GridSize]T

// At returns the label at the flat index i (row*3+col).
func (that *Grid[T]) At(i int) T {
	return that[i/GridSize][i%GridSize]
}

// Line - returns the label of the first complete line whose three labels are equal and claimed.
func (that *Grid[T]) Line(claimed func(T) bool) (T, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.At(combo[0]), that.At(combo[1]), that.At(combo[2])
		if claimed(a) && a == b && b == c {
			return a, true
		}
	}

	var zero T
	return zero, false
}

// Full - reports whether every label in the grid is filled.
func (that *Grid[T]) Full(filled func(T) bool) bool {
	for row := range that {
		for col := range that[row] {
			if !filled(that[row][col]) {
				return false
			}
		}
	}

	return true
}

// InRange reports whether row and col address a cell of a 3x3 grid.
func InRange(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}
