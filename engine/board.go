package engine

const (
	Width  = 10
	Height = 20
)

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Filled
	// Preview marks a landing-preview square. It only appears in boards
	// produced by RenderBoard and is never treated as occupied.
	Preview
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Preview:
		return "preview"
	default:
		return "unknown"
	}
}

// Board is a fixed Width x Height grid indexed by row, then column.
// Coordinates passed to its methods must lie inside the grid.
type Board struct {
	cells [Height][Width]Cell
}

// NewBoard returns an all-Empty board.
func NewBoard() *Board {
	return &Board{}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func (b *Board) Get(x, y int) Cell {
	return b.cells[y][x]
}

func (b *Board) Set(x, y int, cell Cell) {
	b.cells[y][x] = cell
}

// Row returns a copy of row y.
func (b *Board) Row(y int) [Width]Cell {
	return b.cells[y]
}

// RowFull reports whether every column of row y is Filled.
func (b *Board) RowFull(y int) bool {
	for _, cell := range b.cells[y] {
		if cell != Filled {
			return false
		}
	}
	return true
}

// ClearLine removes row y, shifting every row above it down by one and
// leaving row 0 empty.
func (b *Board) ClearLine(y int) {
	for row := y; row > 0; row-- {
		b.cells[row] = b.cells[row-1]
	}
	b.cells[0] = [Width]Cell{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Height][Width]Cell{}
}

// FilledCount returns the number of Filled cells on the board.
func (b *Board) FilledCount() int {
	count := 0
	for y := range Height {
		for x := range Width {
			if b.cells[y][x] == Filled {
				count++
			}
		}
	}
	return count
}
