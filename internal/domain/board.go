package domain

// Board is a fixed capacity grid. Row 0 is the top row on screen but cells are
// stored column by column starting from the bottom, so every access goes
// through index. Board is a value: assigning it copies every cell.
type Board struct {
	cells [MaxCells]Cell
	rows  int
	cols  int
}

func NewBoard(rows, cols int) (Board, error) {
	if rows < 1 || cols < 1 || rows*cols > MaxCells {
		return Board{}, ErrInvalidInput
	}
	return Board{rows: rows, cols: cols}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) index(row, col int) int {
	return col*b.rows + (b.rows - 1 - row)
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Get returns the cell at (row, col), an empty cell when out of bounds
func (b *Board) Get(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Cell{}
	}
	return b.cells[b.index(row, col)]
}

// set writes without gravity; callers keep the coordinates in bounds
func (b *Board) set(row, col int, cell Cell) {
	b.cells[b.index(row, col)] = cell
}

// Chip returns the chip value at (row, col), 0 when empty or out of bounds
func (b *Board) Chip(row, col int) int {
	if !b.inBounds(row, col) {
		return 0
	}
	return b.cells[b.index(row, col)].Chip.Value()
}

// Insert drops cell into col and returns the row it landed on
func (b *Board) Insert(col int, cell Cell) (int, error) {
	if col < 0 || col >= b.cols {
		return -1, ErrInvalidInput
	}

	// walk up from the bottom row until an empty cell shows up
	for row := b.rows - 1; row >= 0; row-- {
		if b.Get(row, col).IsEmpty() {
			b.set(row, col, cell)
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsColumnFull(col int) bool {
	if col < 0 || col >= b.cols {
		return true
	}
	return !b.Get(0, col).IsEmpty()
}

func (b *Board) ValidColumns() []int {
	validMoves := []int{}
	for col := 0; col < b.cols; col++ {
		if !b.IsColumnFull(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// Count returns the number of occupied cells
func (b *Board) Count() int {
	n := 0
	for i := 0; i < b.rows*b.cols; i++ {
		if !b.cells[i].IsEmpty() {
			n++
		}
	}
	return n
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}
