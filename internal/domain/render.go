package domain

import "strings"

// Render draws the chip grid, one line per row: "_" for empty, "T" or "O"
func Render(b Board) string {
	return render(b, func(c Cell) byte {
		switch c.Chip {
		case T:
			return 'T'
		case O:
			return 'O'
		}
		return '_'
	})
}

// RenderMovers draws who placed each chip: "R" for player 1, "Y" for player 2
func RenderMovers(b Board) string {
	return render(b, func(c Cell) byte {
		switch c.Mover {
		case MarkP1:
			return 'R'
		case MarkP2:
			return 'Y'
		}
		return '_'
	})
}

func render(b Board, symbol func(Cell) byte) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			sb.WriteByte(symbol(b.Get(r, c)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ChipGrid converts the board to rows of chip values for JSON payloads
func ChipGrid(b Board) [][]int {
	grid := make([][]int, b.Rows())
	for r := range grid {
		grid[r] = make([]int, b.Cols())
		for c := range grid[r] {
			grid[r][c] = b.Chip(r, c)
		}
	}
	return grid
}
