package domain

// window directions, scanned in this order from every cell
var directions = [4][2]int{
	{0, 1},  // right
	{1, 0},  // down
	{1, 1},  // down-right
	{-1, 1}, // up-right
}

var (
	patternTOOT = [ToWin]int{1, -1, -1, 1}
	patternOTTO = [ToWin]int{-1, 1, 1, -1}
)

// Windows returns the four length-4 chip windows starting at (row, col).
// Cells past the edge read as 0, so a clipped window never matches a pattern.
func Windows(b Board, row, col int) [4][ToWin]int {
	var w [4][ToWin]int
	for d, dir := range directions {
		for k := 0; k < ToWin; k++ {
			w[d][k] = b.Chip(row+dir[0]*k, col+dir[1]*k)
		}
	}
	return w
}

func IsTOOT(w [ToWin]int) bool { return w == patternTOOT }
func IsOTTO(w [ToWin]int) bool { return w == patternOTTO }

// ScanLines re-scans the whole board and reports the first completed line in
// row-major order. TOOT belongs to player 1, OTTO to player 2.
func ScanLines(b Board) Outcome {
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			for _, w := range Windows(b, i, j) {
				if IsTOOT(w) {
					return Player1Wins
				}
				if IsOTTO(w) {
					return Player2Wins
				}
			}
		}
	}
	return None
}

// CheckOutcome adds the draw rule to ScanLines. A draw needs every cell filled,
// no completed line, and a game that has not already ended.
func CheckOutcome(b Board, moveCount int, state State) Outcome {
	if outcome := ScanLines(b); outcome != None {
		return outcome
	}

	if moveCount == b.Rows()*b.Cols() && state != Done {
		return Draw
	}

	return None
}
