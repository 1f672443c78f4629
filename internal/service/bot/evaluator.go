package bot

import (
	"github.com/iamasit07/toot-otto/internal/domain"
)

const (
	// completed OTTO is good for the bot, completed TOOT is a loss
	winSignal = 4
)

// Evaluate scores a board from the bot's side.
//
// winSignal is +4 when an OTTO line exists, -4 for TOOT, 0 otherwise. Each
// cell reports its first matching window; the last such cell on the board
// wins.
//
// chainScore sums the cube of every window's weighted match against OTTO, so
// near complete chains dominate scattered single chips.
func Evaluate(b domain.Board) (int64, int64) {
	t := int64(domain.T.Value())
	o := int64(domain.O.Value())

	var win, chain int64
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			windows := domain.Windows(b, row, col)

			for _, w := range windows {
				s := int64(w[0])*o + int64(w[1])*t + int64(w[2])*t + int64(w[3])*o
				chain += s * s * s
			}

			for _, w := range windows {
				if domain.IsTOOT(w) {
					win = -winSignal
					break
				}
				if domain.IsOTTO(w) {
					win = winSignal
					break
				}
			}
		}
	}

	return win, chain
}
