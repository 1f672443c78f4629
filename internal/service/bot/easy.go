package bot

import (
	"github.com/iamasit07/toot-otto/internal/domain"
)

// RandomMove picks a uniform chip and a uniform open column. The column is -1
// when the board is full.
func RandomMove(b domain.Board, rng Source) (domain.ChipType, int) {
	chip := domain.T
	if rng.Intn(2) == 1 {
		chip = domain.O
	}

	validColumns := b.ValidColumns()
	if len(validColumns) == 0 {
		return chip, -1
	}

	return chip, validColumns[rng.Intn(len(validColumns))]
}
