package bot

import (
	"log"

	"github.com/iamasit07/toot-otto/internal/domain"
)

// CalculateBestMove runs the search and falls back to a random open column if
// the search comes back without a playable one
func CalculateBestMove(b domain.Board, s *Searcher, rng Source) (domain.ChipType, int) {
	choice := s.ChooseMove(b)
	if choice.Column >= 0 && !b.IsColumnFull(choice.Column) {
		return choice.Chip, choice.Column
	}

	log.Printf("[BOT] Search returned unplayable column %d, picking at random", choice.Column)
	chip, col := RandomMove(b, rng)
	return chip, col
}
