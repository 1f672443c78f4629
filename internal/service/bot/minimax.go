package bot

import (
	"log"

	"github.com/iamasit07/toot-otto/internal/domain"
)

const (
	MinDepth     = 1
	MaxDepth     = 5
	DefaultDepth = 3

	scoreWin  = 999999
	searchInf = 100000000007
)

// Source supplies the randomness used to break ties. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Choice is the move picked by the search
type Choice struct {
	Chip   domain.ChipType
	Column int
	Score  int64
}

// Searcher runs a depth limited minimax with alpha-beta pruning where every
// ply is split in two: one search per chip symbol, merged afterwards.
type Searcher struct {
	maxDepth int
	rng      Source
	pruning  bool
	debug    bool
}

type Option func(*Searcher)

// WithoutPruning keeps alpha and beta informational only, every node is expanded
func WithoutPruning() Option {
	return func(s *Searcher) { s.pruning = false }
}

// WithDebug logs the root value of both chip searches
func WithDebug(enabled bool) Option {
	return func(s *Searcher) { s.debug = enabled }
}

func NewSearcher(maxDepth int, rng Source, opts ...Option) *Searcher {
	s := &Searcher{
		maxDepth: ClampDepth(maxDepth),
		rng:      rng,
		pruning:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClampDepth keeps a requested depth inside [MinDepth, MaxDepth]
func ClampDepth(depth int) int {
	if depth < MinDepth {
		return MinDepth
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}

// SearchCost estimates the leaves a search of the given depth visits when
// every ply tries both chips in every column
func SearchCost(cols, depth int) int64 {
	n := int64(1)
	for i := 0; i < depth; i++ {
		n *= int64(2 * cols)
	}
	return n
}

func (s *Searcher) Depth() int {
	return s.maxDepth
}

// ChooseMove searches once assuming the bot plays T and once assuming O, then
// keeps the better root. Column is -1 when the board has no room left.
func (s *Searcher) ChooseMove(b domain.Board) Choice {
	tVal, tCol := s.maxState(b, 0, -searchInf, searchInf, domain.T)
	oVal, oCol := s.maxState(b, 0, -searchInf, searchInf, domain.O)

	if s.debug {
		log.Printf("[BOT] ChipType => (value, column) ;; T => (%d, %d) ;; O => (%d, %d)", tVal, tCol, oVal, oCol)
	}

	if tVal > oVal {
		return Choice{Chip: domain.T, Column: tCol, Score: tVal}
	}
	if tVal < oVal {
		return Choice{Chip: domain.O, Column: oCol, Score: oVal}
	}
	if s.coin() {
		return Choice{Chip: domain.T, Column: tCol, Score: tVal}
	}
	return Choice{Chip: domain.O, Column: oCol, Score: oVal}
}

// Score returns the root value of the search where the bot plays chip
func (s *Searcher) Score(b domain.Board, chip domain.ChipType) int64 {
	v, _ := s.maxState(b, 0, -searchInf, searchInf, chip)
	return v
}

// value is the ply dispatcher. Even depths belong to the opponent, odd depths
// to the bot, whatever chip is being tried.
func (s *Searcher) value(b domain.Board, depth int, alpha, beta int64, aiChip domain.ChipType) (int64, int) {
	win, chain := Evaluate(b)
	penalty := int64(depth * depth)

	// a full board cannot be expanded and is scored like a leaf
	if depth >= s.maxDepth || b.IsFull() {
		switch win {
		case winSignal:
			return scoreWin - penalty, -1
		case -winSignal:
			return -(scoreWin - penalty), -1
		}
		return chain*int64(aiChip.Value()) - penalty, -1
	}

	// quicker wins score higher and quicker losses score lower
	if win == winSignal {
		return scoreWin - penalty, -1
	}
	if win == -winSignal {
		return -(scoreWin - penalty), -1
	}

	if depth%2 == 0 {
		tVal, tCol := s.minState(b, depth+1, alpha, beta, domain.T)
		oVal, oCol := s.minState(b, depth+1, alpha, beta, domain.O)

		// assume the opponent takes whichever symbol hurts the bot most
		if tVal > oVal {
			return oVal, oCol
		}
		if tVal < oVal {
			return tVal, tCol
		}
		if s.coin() {
			return tVal, tCol
		}
		return oVal, oCol
	}

	tVal, tCol := s.maxState(b, depth+1, alpha, beta, domain.T)
	oVal, oCol := s.maxState(b, depth+1, alpha, beta, domain.O)

	if tVal > oVal {
		return tVal, tCol
	}
	if tVal < oVal {
		return oVal, oCol
	}
	if s.coin() {
		return tVal, tCol
	}
	return oVal, oCol
}

// maxState drops aiChip in every open column and keeps the best, choosing at
// random among equally scored columns
func (s *Searcher) maxState(b domain.Board, depth int, alpha, beta int64, aiChip domain.ChipType) (int64, int) {
	v := int64(-searchInf)
	var queue []int

	for col := 0; col < b.Cols(); col++ {
		child, ok := fill(b, col, aiChip)
		if !ok {
			continue
		}

		score, _ := s.value(child, depth, alpha, beta, aiChip)
		if score > v {
			v = score
			queue = append(queue[:0], col)
		} else if score == v {
			queue = append(queue, col)
		}

		if s.pruning && v > beta {
			return v, s.choose(queue)
		}
		alpha = max(alpha, v)
	}

	if len(queue) == 0 {
		return v, -1
	}
	return v, s.choose(queue)
}

// minState is the opponent's reply: it places the other symbol and keeps the worst
func (s *Searcher) minState(b domain.Board, depth int, alpha, beta int64, aiChip domain.ChipType) (int64, int) {
	v := int64(searchInf)
	var queue []int

	for col := 0; col < b.Cols(); col++ {
		child, ok := fill(b, col, aiChip.Opposite())
		if !ok {
			continue
		}

		score, _ := s.value(child, depth, alpha, beta, aiChip)
		if score < v {
			v = score
			queue = append(queue[:0], col)
		} else if score == v {
			queue = append(queue, col)
		}

		if s.pruning && v < alpha {
			return v, s.choose(queue)
		}
		beta = min(beta, v)
	}

	if len(queue) == 0 {
		return v, -1
	}
	return v, s.choose(queue)
}

// fill returns a copy of b with chip dropped into col
func fill(b domain.Board, col int, chip domain.ChipType) (domain.Board, bool) {
	if b.IsColumnFull(col) {
		return b, false
	}
	b.Insert(col, domain.Cell{Chip: chip})
	return b, true
}

func (s *Searcher) choose(cols []int) int {
	return cols[s.rng.Intn(len(cols))]
}

func (s *Searcher) coin() bool {
	return s.rng.Intn(2) == 0
}
