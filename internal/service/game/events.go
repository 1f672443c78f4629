package game

import "github.com/iamasit07/toot-otto/internal/domain"

// Events is the front end a Controller drives. PlayerTurn blocks until the
// current human picks a chip and a column.
type Events interface {
	Introduction()
	ShowBoard(b domain.Board)
	TurnMessage(name string)
	PlayerTurn(cols int) (domain.ChipType, int, error)
	SelectedColumn(name string, chip domain.ChipType, col int)
	InvalidMove(err error)
	GameOver(winner string)
}

// MultiEvents tees every notification to all of its members. Input is only
// ever read from the first one.
type MultiEvents []Events

func (m MultiEvents) Introduction() {
	for _, e := range m {
		e.Introduction()
	}
}

func (m MultiEvents) ShowBoard(b domain.Board) {
	for _, e := range m {
		e.ShowBoard(b)
	}
}

func (m MultiEvents) TurnMessage(name string) {
	for _, e := range m {
		e.TurnMessage(name)
	}
}

func (m MultiEvents) PlayerTurn(cols int) (domain.ChipType, int, error) {
	if len(m) == 0 {
		return 0, -1, domain.ErrQuit
	}
	return m[0].PlayerTurn(cols)
}

func (m MultiEvents) SelectedColumn(name string, chip domain.ChipType, col int) {
	for _, e := range m {
		e.SelectedColumn(name, chip, col)
	}
}

func (m MultiEvents) InvalidMove(err error) {
	for _, e := range m {
		e.InvalidMove(err)
	}
}

func (m MultiEvents) GameOver(winner string) {
	for _, e := range m {
		e.GameOver(winner)
	}
}
