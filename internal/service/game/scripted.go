package game

import (
	"fmt"

	"github.com/iamasit07/toot-otto/internal/domain"
)

// ScriptedMove is one answer to PlayerTurn. A non-nil Err is returned instead
// of the move.
type ScriptedMove struct {
	Chip   domain.ChipType
	Column int
	Err    error
}

// ScriptedEvents replays a fixed list of human moves and records every
// callback it receives. Once the script runs out PlayerTurn returns ErrQuit.
type ScriptedEvents struct {
	Moves []ScriptedMove

	Calls    []string
	Boards   []string
	Selected []string
	Invalid  []error
	Winner   string
	Over     bool

	next int
}

func NewScriptedEvents(moves ...ScriptedMove) *ScriptedEvents {
	return &ScriptedEvents{Moves: moves}
}

func (s *ScriptedEvents) Introduction() {
	s.Calls = append(s.Calls, "introduction")
}

func (s *ScriptedEvents) ShowBoard(b domain.Board) {
	s.Calls = append(s.Calls, "show_board")
	s.Boards = append(s.Boards, domain.Render(b))
}

func (s *ScriptedEvents) TurnMessage(name string) {
	s.Calls = append(s.Calls, "turn:"+name)
}

func (s *ScriptedEvents) PlayerTurn(cols int) (domain.ChipType, int, error) {
	s.Calls = append(s.Calls, "player_turn")
	if s.next >= len(s.Moves) {
		return 0, -1, domain.ErrQuit
	}
	m := s.Moves[s.next]
	s.next++
	if m.Err != nil {
		return 0, -1, m.Err
	}
	return m.Chip, m.Column, nil
}

func (s *ScriptedEvents) SelectedColumn(name string, chip domain.ChipType, col int) {
	s.Calls = append(s.Calls, "selected")
	s.Selected = append(s.Selected, fmt.Sprintf("%s:%s:%d", name, chip, col))
}

func (s *ScriptedEvents) InvalidMove(err error) {
	s.Calls = append(s.Calls, "invalid")
	s.Invalid = append(s.Invalid, err)
}

func (s *ScriptedEvents) GameOver(winner string) {
	s.Calls = append(s.Calls, "game_over")
	s.Winner = winner
	s.Over = true
}

// Remaining is the number of scripted moves not yet handed out
func (s *ScriptedEvents) Remaining() int {
	return len(s.Moves) - s.next
}
