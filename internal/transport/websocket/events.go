package websocket

import (
	"log"

	"github.com/iamasit07/toot-otto/internal/domain"
)

type pendingMove struct {
	name string
	chip domain.ChipType
	col  int
}

// RemoteEvents turns controller notifications into server messages. A move
// is held until the next ShowBoard so move_made can carry the new board.
type RemoteEvents struct {
	client  *Client
	matchID string
	pending *pendingMove
}

func NewRemoteEvents(client *Client, matchID string) *RemoteEvents {
	return &RemoteEvents{client: client, matchID: matchID}
}

func (r *RemoteEvents) send(msg ServerMessage) {
	msg.GameID = r.matchID
	if err := r.client.Send(msg); err != nil {
		log.Printf("[WS] Failed to send %s for match %s: %v", msg.Type, r.matchID, err)
	}
}

func (r *RemoteEvents) Introduction() {}

func (r *RemoteEvents) ShowBoard(b domain.Board) {
	if r.pending == nil {
		return
	}
	m := r.pending
	r.pending = nil

	r.send(ServerMessage{
		Type:      "move_made",
		Row:       intPtr(topRow(b, m.col)),
		Column:    intPtr(m.col),
		MoveIndex: intPtr(b.Count() - 1),
		Chip:      m.chip.String(),
		Player:    m.name,
		Board:     domain.ChipGrid(b),
	})
}

func (r *RemoteEvents) TurnMessage(name string) {}

// PlayerTurn is never used, remote moves arrive as make_move messages
func (r *RemoteEvents) PlayerTurn(cols int) (domain.ChipType, int, error) {
	return 0, -1, domain.ErrQuit
}

func (r *RemoteEvents) SelectedColumn(name string, chip domain.ChipType, col int) {
	r.pending = &pendingMove{name: name, chip: chip, col: col}
}

func (r *RemoteEvents) InvalidMove(err error) {
	r.send(ServerMessage{Type: "error", Message: err.Error()})
}

func (r *RemoteEvents) GameOver(winner string) {
	r.send(ServerMessage{Type: "game_over", Winner: winner})
}

// topRow is the row of the highest chip in col, -1 for an empty column
func topRow(b domain.Board, col int) int {
	for row := 0; row < b.Rows(); row++ {
		if !b.Get(row, col).IsEmpty() {
			return row
		}
	}
	return -1
}
