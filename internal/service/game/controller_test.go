package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/iamasit07/toot-otto/internal/domain"
	"github.com/iamasit07/toot-otto/internal/service/bot"
)

func newController(t *testing.T, withAI bool, seed int64) *Controller {
	t.Helper()
	g, err := domain.NewGame(domain.DefaultRows, domain.DefaultColumns, withAI, "Ann", "Bob")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	return NewController(g, bot.NewSearcher(2, rng), rng)
}

func TestPlayScriptedHotSeatGameEndsWithTOOT(t *testing.T) {
	c := newController(t, false, 1)
	events := NewScriptedEvents(
		ScriptedMove{Chip: domain.T, Column: 0},
		ScriptedMove{Chip: domain.O, Column: 0},
		ScriptedMove{Chip: domain.O, Column: 9},
		ScriptedMove{Err: domain.ErrInvalidInput},
		ScriptedMove{Chip: domain.O, Column: 1},
		ScriptedMove{Chip: domain.O, Column: 1},
		ScriptedMove{Chip: domain.O, Column: 2},
		ScriptedMove{Chip: domain.O, Column: 2},
		ScriptedMove{Chip: domain.T, Column: 3},
	)

	if err := c.Play(context.Background(), events); err != nil {
		t.Fatalf("play: %v", err)
	}

	if !events.Over || events.Winner != "Ann" {
		t.Fatalf("expected Ann to win, got over=%v winner=%q", events.Over, events.Winner)
	}
	if status := c.Status(); status.State != domain.Done || status.Winner != "Ann" {
		t.Fatalf("unexpected status %+v", status)
	}
	if len(events.Invalid) != 2 {
		t.Fatalf("expected 2 rejected inputs, got %v", events.Invalid)
	}
	if !errors.Is(events.Invalid[0], domain.ErrInvalidMove) || !errors.Is(events.Invalid[0], domain.ErrInvalidInput) {
		t.Fatalf("expected out of range column to be an invalid move, got %v", events.Invalid[0])
	}
	if len(events.Selected) != 7 {
		t.Fatalf("expected 7 accepted moves, got %v", events.Selected)
	}
	// the rejected inputs came from Ann, so she was asked again
	if events.Selected[2] != "Ann:O:1" {
		t.Fatalf("expected Ann to retry with O in column 1, got %s", events.Selected[2])
	}
	if events.Remaining() != 0 {
		t.Fatalf("expected the whole script to be used, %d left", events.Remaining())
	}
	if events.Calls[0] != "introduction" || events.Calls[len(events.Calls)-1] != "game_over" {
		t.Fatalf("unexpected call order %v", events.Calls)
	}
}

func TestPlayReturnsQuit(t *testing.T) {
	c := newController(t, true, 4)
	events := NewScriptedEvents(ScriptedMove{Chip: domain.T, Column: 3})

	err := c.Play(context.Background(), events)
	if !errors.Is(err, domain.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if len(events.Selected) != 2 {
		t.Fatalf("expected the human move and the computer's reply, got %v", events.Selected)
	}
	if c.Game().MoveCount != 2 || events.Over {
		t.Fatalf("expected a running game with 2 moves, got %d", c.Game().MoveCount)
	}
}

func TestPlayStopsOnCancelledContext(t *testing.T) {
	c := newController(t, false, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := NewScriptedEvents(ScriptedMove{Chip: domain.T, Column: 0})
	if err := c.Play(ctx, events); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if events.Remaining() != 1 {
		t.Fatalf("expected no input to be read")
	}
}

func TestAIMakeMoveTakesTheWin(t *testing.T) {
	c := newController(t, true, 1)
	for _, m := range []struct {
		chip domain.ChipType
		col  int
	}{{domain.O, 0}, {domain.T, 1}, {domain.T, 2}} {
		if _, err := c.ApplyMove(m.chip, m.col); err != nil {
			t.Fatalf("apply %v in %d: %v", m.chip, m.col, err)
		}
	}
	if !c.Game().IsAITurn() {
		t.Fatalf("expected the computer to be next")
	}

	chip, col := c.AISelectMove()
	if chip != domain.O || col != 3 {
		t.Fatalf("expected O in column 3, got %v in %d", chip, col)
	}
	if c.Game().MoveCount != 3 {
		t.Fatalf("AISelectMove must not play")
	}

	move, err := c.AIMakeMove()
	if err != nil {
		t.Fatalf("ai move: %v", err)
	}
	if move.Mover != domain.MarkP2 || move.Row != domain.DefaultRows-1 {
		t.Fatalf("unexpected move %+v", move)
	}
	if status := c.Status(); status.State != domain.Done || status.Winner != domain.ComputerName {
		t.Fatalf("expected the computer to win, got %+v", status)
	}

	if _, err := c.AIMakeMove(); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("expected ErrGameOver after the end, got %v", err)
	}
}

func TestTurnPlaysComputerReply(t *testing.T) {
	c := newController(t, true, 9)
	events := NewScriptedEvents()

	if err := c.Turn(events, domain.O, 3); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if c.Game().MoveCount != 2 {
		t.Fatalf("expected 2 moves after one turn, got %d", c.Game().MoveCount)
	}
	if len(events.Selected) != 2 || events.Selected[0] != "Ann:O:3" {
		t.Fatalf("unexpected selections %v", events.Selected)
	}
	if c.Game().IsAITurn() {
		t.Fatalf("expected the human to be next")
	}
}

func TestTurnRejectsFullColumn(t *testing.T) {
	c := newController(t, false, 2)
	events := NewScriptedEvents()
	for i := 0; i < domain.DefaultRows; i++ {
		if err := c.Turn(events, domain.T, 0); err != nil {
			t.Fatalf("fill column: %v", err)
		}
	}

	err := c.Turn(events, domain.O, 0)
	if !errors.Is(err, domain.ErrColumnFull) || !errors.Is(err, domain.ErrInvalidMove) {
		t.Fatalf("expected a full column error, got %v", err)
	}
	if c.Game().MoveCount != domain.DefaultRows {
		t.Fatalf("expected the rejected move to leave the count at %d, got %d", domain.DefaultRows, c.Game().MoveCount)
	}
}

func TestMultiEventsFansOut(t *testing.T) {
	first, second := NewScriptedEvents(ScriptedMove{Chip: domain.O, Column: 2}), NewScriptedEvents()
	multi := MultiEvents{first, second}

	multi.TurnMessage("Ann")
	multi.GameOver("Draw")
	chip, col, err := multi.PlayerTurn(7)
	if err != nil || chip != domain.O || col != 2 {
		t.Fatalf("expected input from the first member, got %v %d %v", chip, col, err)
	}
	if !second.Over || second.Winner != "Draw" || len(second.Calls) != 2 {
		t.Fatalf("expected notifications on every member, got %v", second.Calls)
	}
	if _, _, err := (MultiEvents{}).PlayerTurn(7); !errors.Is(err, domain.ErrQuit) {
		t.Fatalf("expected ErrQuit from an empty fan-out, got %v", err)
	}
}
