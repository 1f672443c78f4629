package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewGameWithAIRenamesPlayerTwo(t *testing.T) {
	g, err := NewGame(DefaultRows, DefaultColumns, true, "Ann", "Bob")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if g.Player2 != ComputerName {
		t.Fatalf("expected player 2 to be %q, got %q", ComputerName, g.Player2)
	}
	if g.State != Running {
		t.Fatalf("expected a new game to be running, got %v", g.State)
	}
}

func TestMakeMoveAlternatesMoverIndependentOfChip(t *testing.T) {
	g, _ := NewGame(DefaultRows, DefaultColumns, false, "Ann", "Bob")

	first, err := g.MakeMove(O, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	second, err := g.MakeMove(O, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if first.Mover != MarkP1 || second.Mover != MarkP2 {
		t.Fatalf("expected movers P1 then P2, got %v then %v", first.Mover, second.Mover)
	}
	if first.Row != DefaultRows-1 || second.Row != DefaultRows-2 {
		t.Fatalf("expected rows %d and %d, got %d and %d", DefaultRows-1, DefaultRows-2, first.Row, second.Row)
	}
	if first.Index != 0 || second.Index != 1 || first.Value != -1 {
		t.Fatalf("unexpected move records %+v %+v", first, second)
	}
}

func TestInvalidMoveKeepsTurn(t *testing.T) {
	g, _ := NewGame(2, 4, false, "Ann", "Bob")
	g.MakeMove(T, 0)
	g.MakeMove(T, 0)

	before := g.CurrentPlayer()
	_, err := g.MakeMove(O, 0)
	if !errors.Is(err, ErrInvalidMove) || !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected invalid move wrapping column full, got %v", err)
	}
	_, err = g.MakeMove(O, 9)
	if !errors.Is(err, ErrInvalidMove) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid move wrapping invalid input, got %v", err)
	}
	_, err = g.MakeMove(ChipType(0), 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for a malformed chip, got %v", err)
	}

	if g.CurrentPlayer() != before || g.MoveCount != 2 || g.State != Running {
		t.Fatalf("expected turn and state unchanged after invalid moves")
	}
}

func TestPlayerOneWinsWithTOOT(t *testing.T) {
	g, _ := NewGame(DefaultRows, DefaultColumns, false, "Ann", "Bob")
	for col, chip := range []ChipType{T, O, O, T} {
		if _, err := g.MakeMove(chip, col); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if g.Status() != (Status{State: Done, Winner: "Ann"}) {
		t.Fatalf("expected Ann to win, got %+v", g.Status())
	}
	if g.Outcome() != Player1Wins {
		t.Fatalf("expected Player1Wins, got %v", g.Outcome())
	}
	if _, err := g.MakeMove(T, 5); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver after the game ended, got %v", err)
	}
}

func TestPlayerTwoWinsWithOTTO(t *testing.T) {
	g, _ := NewGame(DefaultRows, DefaultColumns, true, "Ann", "")
	for col, chip := range []ChipType{O, T, T, O} {
		g.MakeMove(chip, col)
	}

	if g.Winner != ComputerName {
		t.Fatalf("expected %q to win, got %q", ComputerName, g.Winner)
	}
}

func TestDrawLabelWhenBoardFills(t *testing.T) {
	g, _ := NewGame(2, 2, false, "Ann", "Bob")
	for i := 0; i < 4; i++ {
		g.MakeMove(T, i%2)
	}

	if g.Status() != (Status{State: Done, Winner: DrawLabel}) {
		t.Fatalf("expected draw, got %+v", g.Status())
	}
}

func TestStartResetsFinishedGame(t *testing.T) {
	g, _ := NewGame(1, 4, false, "Ann", "Bob")
	for col, chip := range []ChipType{T, O, O, T} {
		g.MakeMove(chip, col)
	}
	g.Start()

	if g.State != Running || g.MoveCount != 0 || g.Winner != "" || g.Board.Count() != 0 {
		t.Fatalf("expected a fresh running game, got %+v", g.Status())
	}
	if g.Board.Rows() != 1 || g.Board.Cols() != 4 {
		t.Fatalf("expected board dimensions to survive Start")
	}
}

func TestBusyStateStillAcceptsTheMoveInProgress(t *testing.T) {
	g, _ := NewGame(DefaultRows, DefaultColumns, false, "Ann", "Bob")
	if !g.MarkBusy() {
		t.Fatalf("expected running game to become busy")
	}
	if g.MarkBusy() {
		t.Fatalf("expected a busy game to refuse a second busy mark")
	}
	if _, err := g.MakeMove(T, 3); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	g.MarkIdle()
	if g.State != Running {
		t.Fatalf("expected running after idle, got %v", g.State)
	}
}

func TestOutcomeIsMonotonicAcrossRandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	chips := []ChipType{T, O}

	for game := 0; game < 100; game++ {
		g, _ := NewGame(DefaultRows, DefaultColumns, false, "Ann", "Bob")
		for !g.IsFinished() {
			valid := g.Board.ValidColumns()
			col := valid[rng.Intn(len(valid))]
			if _, err := g.MakeMove(chips[rng.Intn(2)], col); err != nil {
				t.Fatalf("game %d: unexpected error %v", game, err)
			}

			rescan := ScanLines(g.Board)
			switch {
			case !g.IsFinished() && rescan != None:
				t.Fatalf("game %d: line %v present but game still running", game, rescan)
			case g.IsFinished() && rescan == None && g.Winner != DrawLabel:
				t.Fatalf("game %d: finished without a line or a draw", game)
			}
		}
		if g.MoveCount < ToWin {
			t.Fatalf("game %d: finished after only %d moves", game, g.MoveCount)
		}
	}
}
