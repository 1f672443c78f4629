package domain

import "fmt"

type Game struct {
	Board     Board
	Player1   string
	Player2   string
	WithAI    bool
	State     State
	Winner    string
	MoveCount int
	outcome   Outcome
}

func NewGame(rows, cols int, withAI bool, player1, player2 string) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Board:   board,
		Player1: player1,
		Player2: player2,
		State:   Running,
	}
	if withAI {
		g.Player2 = ComputerName
		g.WithAI = true
	}
	return g, nil
}

// Start resets the board and puts the game back into Running from any state
func (g *Game) Start() {
	g.Board, _ = NewBoard(g.Board.Rows(), g.Board.Cols())
	g.MoveCount = 0
	g.Winner = ""
	g.outcome = None
	g.State = Running
}

// MarkBusy flags a move in progress for front ends that accept input concurrently
func (g *Game) MarkBusy() bool {
	if g.State != Running {
		return false
	}
	g.State = Busy
	return true
}

func (g *Game) MarkIdle() {
	if g.State == Busy {
		g.State = Running
	}
}

// CurrentPlayer is decided by move parity, never by the chip being played
func (g *Game) CurrentPlayer() Mark {
	return MarkForMove(g.MoveCount)
}

func (g *Game) CurrentPlayerName() string {
	if g.CurrentPlayer() == MarkP1 {
		return g.Player1
	}
	return g.Player2
}

func (g *Game) IsAITurn() bool {
	return g.WithAI && g.CurrentPlayer() == MarkP2
}

func (g *Game) MakeMove(chip ChipType, column int) (Move, error) {
	if g.State != Running && g.State != Busy {
		return Move{}, ErrGameOver
	}

	if !chip.Valid() {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, ErrInvalidInput)
	}

	mover := g.CurrentPlayer()
	row, err := g.Board.Insert(column, Cell{Mover: mover, Chip: chip})
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	move := Move{
		Row:    row,
		Column: column,
		Index:  g.MoveCount,
		Chip:   chip,
		Mover:  mover,
		Value:  chip.Value(),
	}
	g.MoveCount++

	// a win is checked before the draw, and a finished game never reports a draw again
	outcome := CheckOutcome(g.Board, g.MoveCount, g.State)
	switch outcome {
	case Player1Wins:
		g.Winner = g.Player1
	case Player2Wins:
		g.Winner = g.Player2
	case Draw:
		g.Winner = DrawLabel
	}
	if outcome != None {
		g.outcome = outcome
		g.State = Done
	}

	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.State == Done
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Status() Status {
	return Status{State: g.State, Winner: g.Winner}
}
