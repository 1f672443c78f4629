package domain

import "strings"

const (
	DefaultRows    = 6
	DefaultColumns = 7
	MaxCells       = 80
	ToWin          = 4
)

// ComputerName replaces player 2's name when the AI is playing
const ComputerName = "Computer"

// DrawLabel is the terminal label of a drawn game, it is never a player name
const DrawLabel = "Draw"

// which symbol sits in a cell
type ChipType int8

const (
	T ChipType = 1
	O ChipType = -1
)

// Value is the numeric cell value of the chip (+1 for T, -1 for O)
func (c ChipType) Value() int {
	return int(c)
}

func (c ChipType) Opposite() ChipType {
	return -c
}

func (c ChipType) Valid() bool {
	return c == T || c == O
}

func (c ChipType) String() string {
	switch c {
	case T:
		return "T"
	case O:
		return "O"
	}
	return "_"
}

// ParseChipType accepts "t", "T", "o" or "O" (surrounding space is ignored)
func ParseChipType(s string) (ChipType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T":
		return T, nil
	case "O":
		return O, nil
	}
	return 0, ErrInvalidInput
}

// who placed a chip, decided by move parity
type Mark int8

const (
	NoMark Mark = 0
	MarkP1 Mark = 1
	MarkP2 Mark = -1
)

// MarkForMove returns the mover of the move with the given 0-based index
func MarkForMove(index int) Mark {
	if index%2 == 0 {
		return MarkP1
	}
	return MarkP2
}

// Cell keeps both facts about a square: who moved there and which chip lies there
type Cell struct {
	Mover Mark
	Chip  ChipType
}

func (c Cell) IsEmpty() bool {
	return c.Chip == 0
}

// Move describes an accepted move
type Move struct {
	Row    int
	Column int
	Index  int
	Chip   ChipType
	Mover  Mark
	Value  int
}

// to represent the match lifecycle
type State int

const (
	NotStarted State = iota
	Running
	Busy
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Busy:
		return "busy"
	case Done:
		return "done"
	}
	return "unknown"
}

// result of a line scan
type Outcome int

const (
	None Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "player1"
	case Player2Wins:
		return "player2"
	case Draw:
		return "draw"
	}
	return "none"
}

// Status is what front ends poll between moves
type Status struct {
	State  State
	Winner string
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrInvalidInput Error = "invalid input"
	ErrGameOver     Error = "game is over"
	ErrQuit         Error = "player quit"
)
