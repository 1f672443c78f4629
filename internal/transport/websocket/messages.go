package websocket

// ClientMessage is anything a browser sends over the socket
type ClientMessage struct {
	Type    string `json:"type"`
	WithAI  *bool  `json:"withAI,omitempty"`
	Player  string `json:"player,omitempty"`
	Player2 string `json:"player2,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Cols    int    `json:"cols,omitempty"`
	Depth   int    `json:"depth,omitempty"`
	Token   string `json:"token,omitempty"`
	Chip    string `json:"chip,omitempty"`
	Column  *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type      string  `json:"type"`
	GameID    string  `json:"gameId,omitempty"`
	Token     string  `json:"token,omitempty"`
	Player1   string  `json:"player1,omitempty"`
	Player2   string  `json:"player2,omitempty"`
	Board     [][]int `json:"board,omitempty"`
	NextTurn  string  `json:"nextTurn,omitempty"`
	Row       *int    `json:"row,omitempty"`
	Column    *int    `json:"column,omitempty"`
	MoveIndex *int    `json:"moveIndex,omitempty"`
	Chip      string  `json:"chip,omitempty"`
	Player    string  `json:"player,omitempty"`
	State     string  `json:"state,omitempty"`
	Winner    string  `json:"winner,omitempty"`
	Message   string  `json:"message,omitempty"`
}

func intPtr(v int) *int {
	return &v
}
