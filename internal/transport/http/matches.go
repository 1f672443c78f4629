package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/toot-otto/internal/domain"
	"github.com/iamasit07/toot-otto/internal/service/game"
	"github.com/iamasit07/toot-otto/pkg/uid"
)

type MatchHandler struct {
	SessionManager *game.SessionManager
}

func NewMatchHandler(sm *game.SessionManager) *MatchHandler {
	return &MatchHandler{SessionManager: sm}
}

type liveMatchResponse struct {
	GameID    string `json:"gameId"`
	Player1   string `json:"player1"`
	Player2   string `json:"player2"`
	WithAI    bool   `json:"withAI"`
	State     string `json:"state"`
	MoveCount int    `json:"moveCount"`
	StartedAt string `json:"startedAt"`
}

// GetLiveMatches returns every match that has not finished yet
func (h *MatchHandler) GetLiveMatches(c *gin.Context) {
	live := h.SessionManager.Live()

	response := make([]liveMatchResponse, 0, len(live))
	for _, m := range live {
		response = append(response, liveMatchResponse{
			GameID:    m.ID,
			Player1:   m.Player1,
			Player2:   m.Player2,
			WithAI:    m.WithAI,
			State:     m.State,
			MoveCount: m.MoveCount,
			StartedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetMatch returns the board and status of a single match
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id := c.Param("id")
	if !uid.IsMatchID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, exists := h.SessionManager.Get(id)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	summary := match.Summary()
	board, _ := match.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"gameId":    summary.ID,
		"player1":   summary.Player1,
		"player2":   summary.Player2,
		"state":     summary.State,
		"winner":    summary.Winner,
		"moveCount": summary.MoveCount,
		"nextTurn":  match.NextTurn(),
		"board":     boardRows(board),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// boardRows renders the board as one "T O _" string per row
func boardRows(b domain.Board) []string {
	return strings.Split(strings.TrimSuffix(domain.Render(b), "\n"), "\n")
}
