package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/toot-otto/internal/config"
	"github.com/iamasit07/toot-otto/internal/domain"
	"github.com/iamasit07/toot-otto/internal/service/bot"
	"github.com/iamasit07/toot-otto/internal/service/game"
	"github.com/iamasit07/toot-otto/pkg/auth"
	"github.com/iamasit07/toot-otto/pkg/useragent"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// FeedFunc builds an extra observer for a match, such as the Redis feed
type FeedFunc func(matchID string) game.Events

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Config         *config.Config
	Feed           FeedFunc
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, cfg *config.Config, feed FeedFunc) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Config:         cfg,
		Feed:           feed,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// connection is the per-socket state: the client and the match it drives
type connection struct {
	client *Client
	match  *game.Match
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	log.Printf("[WS] New connection from %s (%s)", useragent.RemoteIP(r), useragent.Describe(r))
	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	c := &connection{client: NewClient(conn)}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.client.Ping(); err != nil {
					return
				}
			}
		}
	}()

	// The match stays registered so the player can resume it later
	defer func() {
		close(done)
		if c.match != nil {
			log.Printf("[WS] Connection closed for match %s", c.match.ID)
			h.ConnManager.DetachIfMatching(c.match.ID, c.client)
		}
		c.client.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.sendError(c, "Invalid message format")
			continue
		}

		h.processMessage(c, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(c *connection, msg ClientMessage) {
	switch msg.Type {
	case "new_game":
		h.handleNewGame(c, msg)

	case "resume":
		h.handleResume(c, msg)

	case "make_move":
		h.handleMove(c, msg)

	case "status":
		if c.match == nil {
			h.sendError(c, "No game in progress")
			return
		}
		h.sendStatus(c)

	default:
		h.sendError(c, "Unknown message type: "+msg.Type)
	}
}

func (h *Handler) handleNewGame(c *connection, msg ClientMessage) {
	opts := game.MatchOptions{
		Rows:    h.Config.Rows,
		Cols:    h.Config.Cols,
		WithAI:  h.Config.WithAI,
		Player1: h.Config.Player1Name,
		Player2: h.Config.Player2Name,
		Depth:   h.Config.SearchDepth,
		Seed:    h.Config.Seed(),
		Debug:   h.Config.AIDebug,
	}
	if msg.Rows > 0 {
		opts.Rows = msg.Rows
	}
	if msg.Cols > 0 {
		opts.Cols = msg.Cols
	}
	if msg.WithAI != nil {
		opts.WithAI = *msg.WithAI
	}
	if msg.Player != "" {
		opts.Player1 = msg.Player
	}
	if msg.Player2 != "" {
		opts.Player2 = msg.Player2
	}

	// searches run inside the read loop, so web matches get a smaller budget
	limit := bot.ClampDepth(h.Config.WebMaxDepth)
	if msg.Depth != 0 {
		if msg.Depth < bot.MinDepth || msg.Depth > limit {
			h.sendError(c, fmt.Sprintf("Depth must be between %d and %d", bot.MinDepth, limit))
			return
		}
		opts.Depth = msg.Depth
	} else if opts.Depth > limit {
		opts.Depth = limit
	}
	depth := bot.ClampDepth(opts.Depth)
	if opts.WithAI && bot.SearchCost(opts.Cols, depth) > bot.SearchCost(domain.DefaultColumns, limit) {
		h.sendError(c, fmt.Sprintf("Depth %d is too deep for a %d column board", depth, opts.Cols))
		return
	}

	match, err := h.SessionManager.CreateMatch(opts)
	if err != nil {
		log.Printf("[WS] Failed to create match: %v", err)
		h.sendError(c, err.Error())
		return
	}

	token, err := auth.GenerateMatchToken(match.ID, opts.Player1, h.Config.TokenSecret, h.Config.TokenTTL)
	if err != nil {
		log.Printf("[WS] Failed to sign token for match %s: %v", match.ID, err)
	}

	h.attach(c, match)
	h.sendStart(c, token)
	h.events(c).Introduction()
}

func (h *Handler) handleResume(c *connection, msg ClientMessage) {
	claims, err := auth.ValidateMatchToken(msg.Token, h.Config.TokenSecret)
	if err != nil {
		log.Printf("[WS] Invalid resume token: %v", err)
		h.sendError(c, "Invalid or expired token")
		return
	}

	match, exists := h.SessionManager.Get(claims.MatchID)
	if !exists {
		h.sendError(c, "Game not found")
		return
	}

	log.Printf("[WS] Match %s resumed by %s", match.ID, claims.Player)
	h.attach(c, match)
	h.sendStart(c, msg.Token)

	if _, status := match.Snapshot(); status.State == domain.Done {
		c.client.Send(ServerMessage{Type: "game_over", GameID: match.ID, Winner: status.Winner})
	}
}

func (h *Handler) handleMove(c *connection, msg ClientMessage) {
	if c.match == nil {
		h.sendError(c, "No game in progress")
		return
	}
	if !h.ConnManager.IsCurrent(c.match.ID, c.client) {
		h.sendError(c, "Game was resumed on another connection")
		return
	}
	if msg.Column == nil {
		h.sendError(c, "Missing column")
		return
	}

	chip, err := domain.ParseChipType(msg.Chip)
	if err != nil {
		h.sendError(c, "Chip must be T or O")
		return
	}

	if err := c.match.Submit(h.events(c), chip, *msg.Column); err != nil {
		if !errors.Is(err, domain.ErrInvalidMove) && !errors.Is(err, domain.ErrGameOver) {
			log.Printf("[WS] Move failed in match %s: %v", c.match.ID, err)
		}
		h.sendError(c, err.Error())
	}
}

func (h *Handler) attach(c *connection, match *game.Match) {
	if c.match != nil && c.match.ID != match.ID {
		h.ConnManager.DetachIfMatching(c.match.ID, c.client)
		// finished matches are dropped once their player starts another
		if _, status := c.match.Snapshot(); status.State == domain.Done {
			if err := h.SessionManager.Remove(c.match.ID); err != nil {
				log.Printf("[WS] %v", err)
			}
		}
	}
	c.match = match
	h.ConnManager.Attach(match.ID, c.client)
}

// events fans the match out to this socket and, when configured, the feed
func (h *Handler) events(c *connection) game.Events {
	remote := NewRemoteEvents(c.client, c.match.ID)
	if h.Feed == nil {
		return remote
	}
	if feed := h.Feed(c.match.ID); feed != nil {
		return game.MultiEvents{remote, feed}
	}
	return remote
}

func (h *Handler) sendStart(c *connection, token string) {
	board, _ := c.match.Snapshot()
	summary := c.match.Summary()
	c.client.Send(ServerMessage{
		Type:     "game_start",
		GameID:   c.match.ID,
		Token:    token,
		Player1:  summary.Player1,
		Player2:  summary.Player2,
		Board:    domain.ChipGrid(board),
		NextTurn: c.match.NextTurn(),
		State:    summary.State,
	})
}

func (h *Handler) sendStatus(c *connection) {
	board, status := c.match.Snapshot()
	c.client.Send(ServerMessage{
		Type:     "status",
		GameID:   c.match.ID,
		Board:    domain.ChipGrid(board),
		NextTurn: c.match.NextTurn(),
		State:    status.State.String(),
		Winner:   status.Winner,
	})
}

func (h *Handler) sendError(c *connection, message string) {
	if err := c.client.Send(ServerMessage{Type: "error", Message: message}); err != nil {
		log.Printf("[WS] Failed to send error: %v", err)
	}
}
