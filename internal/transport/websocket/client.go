package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Client wraps one socket. gorilla connections allow a single concurrent
// writer, so every write goes through writeMu.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// Send writes a JSON message to the socket
func (c *Client) Send(message ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ConnectionManager maps each match to the socket currently driving it
type ConnectionManager struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		clients: make(map[string]*Client),
	}
}

// Attach makes client the driver of matchID. A previous socket on the same
// match is closed, so a resumed match only has one live connection.
func (cm *ConnectionManager) Attach(matchID string, client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if old, exists := cm.clients[matchID]; exists && old != client {
		old.Close()
	}
	cm.clients[matchID] = client
}

// DetachIfMatching avoids closing a newer connection when an old one cleans up
func (cm *ConnectionManager) DetachIfMatching(matchID string, client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if current, exists := cm.clients[matchID]; exists && current == client {
		delete(cm.clients, matchID)
	}
}

func (cm *ConnectionManager) IsCurrent(matchID string, client *Client) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	current, exists := cm.clients[matchID]
	return exists && current == client
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}
