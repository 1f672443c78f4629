package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/toot-otto/internal/domain"
)

const (
	channelPrefix = "toototto:match:"
	boardPrefix   = "toototto:board:"
	boardTTL      = 1 * time.Hour
	publishWait   = 2 * time.Second
)

// FeedEvent is the JSON published for every match event
type FeedEvent struct {
	Type    string  `json:"type"`
	MatchID string  `json:"gameId"`
	Player  string  `json:"player,omitempty"`
	Chip    string  `json:"chip,omitempty"`
	Column  *int    `json:"column,omitempty"`
	Board   [][]int `json:"board,omitempty"`
	Winner  string  `json:"winner,omitempty"`
	Message string  `json:"message,omitempty"`
	At      int64   `json:"at"`
}

// MatchFeed publishes one match's events on its own channel. It only ever
// observes a game, so PlayerTurn always declines.
type MatchFeed struct {
	matchID string
	client  redis.Cmdable
	cache   *RedisCache
}

func NewMatchFeed(client redis.Cmdable, matchID string) *MatchFeed {
	return &MatchFeed{
		matchID: matchID,
		client:  client,
		cache:   NewRedisCache(client),
	}
}

func Channel(matchID string) string {
	return channelPrefix + matchID
}

func BoardKey(matchID string) string {
	return boardPrefix + matchID
}

func (f *MatchFeed) publish(ev FeedEvent) {
	ev.MatchID = f.matchID
	ev.At = time.Now().UnixMilli()

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[REDIS] Failed to encode %s event for match %s: %v", ev.Type, f.matchID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishWait)
	defer cancel()
	if err := f.client.Publish(ctx, Channel(f.matchID), payload).Err(); err != nil {
		log.Printf("[REDIS] Failed to publish %s event for match %s: %v", ev.Type, f.matchID, err)
	}
}

func (f *MatchFeed) Introduction() {
	f.publish(FeedEvent{Type: "game_start"})
}

func (f *MatchFeed) ShowBoard(b domain.Board) {
	grid := domain.ChipGrid(b)
	f.publish(FeedEvent{Type: "board", Board: grid})

	ctx, cancel := context.WithTimeout(context.Background(), publishWait)
	defer cancel()
	if err := f.cache.Set(ctx, BoardKey(f.matchID), domain.Render(b), boardTTL); err != nil {
		log.Printf("[REDIS] Failed to cache board for match %s: %v", f.matchID, err)
	}
}

func (f *MatchFeed) TurnMessage(name string) {
	f.publish(FeedEvent{Type: "turn", Player: name})
}

func (f *MatchFeed) PlayerTurn(cols int) (domain.ChipType, int, error) {
	return 0, -1, domain.ErrQuit
}

func (f *MatchFeed) SelectedColumn(name string, chip domain.ChipType, col int) {
	f.publish(FeedEvent{Type: "move_made", Player: name, Chip: chip.String(), Column: &col})
}

func (f *MatchFeed) InvalidMove(err error) {
	f.publish(FeedEvent{Type: "invalid_move", Message: err.Error()})
}

func (f *MatchFeed) GameOver(winner string) {
	f.publish(FeedEvent{Type: "game_over", Winner: winner})
}
