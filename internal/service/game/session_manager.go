package game

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/toot-otto/internal/domain"
	"github.com/iamasit07/toot-otto/internal/service/bot"
	"github.com/iamasit07/toot-otto/pkg/uid"
)

const (
	finishedMatchTTL = 1 * time.Hour
	staleMatchTTL    = 24 * time.Hour
)

// MatchOptions describes a new match. Callers resolve the seed, see config.Seed.
type MatchOptions struct {
	Rows    int
	Cols    int
	WithAI  bool
	Player1 string
	Player2 string
	Depth   int
	Seed    int64
	Debug   bool
}

type Match struct {
	ID         string
	Controller *Controller
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex
}

// MatchSummary is the public view of a match used by listings
type MatchSummary struct {
	ID        string    `json:"gameId"`
	Player1   string    `json:"player1"`
	Player2   string    `json:"player2"`
	WithAI    bool      `json:"withAI"`
	State     string    `json:"state"`
	Winner    string    `json:"winner,omitempty"`
	MoveCount int       `json:"moveCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionManager keeps the live matches of this process
type SessionManager struct {
	Matches map[string]*Match
	mu      sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		Matches: make(map[string]*Match),
	}
}

func (sm *SessionManager) CreateMatch(opts MatchOptions) (*Match, error) {
	g, err := domain.NewGame(opts.Rows, opts.Cols, opts.WithAI, opts.Player1, opts.Player2)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	searcher := bot.NewSearcher(opts.Depth, rng, bot.WithDebug(opts.Debug))

	match := &Match{
		ID:         uid.GenerateMatchID(),
		Controller: NewController(g, searcher, rng),
		CreatedAt:  time.Now(),
	}

	sm.mu.Lock()
	sm.Matches[match.ID] = match
	sm.mu.Unlock()

	log.Printf("[SESSION] Created match %s: %s vs %s (%dx%d, depth %d)",
		match.ID, g.Player1, g.Player2, g.Board.Rows(), g.Board.Cols(), searcher.Depth())
	return match, nil
}

func (sm *SessionManager) Get(id string) (*Match, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	match, exists := sm.Matches[id]
	return match, exists
}

func (sm *SessionManager) Remove(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Matches[id]; !exists {
		return fmt.Errorf("match %s not found", id)
	}
	delete(sm.Matches, id)
	log.Printf("[SESSION] Removed match %s", id)
	return nil
}

// Live lists matches that are still being played, oldest first
func (sm *SessionManager) Live() []MatchSummary {
	sm.mu.RLock()
	matches := make([]*Match, 0, len(sm.Matches))
	for _, m := range sm.Matches {
		matches = append(matches, m)
	}
	sm.mu.RUnlock()

	live := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		summary := m.Summary()
		if summary.State == domain.Done.String() {
			continue
		}
		live = append(live, summary)
	}
	sort.Slice(live, func(i, j int) bool {
		return live[i].CreatedAt.Before(live[j].CreatedAt)
	})
	return live
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Matches)
}

// CleanupOldMatches drops matches finished more than an hour ago and matches
// created more than a day ago, and returns how many were removed. The registry
// lock is never held while waiting on a match that is busy playing.
func (sm *SessionManager) CleanupOldMatches(now time.Time) int {
	sm.mu.RLock()
	matches := make([]*Match, 0, len(sm.Matches))
	for _, m := range sm.Matches {
		matches = append(matches, m)
	}
	sm.mu.RUnlock()

	var stale []string
	for _, m := range matches {
		if m.expired(now) {
			stale = append(stale, m.ID)
		}
	}
	if len(stale) == 0 {
		return 0
	}

	sm.mu.Lock()
	count := 0
	for _, id := range stale {
		if _, exists := sm.Matches[id]; exists {
			delete(sm.Matches, id)
			count++
		}
	}
	sm.mu.Unlock()

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale matches", count)
	}
	return count
}

func (m *Match) expired(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Controller.Game().IsFinished() && now.Sub(m.FinishedAt) > finishedMatchTTL {
		return true
	}
	return now.Sub(m.CreatedAt) > staleMatchTTL
}

// Submit plays a human move (and the computer's reply) under the match lock
func (m *Match) Submit(events Events, chip domain.ChipType, col int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.Controller.Turn(events, chip, col)
	if m.Controller.Game().IsFinished() && m.FinishedAt.IsZero() {
		m.FinishedAt = time.Now()
	}
	return err
}

// Snapshot returns a copy of the board together with the status
func (m *Match) Snapshot() (domain.Board, domain.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Controller.Board(), m.Controller.Status()
}

// NextTurn is the name of the player to move, empty once the match is over
func (m *Match) NextTurn() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := m.Controller.Game()
	if g.IsFinished() {
		return ""
	}
	return g.CurrentPlayerName()
}

func (m *Match) Summary() MatchSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := m.Controller.Game()
	return MatchSummary{
		ID:        m.ID,
		Player1:   g.Player1,
		Player2:   g.Player2,
		WithAI:    g.WithAI,
		State:     g.State.String(),
		Winner:    g.Winner,
		MoveCount: g.MoveCount,
		CreatedAt: m.CreatedAt,
	}
}
