package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/toot-otto/internal/service/game"
)

const DefaultInterval = 10 * time.Minute

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	now            func() time.Time
}

func NewWorker(sm *game.SessionManager, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Worker{SessionManager: sm, Interval: interval, now: time.Now}
}

// Start sweeps once right away and then on every tick until ctx is done
func (w *Worker) Start(ctx context.Context) {
	go func() {
		w.runCleanup()

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	removed := w.SessionManager.CleanupOldMatches(w.now())
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d matches, %d still registered", removed, w.SessionManager.Count())
	}
	return removed
}
