package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/toot-otto/internal/config"
	"github.com/iamasit07/toot-otto/internal/domain"
	"github.com/iamasit07/toot-otto/internal/service/bot"
	"github.com/iamasit07/toot-otto/internal/service/game"
	"github.com/iamasit07/toot-otto/internal/transport/console"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config.LoadEnvFile()
	cfg := config.LoadConfig()

	// Flags override the environment
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "board rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "board columns")
	flag.IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "computer search depth (1-5)")
	flag.BoolVar(&cfg.WithAI, "ai", cfg.WithAI, "play against the computer")
	flag.StringVar(&cfg.Player1Name, "p1", cfg.Player1Name, "player 1 name")
	flag.StringVar(&cfg.Player2Name, "p2", cfg.Player2Name, "player 2 name")
	flag.Int64Var(&cfg.AISeed, "seed", cfg.AISeed, "random seed, 0 picks one from the clock")
	flag.BoolVar(&cfg.AIDebug, "debug", cfg.AIDebug, "log search values")
	flag.Parse()

	g, err := domain.NewGame(cfg.Rows, cfg.Cols, cfg.WithAI, cfg.Player1Name, cfg.Player2Name)
	if err != nil {
		return fmt.Errorf("new game %dx%d: %w", cfg.Rows, cfg.Cols, err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed()))
	searcher := bot.NewSearcher(cfg.SearchDepth, rng, bot.WithDebug(cfg.AIDebug))
	controller := game.NewController(g, searcher, rng)

	// the terminal belongs to tcell, keep log output out of it
	log.SetOutput(logSink())

	screen, err := console.NewScreen()
	if err != nil {
		return err
	}
	frontend := console.New(screen)
	defer frontend.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = controller.Play(ctx, frontend)
	switch {
	case err == nil:
		frontend.WaitForKey()
		return nil
	case errors.Is(err, domain.ErrQuit), errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

// logSink sends logs to TOOTOTTO_LOG when set and drops them otherwise
func logSink() *os.File {
	if path := config.GetEnv("TOOTOTTO_LOG", ""); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return f
		}
	}
	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return os.Stderr
	}
	return f
}
