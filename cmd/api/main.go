package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/toot-otto/internal/config"
	"github.com/iamasit07/toot-otto/internal/repository/redis"
	"github.com/iamasit07/toot-otto/internal/service/cleanup"
	"github.com/iamasit07/toot-otto/internal/service/game"
	transportHttp "github.com/iamasit07/toot-otto/internal/transport/http"
	"github.com/iamasit07/toot-otto/internal/transport/websocket"
)

func main() {
	config.LoadEnvFile()
	cfg := config.LoadConfig()

	// 1. Live match feed (optional)
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var feed websocket.FeedFunc
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		feed = func(matchID string) game.Events {
			return redis.NewMatchFeed(redis.RedisClient, matchID)
		}
	}

	// 2. Match registry and its sweeper
	sessionManager := game.NewSessionManager()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanup.NewWorker(sessionManager, cleanup.DefaultInterval).Start(ctx)

	// 3. Handlers
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg, feed)
	matchHandler := transportHttp.NewMatchHandler(sessionManager)

	router := transportHttp.NewRouter(matchHandler, wsHandler.HandleWebSocket)

	// Serve a built web client when one is shipped next to the binary
	if _, err := os.Stat("./static"); err == nil {
		router.Static("/assets", "./static/assets")
		router.GET("/", func(c *gin.Context) {
			c.File("./static/index.html")
		})
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasPrefix(c.Request.URL.Path, "/assets/") {
				c.Status(http.StatusNotFound)
				return
			}
			c.File("./static/index.html")
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s (board %dx%d, search depth %d)", cfg.Port, cfg.Rows, cfg.Cols, cfg.SearchDepth)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
