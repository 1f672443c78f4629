package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/toot-otto/internal/transport/http/middleware"
)

// NewRouter wires the REST endpoints and the websocket upgrade onto one engine
func NewRouter(matches *MatchHandler, ws http.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", Health)
		api.GET("/matches", matches.GetLiveMatches)
		api.GET("/matches/:id", matches.GetMatch)
	}

	r.GET("/ws", gin.WrapF(ws))
	return r
}
