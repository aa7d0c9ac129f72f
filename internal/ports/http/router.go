package httpport

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the room API and the websocket endpoint onto a gin engine.
func NewRouter(h *Handler, hub *Hub, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		api.POST("/rooms", h.createRoom)
		api.GET("/rooms/:code", h.getRoom)
		api.POST("/rooms/:code/join", h.joinRoom)
		api.POST("/rooms/:code/start", h.startGame)
		api.POST("/rooms/:code/draw-deck", h.drawFromDeck)
		api.POST("/rooms/:code/draw-discard", h.drawFromDiscard)
		api.POST("/rooms/:code/discard", h.discard)
		api.POST("/rooms/:code/skip", h.skip)
		api.GET("/rooms/:code/players/:playerId/analysis", h.analysis)
	}

	r.GET("/ws/rooms/:code", hub.Subscribe)

	return r
}
