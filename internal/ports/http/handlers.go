// Package httpport is the HTTP/WebSocket adapter over the app service. It
// owns input binding, error-to-status mapping and live room push; all game
// rules live below it.
package httpport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"valuedeck/internal/app"
	"valuedeck/internal/domain"
	"valuedeck/internal/scoring"
	"valuedeck/internal/store"
)

// Handler bundles the gin handlers for the room API.
type Handler struct {
	svc *app.Service
	log *zap.Logger
}

// NewHandler builds a Handler.
func NewHandler(svc *app.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

type createRoomRequest struct {
	PlayerID         string `json:"playerId" binding:"required"`
	PlayerName       string `json:"playerName" binding:"required"`
	CardCount        int    `json:"cardCount" binding:"required"`
	TurnTimerSeconds int    `json:"turnTimerSeconds"`
}

type joinRoomRequest struct {
	PlayerID   string `json:"playerId" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

type playerRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

type drawDiscardRequest struct {
	PlayerID     string `json:"playerId" binding:"required"`
	FromPlayerID string `json:"fromPlayerId" binding:"required"`
	CardIndex    *int   `json:"cardIndex" binding:"required"`
}

type discardRequest struct {
	PlayerID string   `json:"playerId" binding:"required"`
	CardID   *int     `json:"cardId" binding:"required"`
	DelaySec *float64 `json:"delaySec"`
}

func (h *Handler) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.CreateRoom(c.Request.Context(), req.PlayerID, req.PlayerName, req.CardCount, req.TurnTimerSeconds)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) joinRoom(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.JoinRoom(c.Request.Context(), c.Param("code"), req.PlayerID, req.PlayerName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) startGame(c *gin.Context) {
	room, err := h.svc.StartGame(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) getRoom(c *gin.Context) {
	room, err := h.svc.Room(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) drawFromDeck(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.DrawFromDeck(c.Request.Context(), c.Param("code"), req.PlayerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) drawFromDiscard(c *gin.Context) {
	var req drawDiscardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.DrawFromDiscard(c.Request.Context(), c.Param("code"), req.PlayerID, req.FromPlayerID, *req.CardIndex)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) discard(c *gin.Context) {
	var req discardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delay := 0.0
	if req.DelaySec != nil {
		delay = *req.DelaySec
	}
	room, err := h.svc.DiscardAndAdvance(c.Request.Context(), c.Param("code"), req.PlayerID, domain.CardID(*req.CardID), delay)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) skip(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.Skip(c.Request.Context(), c.Param("code"), req.PlayerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) analysis(c *gin.Context) {
	result, err := h.svc.Analyze(c.Request.Context(), c.Param("code"), c.Param("playerId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeError maps domain failures onto HTTP statuses: missing resources are
// 404, rule violations against the current snapshot are 409, malformed input
// and data errors are 400, host-only actions are 403.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrRoomNotFound), errors.Is(err, app.ErrUnknownPlayer):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrWrongPhase),
		errors.Is(err, domain.ErrEmptyDeck),
		errors.Is(err, domain.ErrEmptyPile),
		errors.Is(err, domain.ErrInvalidIndex),
		errors.Is(err, domain.ErrCardNotInHand),
		errors.Is(err, domain.ErrNotStarted),
		errors.Is(err, domain.ErrGameOver),
		errors.Is(err, domain.ErrNoPlayers),
		errors.Is(err, domain.ErrInsufficientCards),
		errors.Is(err, app.ErrAlreadyStarted),
		errors.Is(err, app.ErrNotFinished):
		status = http.StatusConflict
	case errors.Is(err, app.ErrBadCardCount),
		errors.Is(err, scoring.ErrInvalidTurnIndex),
		errors.Is(err, scoring.ErrUnknownCard):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
