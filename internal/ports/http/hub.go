package httpport

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"valuedeck/internal/domain"
)

var upgrader = websocket.Upgrader{
	// Cross-origin policy is enforced by the CORS middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans committed room snapshots out to websocket subscribers, one
// connection set per room code. It implements app.Notifier.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
	log   *zap.Logger
}

// NewHub builds an empty Hub.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{rooms: make(map[string]map[*websocket.Conn]bool), log: log}
}

// Subscribe upgrades the request and registers the connection for the room
// in the path. The connection is dropped when the client goes away or a
// write fails.
func (h *Hub) Subscribe(c *gin.Context) {
	code := c.Param("code")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("room", code), zap.Error(err))
		return
	}

	h.add(code, conn)
	h.log.Info("websocket subscribed", zap.String("room", code))

	// Inbound traffic is only read to detect the close.
	go func() {
		defer h.remove(code, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) add(code string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[code] == nil {
		h.rooms[code] = make(map[*websocket.Conn]bool)
	}
	h.rooms[code][conn] = true
}

func (h *Hub) remove(code string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns := h.rooms[code]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, code)
		}
	}
	conn.Close()
}

type roomUpdatedMessage struct {
	Type string       `json:"type"`
	Room *domain.Room `json:"room"`
}

// RoomUpdated broadcasts a fresh snapshot to every subscriber of the room.
// The mutex is held across the writes: a gorilla connection tolerates only
// one concurrent writer, and concurrent commits on the same room each call
// in here. Connections that fail to take the write are dropped.
func (h *Hub) RoomUpdated(code string, room *domain.Room) {
	msg, err := json.Marshal(roomUpdatedMessage{Type: "room_updated", Room: room})
	if err != nil {
		h.log.Error("marshaling room update", zap.String("room", code), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[code] {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Warn("dropping dead subscriber", zap.String("room", code), zap.Error(err))
			delete(h.rooms[code], conn)
			conn.Close()
		}
	}
	if len(h.rooms[code]) == 0 {
		delete(h.rooms, code)
	}
}
