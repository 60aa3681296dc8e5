package v1

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/keeperschule/booking-api/internal/api/handler/v1/response"
	"github.com/keeperschule/booking-api/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// FeedHandler pushes registration status changes to connected guardians.
// One guardian can hold several connections (browser tabs); each status
// update is fanned out to all of them. Delivery is best-effort.
type FeedHandler struct {
	clientsMutex sync.RWMutex
	clients      map[uint]map[*feedClient]struct{}
	register     chan registration
	unregister   chan registration
}

type registration struct {
	guardianID uint
	client     *feedClient
}

func NewFeedHandler() *FeedHandler {
	return &FeedHandler{
		clients:    make(map[uint]map[*feedClient]struct{}),
		register:   make(chan registration),
		unregister: make(chan registration),
	}
}

func (h *FeedHandler) Run() {
	for {
		select {
		case reg := <-h.register:
			h.clientsMutex.Lock()
			if h.clients[reg.guardianID] == nil {
				h.clients[reg.guardianID] = make(map[*feedClient]struct{})
			}
			h.clients[reg.guardianID][reg.client] = struct{}{}
			h.clientsMutex.Unlock()
		case reg := <-h.unregister:
			h.clientsMutex.Lock()
			if conns, ok := h.clients[reg.guardianID]; ok {
				if _, ok = conns[reg.client]; ok {
					delete(conns, reg.client)
					close(reg.client.send)
					if len(conns) == 0 {
						delete(h.clients, reg.guardianID)
					}
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// Publish implements service.StatusPublisher. Slow clients are dropped
// rather than blocking the save path.
func (h *FeedHandler) Publish(guardianID uint, updates []service.StatusUpdate) {
	message, err := json.Marshal(map[string]interface{}{
		"type":    "status_updates",
		"updates": updates,
	})
	if err != nil {
		zap.L().Warn("marshaling feed message failed", zap.Error(err))
		return
	}

	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	for client := range h.clients[guardianID] {
		select {
		case client.send <- message:
		default:
			zap.L().Warn("dropping slow feed client", zap.Uint("guardian_id", guardianID))
		}
	}
}

// HandleFeed godoc
// @Summary Establish WebSocket connection for the registration feed
// @Description Streams registration status changes for the authenticated guardian's keepers
// @Tags registrations
// @Produce json
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} response.Err
// @Failure 500 {object} response.Err
// @Router /registrations/feed [get]
// @Security BearerAuth
func (h *FeedHandler) HandleFeed(ctx *gin.Context) {
	guardianID, renderErr := guardianIDFromContext(ctx)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("upgrading feed connection failed", zap.Error(err))
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- registration{guardianID: guardianID, client: client}

	go client.writePump()
	go client.readPump(h, guardianID)
}

func (c *feedClient) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump drains the connection so close frames and pings are handled.
// The feed is one-directional; inbound payloads are discarded.
func (c *feedClient) readPump(h *FeedHandler, guardianID uint) {
	defer func() {
		h.unregister <- registration{guardianID: guardianID, client: c}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("feed connection closed unexpectedly", zap.Error(err))
			}
			break
		}
	}
}
