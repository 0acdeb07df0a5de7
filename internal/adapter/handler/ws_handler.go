package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
	"github.com/namhbcf1/smartpos-sub005/internal/core/service"
)

const (
	msgInit      = "init"
	msgPing      = "ping"
	msgPong      = "pong"
	msgUpdate    = "update"
	msgUpdateAck = "update_ack"
	msgError     = "error"

	msgInventoryUpdate = "inventory_update"

	writeTimeout   = 10 * time.Second
	maxMessageSize = 4096
)

// Envelope is the wire framing for every WebSocket message, both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outEnvelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type updatePayload struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
	Action    string `json:"action"`
}

type updateAckPayload struct {
	ProductID string `json:"productId"`
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
}

type pongPayload struct {
	Timestamp int64 `json:"timestamp"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// wsConnection adapts a gorilla conn to port.Connection. Gorilla allows only
// one concurrent writer, so Send serializes writes with a mutex; both the
// read-loop replies and registry broadcasts go through here.
type wsConnection struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConnection) Send(messageType string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(outEnvelope{Type: messageType, Data: data})
}

func (c *wsConnection) Close() error {
	return c.conn.Close()
}

// WSHandler upgrades /sync requests and runs one session per connection.
type WSHandler struct {
	directory *service.ActorDirectory
	registry  *service.ConnectionRegistry
	upgrader  websocket.Upgrader
}

func NewWSHandler(directory *service.ActorDirectory, registry *service.ConnectionRegistry) *WSHandler {
	return &WSHandler{
		directory: directory,
		registry:  registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth happens upstream; origin policy is not this layer's job.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Sync handles GET /sync?storeId=<key>&clientId=<id>.
func (h *WSHandler) Sync(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("storeId")
	if storeID == "" {
		http.Error(w, "missing storeId", http.StatusBadRequest)
		return
	}
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.New().String()
	}

	actor, err := h.directory.Get(r.Context(), storeID)
	if err != nil {
		log.Printf("ws: store %s unavailable: %v", storeID, err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed for store %s: %v", storeID, err)
		return
	}
	raw.SetReadLimit(maxMessageSize)

	conn := &wsConnection{conn: raw}
	now := time.Now()
	session := &service.Session{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		ClientID:    clientID,
		Conn:        conn,
		ConnectedAt: now,
		LastSeenAt:  now,
	}

	// The init frame carries the full current snapshot; the read through
	// the mailbox means it reflects a consistent point in the mutation
	// order. Register afterwards so the client never sees a delta that is
	// already folded into its init state getting lost.
	h.registry.Register(session)
	snapshot, err := actor.Snapshot(context.Background())
	if err != nil {
		h.registry.Unregister(session.ID)
		conn.Close()
		return
	}
	if err := conn.Send(msgInit, snapshot); err != nil {
		h.registry.Unregister(session.ID)
		conn.Close()
		return
	}

	h.readLoop(session, conn, actor)
}

func (h *WSHandler) readLoop(session *service.Session, conn *wsConnection, actor *service.PartitionActor) {
	defer func() {
		h.registry.Unregister(session.ID)
		conn.Close()
	}()

	for {
		_, raw, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ws: session %s read error: %v", session.ID, err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			conn.Send(msgError, errorPayload{Message: "malformed message"})
			continue
		}

		switch env.Type {
		case msgPing:
			h.registry.Touch(session.ID)
			conn.Send(msgPong, pongPayload{Timestamp: time.Now().UnixMilli()})

		case msgUpdate:
			h.handleUpdate(session, conn, actor, env.Data)

		default:
			conn.Send(msgError, errorPayload{Message: "unknown message type"})
		}
	}
}

func (h *WSHandler) handleUpdate(session *service.Session, conn *wsConnection, actor *service.PartitionActor, data json.RawMessage) {
	var payload updatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		conn.Send(msgError, errorPayload{Message: "malformed update"})
		return
	}
	if msg := validateWSUpdate(payload); msg != "" {
		conn.Send(msgError, errorPayload{Message: msg})
		return
	}

	// A cancelled or closed connection must not cancel the mutation once
	// the mailbox accepts it, hence the background context.
	_, err := actor.Apply(context.Background(), domain.MutationRequest{
		RequestID: uuid.New().String(),
		StoreID:   session.StoreID,
		ProductID: payload.ProductID,
		Action:    domain.Action(payload.Action),
		Amount:    *payload.Quantity,
		Source:    domain.SourceWebSocket,
	})
	if err != nil {
		conn.Send(msgError, errorPayload{Message: wsErrorMessage(err)})
		return
	}

	// Ack delivery failures are handled by the read loop noticing the dead
	// connection; the mutation itself is already committed and broadcast.
	conn.Send(msgUpdateAck, updateAckPayload{
		ProductID: payload.ProductID,
		Success:   true,
		Timestamp: time.Now().UnixMilli(),
	})
}

func validateWSUpdate(p updatePayload) string {
	if p.ProductID == "" {
		return "missing productId"
	}
	if p.Quantity == nil {
		return "missing quantity"
	}
	if *p.Quantity < 0 {
		return "quantity must be non-negative"
	}
	if !domain.Action(p.Action).Valid() {
		return "unknown action"
	}
	return ""
}

func wsErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidAction):
		return "invalid action"
	case errors.Is(err, service.ErrPersistenceFailure):
		return "failed to persist update"
	default:
		return "internal error"
	}
}
