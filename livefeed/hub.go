package livefeed

import (
	"context"
	"log"
	"net/http"
	"sync"

	"restring/mq"
	"restring/rdx"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced at the HTTP layer
		return true
	},
}

// Hub fans booking events out to connected dashboard sessions.
type Hub struct {
	subscribers []*websocket.Conn
	mu          sync.Mutex
}

func NewHub() *Hub {
	return &Hub{}
}

// HandleWS keeps the connection open until the client disconnects.
// Authentication happens in the middleware wrapping this handler.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		return
	}

	h.mu.Lock()
	h.subscribers = append(h.subscribers, conn)
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
	conn.Close()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	newList := make([]*websocket.Conn, 0, len(h.subscribers))
	for _, c := range h.subscribers {
		if c != conn {
			newList = append(newList, c)
		}
	}
	h.subscribers = newList
}

// Broadcast writes val to every subscriber, dropping dead connections.
func (h *Hub) Broadcast(val []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	newList := h.subscribers[:0]
	for _, conn := range h.subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, val); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	h.subscribers = newList
}

// StartBridge relays booking events from Redis to the hub. Runs until
// ctx is cancelled; meant to be launched from main.
func (h *Hub) StartBridge(ctx context.Context) {
	if rdx.Conn == nil {
		return
	}
	sub := rdx.Conn.Subscribe(ctx, mq.Channel)
	defer sub.Close()

	ch := sub.Channel()
	log.Println("[livefeed] listening for booking events")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.Broadcast([]byte(msg.Payload))
		}
	}
}
