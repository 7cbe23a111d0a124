package order

import (
	"net/http"
	"time"

	"storefront/internal/feed"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 10 * time.Second

// Hub pushes order change notices to connected admin clients. Clients
// react by re-fetching the order list.
type Hub struct {
	feed     feed.Feed
	upgrader websocket.Upgrader
}

// NewHub allows the listed origins, or any origin when the list is empty.
func NewHub(f feed.Feed, allowedOrigins []string) *Hub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Hub{
		feed: f,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				return allowed[r.Header.Get("Origin")]
			},
		},
	}
}

// --------------------------------------------------
// GET /admin/orders/ws
// --------------------------------------------------
func (h *Hub) Serve(c *gin.Context) {
	events, cancel := h.feed.Subscribe()
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(gin.H{"type": ev.Type}); err != nil {
				return
			}
		}
	}
}
