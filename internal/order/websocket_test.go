package order

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/feed"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestHub_PushesOrderChanges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	b := feed.NewBroadcaster()
	r := gin.New()
	r.GET("/admin/orders/ws", NewHub(b, nil).Serve)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	b.Publish(context.Background(), feed.Event{Type: feed.OrdersChanged, OrderID: "o1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]string
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg["type"] != feed.OrdersChanged {
		t.Fatalf("unexpected message %v", msg)
	}
	if _, ok := msg["order_id"]; ok {
		t.Fatal("clients only get the change type")
	}
}

func TestHub_RejectsUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ws", NewHub(feed.NewBroadcaster(), []string{"https://admin.example.com"}).Serve)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := map[string][]string{"Origin": {"https://evil.example.com"}}
	if _, _, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		t.Fatal("expected handshake to fail for unknown origin")
	}
}
