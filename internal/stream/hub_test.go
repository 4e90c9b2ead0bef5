package stream

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/service"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	svcs := service.New(service.Deps{
		Generator: generator.New(rand.NewSource(9), func() time.Time {
			return time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)
		}),
		Logger: zerolog.Nop(),
	})
	hub := NewHub(svcs.Dashboards, nil, zerolog.Nop())
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestInitThenUpdate(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv, "?view=Supply%20Chain")

	msg := read(t, conn)
	if msg.Type != "init" || msg.Data.View != domain.SupplyChain {
		t.Fatalf("unexpected first message %s/%s", msg.Type, msg.Data.View)
	}
	if hub.Clients() != 1 {
		t.Fatalf("got %d clients", hub.Clients())
	}

	hub.Broadcast()
	msg = read(t, conn)
	if msg.Type != "update" || msg.Data.View != domain.SupplyChain || len(msg.Data.Table.Rows) != domain.SampleCount {
		t.Fatalf("unexpected update %s/%s", msg.Type, msg.Data.View)
	}
}

func TestDefaultView(t *testing.T) {
	_, srv := newTestHub(t)
	msg := read(t, dial(t, srv, ""))
	if msg.Data.View != domain.RealTimeMonitoring || msg.Data.Report == nil {
		t.Fatalf("expected real-time dashboard with report, got %s", msg.Data.View)
	}
}

func TestUnknownViewRejected(t *testing.T) {
	_, srv := newTestHub(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?view=Weather"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", resp)
	}
}

func TestClosedClientRemoved(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv, "")
	read(t, conn)
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client still registered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// gatedRenderer blocks its first Render until release is closed.
type gatedRenderer struct {
	Renderer
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedRenderer) Render(view domain.View) (*domain.Dashboard, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.Renderer.Render(view)
}

func TestInitPrecedesConcurrentBroadcast(t *testing.T) {
	svcs := service.New(service.Deps{
		Generator: generator.New(rand.NewSource(4), nil),
		Logger:    zerolog.Nop(),
	})
	gate := &gatedRenderer{
		Renderer: svcs.Dashboards,
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	hub := NewHub(gate, nil, zerolog.Nop())
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(srv.Close)

	conns := make(chan *websocket.Conn, 1)
	go func() {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			conns <- nil
			return
		}
		conns <- conn
	}()

	select {
	case <-gate.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("initial render never started")
	}
	hub.Broadcast()
	close(gate.release)

	conn := <-conns
	if conn == nil {
		t.Fatal("dial failed")
	}
	t.Cleanup(func() { conn.Close() })

	if msg := read(t, conn); msg.Type != "init" {
		t.Fatalf("first frame was %q", msg.Type)
	}
	hub.Broadcast()
	if msg := read(t, conn); msg.Type != "update" {
		t.Fatalf("second frame was %q", msg.Type)
	}
}

func TestHealthz(t *testing.T) {
	_, srv := newTestHub(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}
}
