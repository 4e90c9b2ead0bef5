package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Renderer produces a fresh dashboard for a view.
type Renderer interface {
	Render(view domain.View) (*domain.Dashboard, error)
}

// Message is the envelope written to every subscriber.
type Message struct {
	Type string            `json:"type"`
	Data *domain.Dashboard `json:"data"`
}

type client struct {
	conn *websocket.Conn
	view domain.View
	mu   sync.Mutex
}

func (c *client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

// Hub pushes regenerated dashboards to websocket subscribers. Each client
// picks its view with ?view= and defaults to real-time monitoring.
type Hub struct {
	dashboards Renderer
	metrics    *metrics.Metrics
	log        zerolog.Logger

	clientsMu sync.RWMutex
	clients   map[*client]struct{}
}

func NewHub(r Renderer, m *metrics.Metrics, log zerolog.Logger) *Hub {
	if m == nil {
		m = metrics.Nop()
	}
	return &Hub{
		dashboards: r,
		metrics:    m,
		log:        log,
		clients:    make(map[*client]struct{}),
	}
}

func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			h.log.Debug().Err(err).Msg("healthz write failed")
		}
	})
	mux.HandleFunc("/ws", h.handleWebSocket)
	return mux
}

func (h *Hub) Clients() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	view := domain.RealTimeMonitoring
	if q := r.URL.Query().Get("view"); q != "" {
		v, err := domain.ParseView(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		view = v
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	d, err := h.dashboards.Render(view)
	if err != nil {
		h.log.Error().Err(err).Str("view", string(view)).Msg("initial render failed")
		conn.Close()
		return
	}

	// Broadcast waits on c.mu, so init is always the first frame.
	c := &client{conn: conn, view: view}
	c.mu.Lock()
	h.add(c)
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = c.conn.WriteJSON(Message{Type: "init", Data: d})
	c.mu.Unlock()
	defer h.remove(c)
	if err != nil {
		return
	}

	// Reads only detect the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) add(c *client) {
	h.clientsMu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.clientsMu.Unlock()
	h.metrics.SetStreamClients(n)
	h.log.Debug().Str("view", string(c.view)).Int("clients", n).Msg("stream client connected")
}

func (h *Hub) remove(c *client) {
	h.clientsMu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.clientsMu.Unlock()
	if ok {
		c.conn.Close()
		h.metrics.SetStreamClients(n)
	}
}

// Broadcast renders every view that has a subscriber once and sends it as
// an update. Clients whose write fails are dropped.
func (h *Hub) Broadcast() {
	h.clientsMu.RLock()
	byView := make(map[domain.View][]*client)
	for c := range h.clients {
		byView[c.view] = append(byView[c.view], c)
	}
	h.clientsMu.RUnlock()

	for view, subs := range byView {
		d, err := h.dashboards.Render(view)
		if err != nil {
			h.log.Error().Err(err).Str("view", string(view)).Msg("stream render failed")
			continue
		}
		msg := Message{Type: "update", Data: d}
		for _, c := range subs {
			if err := c.send(msg); err != nil {
				h.log.Debug().Err(err).Msg("dropping stream client")
				h.remove(c)
			}
		}
	}
}

// Run broadcasts every interval until ctx is cancelled.
func (h *Hub) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Broadcast()
		}
	}
}
