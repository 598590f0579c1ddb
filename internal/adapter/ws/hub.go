package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fletero/backoffice/internal/domain"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 60 * time.Second
	sendBuffer   = 32
)

// EventFrame is the JSON frame pushed to connected sessions.
type EventFrame struct {
	EventType     string         `json:"event_type"`
	AggregateType string         `json:"aggregate_type"`
	AggregateID   string         `json:"aggregate_id"`
	Payload       map[string]any `json:"payload,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Hub fans mutation events out to connected websocket sessions.
// Delivery is best-effort: a session whose send buffer is full is
// dropped rather than allowed to stall the broadcast loop.
type Hub struct {
	logger     zerolog.Logger
	register   chan *session
	unregister chan *session
	broadcast  chan *EventFrame
	done       chan struct{}
	upgrader   websocket.Upgrader
}

// NewHub creates a new Hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *session),
		unregister: make(chan *session),
		broadcast:  make(chan *EventFrame, sendBuffer),
		done:       make(chan struct{}),
		upgrader:   websocket.Upgrader{},
	}
}

type session struct {
	conn *websocket.Conn
	send chan *EventFrame
}

// Run owns the session set. It exits when ctx is cancelled, closing
// every connected session. New and in-flight connections observe the
// closed done channel instead of blocking on a loop that is gone.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	sessions := make(map[*session]struct{})

	for {
		select {
		case <-ctx.Done():
			for s := range sessions {
				close(s.send)
			}
			return
		case s := <-h.register:
			sessions[s] = struct{}{}
			h.logger.Debug().Int("sessions", len(sessions)).Msg("ws session connected")
		case s := <-h.unregister:
			if _, ok := sessions[s]; ok {
				delete(sessions, s)
				close(s.send)
			}
			h.logger.Debug().Int("sessions", len(sessions)).Msg("ws session disconnected")
		case frame := <-h.broadcast:
			for s := range sessions {
				select {
				case s.send <- frame:
				default:
					delete(sessions, s)
					close(s.send)
					h.logger.Warn().Msg("ws session dropped, send buffer full")
				}
			}
		}
	}
}

// Publish broadcasts a mutation event to every connected session.
func (h *Hub) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	frame := &EventFrame{
		EventType:     event.EventType,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		Payload:       event.Payload,
		CreatedAt:     event.CreatedAt,
	}

	select {
	case h.broadcast <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeHTTP upgrades the request and pumps events to the client until
// it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	s := &session{conn: conn, send: make(chan *EventFrame, sendBuffer)}
	select {
	case h.register <- s:
	case <-h.done:
		conn.Close()
		return
	}

	go s.writeLoop()
	s.readLoop()

	select {
	case h.unregister <- s:
	case <-h.done:
		// Run already closed every registered session on its way out.
	}
}

// writeLoop pushes frames and keepalive pings until the send channel
// closes.
func (s *session) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer s.conn.Close()

	for {
		select {
		case frame, ok := <-s.send:
			if !ok {
				s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			payload, err := json.Marshal(frame)
			if err != nil {
				continue
			}
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

// readLoop drains client frames. The stream is push-only; inbound
// messages are discarded, but the read pump is what detects disconnects.
func (s *session) readLoop() {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}
