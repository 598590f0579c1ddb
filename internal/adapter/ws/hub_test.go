package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fletero/backoffice/internal/domain"
)

func TestHubBroadcastsToConnectedSession(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Give the hub a moment to register the session.
	time.Sleep(50 * time.Millisecond)

	event := domain.NewOutboxEvent("evt-1", "ingreso", "ing-1", domain.EventTypeIngresoCreated, map[string]any{
		"localidad": "cordoba",
	})
	if err := hub.Publish(ctx, event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var frame EventFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if frame.EventType != domain.EventTypeIngresoCreated {
		t.Fatalf("expected event type %q, got %q", domain.EventTypeIngresoCreated, frame.EventType)
	}
	if frame.AggregateID != "ing-1" {
		t.Fatalf("expected aggregate ing-1, got %q", frame.AggregateID)
	}
	if frame.Payload["localidad"] != "cordoba" {
		t.Fatalf("expected localidad in payload, got %v", frame.Payload)
	}
}

func TestHubAcceptsConnectionsWithoutDeadlockAfterRunExits(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		// The server tore the connection down before the handshake
		// finished, which is also a prompt rejection.
		return
	}
	defer conn.Close()

	// The handler must close the connection instead of parking on the
	// register channel forever. A deadline error here means it hung.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if err == nil {
		t.Fatal("expected the connection to be closed")
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		t.Fatalf("connection stayed open after hub shutdown: %v", err)
	}
}

func TestHubPublishBlockedReturnsContextError(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// No Run loop draining; fill the broadcast buffer so Publish blocks.
	for i := 0; i < sendBuffer; i++ {
		hub.broadcast <- &EventFrame{}
	}

	pubCtx, pubCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer pubCancel()

	event := domain.NewOutboxEvent("evt-1", "ingreso", "ing-1", domain.EventTypeIngresoCreated, nil)
	if err := hub.Publish(pubCtx, event); err == nil {
		t.Fatalf("expected context error when broadcast buffer is full")
	}
}
