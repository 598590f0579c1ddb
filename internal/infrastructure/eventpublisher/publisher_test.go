package eventpublisher

import (
	"context"
	"errors"
	"testing"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase/mocks"
)

type capturingPublisher struct {
	published []*domain.OutboxEvent
	failOn    string
}

func (p *capturingPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	if p.failOn != "" && event.ID == p.failOn {
		return errors.New("publish failed")
	}
	p.published = append(p.published, event)
	return nil
}

func TestEventPublisherProcessesBatch(t *testing.T) {
	outbox := mocks.NewMockOutboxRepository()
	pub := &capturingPublisher{}
	ep := NewEventPublisher(Config{OutboxRepo: outbox, Publisher: pub})

	ctx := context.Background()
	e1 := domain.NewOutboxEvent("evt-1", "ingreso", "ing-1", domain.EventTypeIngresoCreated, nil)
	e2 := domain.NewOutboxEvent("evt-2", "gasto", "gas-1", domain.EventTypeGastoCreated, nil)
	if err := outbox.Create(ctx, e1); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := outbox.Create(ctx, e2); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := ep.processEvents(ctx); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if len(pub.published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(pub.published))
	}

	remaining, err := outbox.GetUnpublished(ctx, 10)
	if err != nil {
		t.Fatalf("get unpublished failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected all events marked published, %d remain", len(remaining))
	}
}

func TestEventPublisherKeepsFailedEventsUnpublished(t *testing.T) {
	outbox := mocks.NewMockOutboxRepository()
	pub := &capturingPublisher{failOn: "evt-1"}
	ep := NewEventPublisher(Config{OutboxRepo: outbox, Publisher: pub})

	ctx := context.Background()
	e1 := domain.NewOutboxEvent("evt-1", "ingreso", "ing-1", domain.EventTypeIngresoCreated, nil)
	e2 := domain.NewOutboxEvent("evt-2", "gasto", "gas-1", domain.EventTypeGastoCreated, nil)
	outbox.Create(ctx, e1)
	outbox.Create(ctx, e2)

	if err := ep.processEvents(ctx); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	// The failed event stays in the outbox for the next pass.
	remaining, err := outbox.GetUnpublished(ctx, 10)
	if err != nil {
		t.Fatalf("get unpublished failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "evt-1" {
		t.Fatalf("expected evt-1 to remain unpublished, got %v", remaining)
	}
	if len(pub.published) != 1 || pub.published[0].ID != "evt-2" {
		t.Fatalf("expected evt-2 published despite evt-1 failure")
	}
}
