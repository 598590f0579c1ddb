package domain

import "time"

// Event types broadcast to connected sessions after successful mutations.
const (
	EventTypeIngresoCreated = "ingreso.created"
	EventTypeIngresoUpdated = "ingreso.updated"
	EventTypeIngresoDeleted = "ingreso.deleted"

	EventTypeGastoCreated = "gasto.created"
	EventTypeGastoUpdated = "gasto.updated"
	EventTypeGastoDeleted = "gasto.deleted"

	EventTypeRemuneracionCreated = "remuneracion.created"
	EventTypeRemuneracionUpdated = "remuneracion.updated"
	EventTypeRemuneracionDeleted = "remuneracion.deleted"

	EventTypeLegalCreated = "legal.created"
	EventTypeLegalUpdated = "legal.updated"
	EventTypeLegalDeleted = "legal.deleted"

	EventTypeRendicionCreated = "rendicion.created"
	EventTypeRendicionUpdated = "rendicion.updated"
	EventTypeRendicionDeleted = "rendicion.deleted"

	EventTypeSalidaCreated = "salida.created"
	EventTypeSalidaUpdated = "salida.updated"
	EventTypeSalidaDeleted = "salida.deleted"
)

// OutboxEvent is a mutation event staged in the same transaction as the
// mutation it describes and published asynchronously. Delivery is
// best-effort; the relational store stays the source of truth.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// NewOutboxEvent builds an event for an entity mutation.
func NewOutboxEvent(id, aggregateType, aggregateID, eventType string, payload map[string]any) *OutboxEvent {
	return &OutboxEvent{
		ID:            id,
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
}
