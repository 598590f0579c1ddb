package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// OutboxRepository implements usecase.OutboxRepository.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository creates a new OutboxRepository.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

const outboxColumns = `id, aggregate_id, aggregate_type, event_type, payload, created_at, published_at, published`

const insertOutboxEvent = `INSERT INTO outbox_events (id, aggregate_id, aggregate_type, event_type, payload, created_at, published)
	 VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create inserts an outbox event outside any transaction.
func (r *OutboxRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, insertOutboxEvent,
		event.ID, event.AggregateID, event.AggregateType, event.EventType,
		payload, timeToPgTimestamptz(event.CreatedAt), event.Published)
	return err
}

// CreateTx inserts an outbox event within the mutation's transaction.
func (r *OutboxRepository) CreateTx(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	pgxTx := tx.(*Tx).PgxTx()

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	_, err = pgxTx.Exec(ctx, insertOutboxEvent,
		event.ID, event.AggregateID, event.AggregateType, event.EventType,
		payload, timeToPgTimestamptz(event.CreatedAt), event.Published)
	return err
}

// GetUnpublished retrieves unpublished events, oldest first.
func (r *OutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+outboxColumns+` FROM outbox_events
		 WHERE published = false
		 ORDER BY created_at
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.OutboxEvent
	for rows.Next() {
		event, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// MarkPublished marks an event as published.
func (r *OutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE outbox_events SET published = true, published_at = $1 WHERE id = $2`,
		timeToPgTimestamptz(publishedAt), id)
	return err
}

// DeletePublished deletes published events older than the given time.
func (r *OutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM outbox_events WHERE published = true AND published_at < $1`,
		timeToPgTimestamptz(before))
	return err
}

func scanOutboxEvent(row rowScanner) (*domain.OutboxEvent, error) {
	var (
		event       domain.OutboxEvent
		payload     []byte
		createdAt   pgtype.Timestamptz
		publishedAt pgtype.Timestamptz
	)
	err := row.Scan(&event.ID, &event.AggregateID, &event.AggregateType, &event.EventType,
		&payload, &createdAt, &publishedAt, &event.Published)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		_ = json.Unmarshal(payload, &event.Payload)
	}
	event.CreatedAt = createdAt.Time
	if publishedAt.Valid {
		t := publishedAt.Time
		event.PublishedAt = &t
	}
	return &event, nil
}
