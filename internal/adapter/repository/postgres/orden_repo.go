package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fletero/backoffice/internal/domain"
)

// OrdenRepository implements usecase.OrdenRepository.
type OrdenRepository struct {
	pool *pgxpool.Pool
}

// NewOrdenRepository creates a new OrdenRepository.
func NewOrdenRepository(pool *pgxpool.Pool) *OrdenRepository {
	return &OrdenRepository{pool: pool}
}

const ordenColumns = `id, chofer, fecha_llegada, orden_firma, finalizado, created_at`

// Create inserts a work order.
func (r *OrdenRepository) Create(ctx context.Context, orden *domain.Orden) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ordenes (id, chofer, fecha_llegada, orden_firma, finalizado, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		orden.ID, orden.Chofer, timeToPgTimestamptz(orden.FechaLlegada), orden.OrdenFirma,
		orden.Finalizado, timeToPgTimestamptz(orden.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a work order by ID.
func (r *OrdenRepository) GetByID(ctx context.Context, id string) (*domain.Orden, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ordenColumns+` FROM ordenes WHERE id = $1`, id)
	return scanOrden(row)
}

// Update overwrites a work order.
func (r *OrdenRepository) Update(ctx context.Context, orden *domain.Orden) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ordenes
		 SET chofer = $1, fecha_llegada = $2, orden_firma = $3, finalizado = $4
		 WHERE id = $5`,
		orden.Chofer, timeToPgTimestamptz(orden.FechaLlegada), orden.OrdenFirma,
		orden.Finalizado, orden.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrdenNotFound
	}
	return nil
}

// Delete removes a work order.
func (r *OrdenRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ordenes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrdenNotFound
	}
	return nil
}

// List lists every work order, newest first.
func (r *OrdenRepository) List(ctx context.Context) ([]*domain.Orden, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ordenColumns+` FROM ordenes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrdenes(rows)
}

// ListByCreatedBetween lists work orders created in [from, to).
func (r *OrdenRepository) ListByCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Orden, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ordenColumns+` FROM ordenes
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC`,
		timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrdenes(rows)
}

func collectOrdenes(rows pgx.Rows) ([]*domain.Orden, error) {
	var ordenes []*domain.Orden
	for rows.Next() {
		orden, err := scanOrden(rows)
		if err != nil {
			return nil, err
		}
		ordenes = append(ordenes, orden)
	}
	return ordenes, rows.Err()
}

func scanOrden(row rowScanner) (*domain.Orden, error) {
	var (
		orden        domain.Orden
		fechaLlegada pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
	)
	err := row.Scan(&orden.ID, &orden.Chofer, &fechaLlegada, &orden.OrdenFirma, &orden.Finalizado, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrdenNotFound
		}
		return nil, err
	}
	orden.FechaLlegada = fechaLlegada.Time
	orden.CreatedAt = createdAt.Time
	return &orden, nil
}
