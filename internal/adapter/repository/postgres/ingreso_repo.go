package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// IngresoRepository implements usecase.IngresoRepository.
type IngresoRepository struct {
	pool *pgxpool.Pool
}

// NewIngresoRepository creates a new IngresoRepository.
func NewIngresoRepository(pool *pgxpool.Pool) *IngresoRepository {
	return &IngresoRepository{pool: pool}
}

const ingresoColumns = `id, tipo, observacion, recaudacion, localidad, sucursal, usuario, role_id, created_at`

// CreateTx inserts an ingreso within a transaction.
func (r *IngresoRepository) CreateTx(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO ingresos (id, tipo, observacion, recaudacion, localidad, sucursal, usuario, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ingreso.ID, ingreso.Tipo, ingreso.Observacion, decimalToNumeric(ingreso.Recaudacion),
		ingreso.Localidad, ingreso.Sucursal, ingreso.Usuario, ingreso.RoleID,
		timeToPgTimestamptz(ingreso.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves an ingreso by ID.
func (r *IngresoRepository) GetByID(ctx context.Context, id string) (*domain.Ingreso, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ingresoColumns+` FROM ingresos WHERE id = $1`, id)
	return scanIngreso(row)
}

// GetByIDForUpdate retrieves an ingreso by ID with a FOR UPDATE lock.
func (r *IngresoRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ingreso, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+ingresoColumns+` FROM ingresos WHERE id = $1 FOR UPDATE`, id)
	return scanIngreso(row)
}

// UpdateTx overwrites an ingreso within a transaction.
func (r *IngresoRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE ingresos
		 SET tipo = $1, observacion = $2, recaudacion = $3, usuario = $4, role_id = $5
		 WHERE id = $6`,
		ingreso.Tipo, ingreso.Observacion, decimalToNumeric(ingreso.Recaudacion),
		ingreso.Usuario, ingreso.RoleID, ingreso.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIngresoNotFound
	}
	return nil
}

// DeleteTx removes an ingreso within a transaction.
func (r *IngresoRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM ingresos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIngresoNotFound
	}
	return nil
}

// ListByLocalidad lists a location's ingresos, newest first.
func (r *IngresoRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Ingreso, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ingresoColumns+` FROM ingresos WHERE localidad = $1 ORDER BY created_at DESC`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIngresos(rows)
}

// ListAll lists every ingreso, newest first.
func (r *IngresoRepository) ListAll(ctx context.Context) ([]*domain.Ingreso, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ingresoColumns+` FROM ingresos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIngresos(rows)
}

// ListByCreatedBetween lists a location's ingresos created in [from, to).
func (r *IngresoRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Ingreso, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ingresoColumns+` FROM ingresos
		 WHERE localidad = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		localidad, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIngresos(rows)
}

func collectIngresos(rows pgx.Rows) ([]*domain.Ingreso, error) {
	var ingresos []*domain.Ingreso
	for rows.Next() {
		ingreso, err := scanIngreso(rows)
		if err != nil {
			return nil, err
		}
		ingresos = append(ingresos, ingreso)
	}
	return ingresos, rows.Err()
}

func scanIngreso(row rowScanner) (*domain.Ingreso, error) {
	var (
		ingreso     domain.Ingreso
		recaudacion pgtype.Numeric
		createdAt   pgtype.Timestamptz
	)
	err := row.Scan(&ingreso.ID, &ingreso.Tipo, &ingreso.Observacion, &recaudacion,
		&ingreso.Localidad, &ingreso.Sucursal, &ingreso.Usuario, &ingreso.RoleID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIngresoNotFound
		}
		return nil, err
	}
	ingreso.Recaudacion = numericToDecimal(recaudacion)
	ingreso.CreatedAt = createdAt.Time
	return &ingreso, nil
}
