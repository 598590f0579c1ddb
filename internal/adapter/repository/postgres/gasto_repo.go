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

// GastoRepository implements usecase.GastoRepository. Gastos live in the
// egresos table and their recaudacion is stored already negated.
type GastoRepository struct {
	pool *pgxpool.Pool
}

// NewGastoRepository creates a new GastoRepository.
func NewGastoRepository(pool *pgxpool.Pool) *GastoRepository {
	return &GastoRepository{pool: pool}
}

const gastoColumns = `id, tipo, observacion, recaudacion, localidad, sucursal, usuario, role_id, created_at`

// CreateTx inserts a gasto within a transaction.
func (r *GastoRepository) CreateTx(ctx context.Context, tx usecase.Transaction, gasto *domain.Gasto) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO egresos (id, tipo, observacion, recaudacion, localidad, sucursal, usuario, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		gasto.ID, gasto.Tipo, gasto.Observacion, decimalToNumeric(gasto.Recaudacion),
		gasto.Localidad, gasto.Sucursal, gasto.Usuario, gasto.RoleID,
		timeToPgTimestamptz(gasto.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a gasto by ID.
func (r *GastoRepository) GetByID(ctx context.Context, id string) (*domain.Gasto, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+gastoColumns+` FROM egresos WHERE id = $1`, id)
	return scanGasto(row)
}

// GetByIDForUpdate retrieves a gasto by ID with a FOR UPDATE lock.
func (r *GastoRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Gasto, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+gastoColumns+` FROM egresos WHERE id = $1 FOR UPDATE`, id)
	return scanGasto(row)
}

// UpdateTx overwrites a gasto within a transaction, binding every column
// to its own parameter.
func (r *GastoRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, gasto *domain.Gasto) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE egresos
		 SET tipo = $1, observacion = $2, recaudacion = $3, usuario = $4, role_id = $5
		 WHERE id = $6`,
		gasto.Tipo, gasto.Observacion, decimalToNumeric(gasto.Recaudacion),
		gasto.Usuario, gasto.RoleID, gasto.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGastoNotFound
	}
	return nil
}

// DeleteTx removes a gasto within a transaction.
func (r *GastoRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM egresos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGastoNotFound
	}
	return nil
}

// ListByLocalidad lists a location's gastos, newest first.
func (r *GastoRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Gasto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+gastoColumns+` FROM egresos WHERE localidad = $1 ORDER BY created_at DESC`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGastos(rows)
}

// ListAll lists every gasto, newest first.
func (r *GastoRepository) ListAll(ctx context.Context) ([]*domain.Gasto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+gastoColumns+` FROM egresos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGastos(rows)
}

// ListByCreatedBetween lists a location's gastos created in [from, to).
func (r *GastoRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Gasto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+gastoColumns+` FROM egresos
		 WHERE localidad = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		localidad, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGastos(rows)
}

func collectGastos(rows pgx.Rows) ([]*domain.Gasto, error) {
	var gastos []*domain.Gasto
	for rows.Next() {
		gasto, err := scanGasto(rows)
		if err != nil {
			return nil, err
		}
		gastos = append(gastos, gasto)
	}
	return gastos, rows.Err()
}

func scanGasto(row rowScanner) (*domain.Gasto, error) {
	var (
		gasto       domain.Gasto
		recaudacion pgtype.Numeric
		createdAt   pgtype.Timestamptz
	)
	err := row.Scan(&gasto.ID, &gasto.Tipo, &gasto.Observacion, &recaudacion,
		&gasto.Localidad, &gasto.Sucursal, &gasto.Usuario, &gasto.RoleID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGastoNotFound
		}
		return nil, err
	}
	gasto.Recaudacion = numericToDecimal(recaudacion)
	gasto.CreatedAt = createdAt.Time
	return &gasto, nil
}
