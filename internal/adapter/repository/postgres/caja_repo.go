package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// CajaRepository implements usecase.CajaRepository.
type CajaRepository struct {
	pool *pgxpool.Pool
}

// NewCajaRepository creates a new CajaRepository.
func NewCajaRepository(pool *pgxpool.Pool) *CajaRepository {
	return &CajaRepository{pool: pool}
}

const cajaColumns = `id, localidad, sucursal, total, created_at, updated_at`

// Create inserts the caja row for a location. The unique index on
// localidad makes a second provision a conflict.
func (r *CajaRepository) Create(ctx context.Context, caja *domain.Caja) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO caja (id, localidad, sucursal, total, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		caja.ID, caja.Localidad, caja.Sucursal, decimalToNumeric(caja.Total),
		timeToPgTimestamptz(caja.CreatedAt), timeToPgTimestamptz(caja.UpdatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a caja by ID.
func (r *CajaRepository) GetByID(ctx context.Context, id string) (*domain.Caja, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+cajaColumns+` FROM caja WHERE id = $1`, id)
	return scanCaja(row)
}

// ListByLocation lists cajas for a location; an empty sucursal matches
// every branch.
func (r *CajaRepository) ListByLocation(ctx context.Context, localidad, sucursal string) ([]*domain.Caja, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cajaColumns+` FROM caja
		 WHERE localidad = $1 AND ($2 = '' OR sucursal = $2)
		 ORDER BY created_at`,
		localidad, sucursal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cajas []*domain.Caja
	for rows.Next() {
		caja, err := scanCaja(rows)
		if err != nil {
			return nil, err
		}
		cajas = append(cajas, caja)
	}
	return cajas, rows.Err()
}

// AdjustTotal applies a signed delta to a location's caja as a single
// atomic statement. There is no read-then-write: the database computes
// the new total, so concurrent adjustments never lose updates.
func (r *CajaRepository) AdjustTotal(ctx context.Context, tx usecase.Transaction, localidad string, delta decimal.Decimal) (*domain.Caja, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`UPDATE caja
		 SET total = total + $1, updated_at = now()
		 WHERE localidad = $2
		 RETURNING `+cajaColumns,
		decimalToNumeric(delta), localidad)

	caja, err := scanCaja(row)
	if err != nil {
		if errors.Is(err, domain.ErrCajaNotFound) {
			return nil, domain.ErrCajaNotFound
		}
		return nil, err
	}
	return caja, nil
}

// SetTotal overrides a caja total.
func (r *CajaRepository) SetTotal(ctx context.Context, id string, total decimal.Decimal) (*domain.Caja, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE caja
		 SET total = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+cajaColumns,
		decimalToNumeric(total), id)
	return scanCaja(row)
}

// MovementSum recomputes the signed sum of every movement row for a
// location. Gastos are stored negated, so a plain sum is correct.
func (r *CajaRepository) MovementSum(ctx context.Context, localidad string) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto), 0) FROM (
		     SELECT recaudacion AS monto FROM ingresos WHERE localidad = $1
		     UNION ALL
		     SELECT recaudacion FROM egresos WHERE localidad = $1
		     UNION ALL
		     SELECT recaudacion FROM remuneraciones WHERE localidad = $1
		     UNION ALL
		     SELECT recaudacion FROM legales WHERE localidad = $1
		     UNION ALL
		     SELECT rendicion_final FROM rendiciones WHERE localidad = $1
		 ) movimientos`,
		localidad).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return numericToDecimal(sum), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCaja(row rowScanner) (*domain.Caja, error) {
	var (
		caja      domain.Caja
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&caja.ID, &caja.Localidad, &caja.Sucursal, &total, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCajaNotFound
		}
		return nil, err
	}
	caja.Total = numericToDecimal(total)
	caja.CreatedAt = createdAt.Time
	caja.UpdatedAt = updatedAt.Time
	return &caja, nil
}
