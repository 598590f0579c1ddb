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

// RendicionRepository implements usecase.RendicionRepository.
type RendicionRepository struct {
	pool *pgxpool.Pool
}

// NewRendicionRepository creates a new RendicionRepository.
func NewRendicionRepository(pool *pgxpool.Pool) *RendicionRepository {
	return &RendicionRepository{pool: pool}
}

const rendicionColumns = `id, armador, rendicion_final, detalle, localidad, sucursal, usuario, role_id, created_at`

// CreateTx inserts a rendicion within a transaction.
func (r *RendicionRepository) CreateTx(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO rendiciones (id, armador, rendicion_final, detalle, localidad, sucursal, usuario, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rendicion.ID, rendicion.Armador, decimalToNumeric(rendicion.RendicionFinal), rendicion.Detalle,
		rendicion.Localidad, rendicion.Sucursal, rendicion.Usuario, rendicion.RoleID,
		timeToPgTimestamptz(rendicion.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a rendicion by ID.
func (r *RendicionRepository) GetByID(ctx context.Context, id string) (*domain.Rendicion, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+rendicionColumns+` FROM rendiciones WHERE id = $1`, id)
	return scanRendicion(row)
}

// GetByIDForUpdate retrieves a rendicion by ID with a FOR UPDATE lock.
func (r *RendicionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Rendicion, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+rendicionColumns+` FROM rendiciones WHERE id = $1 FOR UPDATE`, id)
	return scanRendicion(row)
}

// UpdateTx overwrites a rendicion within a transaction.
func (r *RendicionRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE rendiciones
		 SET armador = $1, rendicion_final = $2, detalle = $3, usuario = $4, role_id = $5
		 WHERE id = $6`,
		rendicion.Armador, decimalToNumeric(rendicion.RendicionFinal), rendicion.Detalle,
		rendicion.Usuario, rendicion.RoleID, rendicion.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRendicionNotFound
	}
	return nil
}

// DeleteTx removes a rendicion within a transaction.
func (r *RendicionRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM rendiciones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRendicionNotFound
	}
	return nil
}

// ListByLocalidad lists a location's rendiciones, newest first.
func (r *RendicionRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Rendicion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+rendicionColumns+` FROM rendiciones WHERE localidad = $1 ORDER BY created_at DESC`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRendiciones(rows)
}

// ListAll lists every rendicion, newest first.
func (r *RendicionRepository) ListAll(ctx context.Context) ([]*domain.Rendicion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+rendicionColumns+` FROM rendiciones ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRendiciones(rows)
}

// ListByCreatedBetween lists a location's rendiciones created in [from, to).
func (r *RendicionRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Rendicion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+rendicionColumns+` FROM rendiciones
		 WHERE localidad = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		localidad, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRendiciones(rows)
}

func collectRendiciones(rows pgx.Rows) ([]*domain.Rendicion, error) {
	var rendiciones []*domain.Rendicion
	for rows.Next() {
		rendicion, err := scanRendicion(rows)
		if err != nil {
			return nil, err
		}
		rendiciones = append(rendiciones, rendicion)
	}
	return rendiciones, rows.Err()
}

func scanRendicion(row rowScanner) (*domain.Rendicion, error) {
	var (
		rendicion      domain.Rendicion
		rendicionFinal pgtype.Numeric
		createdAt      pgtype.Timestamptz
	)
	err := row.Scan(&rendicion.ID, &rendicion.Armador, &rendicionFinal, &rendicion.Detalle,
		&rendicion.Localidad, &rendicion.Sucursal, &rendicion.Usuario, &rendicion.RoleID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRendicionNotFound
		}
		return nil, err
	}
	rendicion.RendicionFinal = numericToDecimal(rendicionFinal)
	rendicion.CreatedAt = createdAt.Time
	return &rendicion, nil
}
