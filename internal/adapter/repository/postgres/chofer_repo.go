package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fletero/backoffice/internal/domain"
)

// ChoferRepository implements usecase.ChoferRepository.
type ChoferRepository struct {
	pool *pgxpool.Pool
}

// NewChoferRepository creates a new ChoferRepository.
func NewChoferRepository(pool *pgxpool.Pool) *ChoferRepository {
	return &ChoferRepository{pool: pool}
}

const choferColumns = `id, nombre, vehiculo, telefono, localidad, sucursal, created_at`

// Create inserts a driver.
func (r *ChoferRepository) Create(ctx context.Context, chofer *domain.Chofer) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO choferes (id, nombre, vehiculo, telefono, localidad, sucursal, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		chofer.ID, chofer.Nombre, chofer.Vehiculo, chofer.Telefono,
		chofer.Localidad, chofer.Sucursal, timeToPgTimestamptz(chofer.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a driver by ID.
func (r *ChoferRepository) GetByID(ctx context.Context, id string) (*domain.Chofer, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+choferColumns+` FROM choferes WHERE id = $1`, id)
	return scanChofer(row)
}

// Update overwrites a driver's details.
func (r *ChoferRepository) Update(ctx context.Context, chofer *domain.Chofer) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE choferes
		 SET nombre = $1, vehiculo = $2, telefono = $3
		 WHERE id = $4`,
		chofer.Nombre, chofer.Vehiculo, chofer.Telefono, chofer.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChoferNotFound
	}
	return nil
}

// Delete removes a driver.
func (r *ChoferRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM choferes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChoferNotFound
	}
	return nil
}

// ListByLocalidad lists a location's drivers by name.
func (r *ChoferRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Chofer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+choferColumns+` FROM choferes WHERE localidad = $1 ORDER BY nombre`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var choferes []*domain.Chofer
	for rows.Next() {
		chofer, err := scanChofer(rows)
		if err != nil {
			return nil, err
		}
		choferes = append(choferes, chofer)
	}
	return choferes, rows.Err()
}

func scanChofer(row rowScanner) (*domain.Chofer, error) {
	var (
		chofer    domain.Chofer
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&chofer.ID, &chofer.Nombre, &chofer.Vehiculo, &chofer.Telefono,
		&chofer.Localidad, &chofer.Sucursal, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChoferNotFound
		}
		return nil, err
	}
	chofer.CreatedAt = createdAt.Time
	return &chofer, nil
}
