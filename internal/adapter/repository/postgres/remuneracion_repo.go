package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// RemuneracionRepository implements usecase.RemuneracionRepository.
type RemuneracionRepository struct {
	pool *pgxpool.Pool
}

// NewRemuneracionRepository creates a new RemuneracionRepository.
func NewRemuneracionRepository(pool *pgxpool.Pool) *RemuneracionRepository {
	return &RemuneracionRepository{pool: pool}
}

const remuneracionColumns = `id, armador, fecha_carga, fecha_entrega, km_lineal, pago_fletero_espera,
	viaticos, auto, refuerzo, recaudacion, chofer, datos_cliente, localidad, sucursal, usuario, role_id, created_at`

// CreateTx inserts a remuneracion within a transaction.
func (r *RemuneracionRepository) CreateTx(ctx context.Context, tx usecase.Transaction, rem *domain.Remuneracion) error {
	pgxTx := tx.(*Tx).PgxTx()

	datosCliente, err := json.Marshal(rem.DatosCliente)
	if err != nil {
		return err
	}

	_, err = pgxTx.Exec(ctx,
		`INSERT INTO remuneraciones (id, armador, fecha_carga, fecha_entrega, km_lineal, pago_fletero_espera,
		     viaticos, auto, refuerzo, recaudacion, chofer, datos_cliente, localidad, sucursal, usuario, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		rem.ID, rem.Armador, timeToPgTimestamptz(rem.FechaCarga), timeToPgTimestamptz(rem.FechaEntrega),
		decimalToNumeric(rem.KmLineal), decimalToNumeric(rem.PagoFleteroEspera),
		decimalToNumeric(rem.Viaticos), decimalToNumeric(rem.Auto), decimalToNumeric(rem.Refuerzo),
		decimalToNumeric(rem.Recaudacion), rem.Chofer, datosCliente,
		rem.Localidad, rem.Sucursal, rem.Usuario, rem.RoleID, timeToPgTimestamptz(rem.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a remuneracion by ID.
func (r *RemuneracionRepository) GetByID(ctx context.Context, id string) (*domain.Remuneracion, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+remuneracionColumns+` FROM remuneraciones WHERE id = $1`, id)
	return scanRemuneracion(row)
}

// GetByIDForUpdate retrieves a remuneracion by ID with a FOR UPDATE lock.
func (r *RemuneracionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Remuneracion, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+remuneracionColumns+` FROM remuneraciones WHERE id = $1 FOR UPDATE`, id)
	return scanRemuneracion(row)
}

// UpdateTx overwrites a remuneracion within a transaction.
func (r *RemuneracionRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, rem *domain.Remuneracion) error {
	pgxTx := tx.(*Tx).PgxTx()

	datosCliente, err := json.Marshal(rem.DatosCliente)
	if err != nil {
		return err
	}

	tag, err := pgxTx.Exec(ctx,
		`UPDATE remuneraciones
		 SET armador = $1, fecha_carga = $2, fecha_entrega = $3, km_lineal = $4, pago_fletero_espera = $5,
		     viaticos = $6, auto = $7, refuerzo = $8, recaudacion = $9, chofer = $10, datos_cliente = $11,
		     usuario = $12, role_id = $13
		 WHERE id = $14`,
		rem.Armador, timeToPgTimestamptz(rem.FechaCarga), timeToPgTimestamptz(rem.FechaEntrega),
		decimalToNumeric(rem.KmLineal), decimalToNumeric(rem.PagoFleteroEspera),
		decimalToNumeric(rem.Viaticos), decimalToNumeric(rem.Auto), decimalToNumeric(rem.Refuerzo),
		decimalToNumeric(rem.Recaudacion), rem.Chofer, datosCliente,
		rem.Usuario, rem.RoleID, rem.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRemuneracionNotFound
	}
	return nil
}

// DeleteTx removes a remuneracion within a transaction.
func (r *RemuneracionRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM remuneraciones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRemuneracionNotFound
	}
	return nil
}

// ListByLocalidad lists a location's remuneraciones, newest first.
func (r *RemuneracionRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Remuneracion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+remuneracionColumns+` FROM remuneraciones WHERE localidad = $1 ORDER BY created_at DESC`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRemuneraciones(rows)
}

// ListAll lists every remuneracion, newest first.
func (r *RemuneracionRepository) ListAll(ctx context.Context) ([]*domain.Remuneracion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+remuneracionColumns+` FROM remuneraciones ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRemuneraciones(rows)
}

// ListByCreatedBetween lists a location's remuneraciones created in [from, to).
func (r *RemuneracionRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Remuneracion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+remuneracionColumns+` FROM remuneraciones
		 WHERE localidad = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		localidad, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRemuneraciones(rows)
}

func collectRemuneraciones(rows pgx.Rows) ([]*domain.Remuneracion, error) {
	var rems []*domain.Remuneracion
	for rows.Next() {
		rem, err := scanRemuneracion(rows)
		if err != nil {
			return nil, err
		}
		rems = append(rems, rem)
	}
	return rems, rows.Err()
}

func scanRemuneracion(row rowScanner) (*domain.Remuneracion, error) {
	var (
		rem                   domain.Remuneracion
		fechaCarga            pgtype.Timestamptz
		fechaEntrega          pgtype.Timestamptz
		kmLineal              pgtype.Numeric
		pagoFleteroEspera     pgtype.Numeric
		viaticos, auto        pgtype.Numeric
		refuerzo, recaudacion pgtype.Numeric
		datosCliente          []byte
		createdAt             pgtype.Timestamptz
	)
	err := row.Scan(&rem.ID, &rem.Armador, &fechaCarga, &fechaEntrega, &kmLineal, &pagoFleteroEspera,
		&viaticos, &auto, &refuerzo, &recaudacion, &rem.Chofer, &datosCliente,
		&rem.Localidad, &rem.Sucursal, &rem.Usuario, &rem.RoleID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRemuneracionNotFound
		}
		return nil, err
	}
	rem.FechaCarga = fechaCarga.Time
	rem.FechaEntrega = fechaEntrega.Time
	rem.KmLineal = numericToDecimal(kmLineal)
	rem.PagoFleteroEspera = numericToDecimal(pagoFleteroEspera)
	rem.Viaticos = numericToDecimal(viaticos)
	rem.Auto = numericToDecimal(auto)
	rem.Refuerzo = numericToDecimal(refuerzo)
	rem.Recaudacion = numericToDecimal(recaudacion)
	rem.CreatedAt = createdAt.Time
	if datosCliente != nil {
		_ = json.Unmarshal(datosCliente, &rem.DatosCliente)
	}
	return &rem, nil
}
