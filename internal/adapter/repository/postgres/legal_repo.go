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

// LegalRepository implements usecase.LegalRepository. Legal records share
// the remuneracion column set but live in their own table.
type LegalRepository struct {
	pool *pgxpool.Pool
}

// NewLegalRepository creates a new LegalRepository.
func NewLegalRepository(pool *pgxpool.Pool) *LegalRepository {
	return &LegalRepository{pool: pool}
}

const legalColumns = `id, armador, fecha_carga, fecha_entrega, km_lineal, pago_fletero_espera,
	viaticos, auto, refuerzo, recaudacion, chofer, datos_cliente, localidad, sucursal, usuario, role_id, created_at`

// CreateTx inserts a legal record within a transaction.
func (r *LegalRepository) CreateTx(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error {
	pgxTx := tx.(*Tx).PgxTx()

	datosCliente, err := json.Marshal(legal.DatosCliente)
	if err != nil {
		return err
	}

	_, err = pgxTx.Exec(ctx,
		`INSERT INTO legales (id, armador, fecha_carga, fecha_entrega, km_lineal, pago_fletero_espera,
		     viaticos, auto, refuerzo, recaudacion, chofer, datos_cliente, localidad, sucursal, usuario, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		legal.ID, legal.Armador, timeToPgTimestamptz(legal.FechaCarga), timeToPgTimestamptz(legal.FechaEntrega),
		decimalToNumeric(legal.KmLineal), decimalToNumeric(legal.PagoFleteroEspera),
		decimalToNumeric(legal.Viaticos), decimalToNumeric(legal.Auto), decimalToNumeric(legal.Refuerzo),
		decimalToNumeric(legal.Recaudacion), legal.Chofer, datosCliente,
		legal.Localidad, legal.Sucursal, legal.Usuario, legal.RoleID, timeToPgTimestamptz(legal.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a legal record by ID.
func (r *LegalRepository) GetByID(ctx context.Context, id string) (*domain.Legal, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+legalColumns+` FROM legales WHERE id = $1`, id)
	return scanLegal(row)
}

// GetByIDForUpdate retrieves a legal record by ID with a FOR UPDATE lock.
func (r *LegalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Legal, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+legalColumns+` FROM legales WHERE id = $1 FOR UPDATE`, id)
	return scanLegal(row)
}

// UpdateTx overwrites a legal record within a transaction.
func (r *LegalRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error {
	pgxTx := tx.(*Tx).PgxTx()

	datosCliente, err := json.Marshal(legal.DatosCliente)
	if err != nil {
		return err
	}

	tag, err := pgxTx.Exec(ctx,
		`UPDATE legales
		 SET armador = $1, fecha_carga = $2, fecha_entrega = $3, km_lineal = $4, pago_fletero_espera = $5,
		     viaticos = $6, auto = $7, refuerzo = $8, recaudacion = $9, chofer = $10, datos_cliente = $11,
		     usuario = $12, role_id = $13
		 WHERE id = $14`,
		legal.Armador, timeToPgTimestamptz(legal.FechaCarga), timeToPgTimestamptz(legal.FechaEntrega),
		decimalToNumeric(legal.KmLineal), decimalToNumeric(legal.PagoFleteroEspera),
		decimalToNumeric(legal.Viaticos), decimalToNumeric(legal.Auto), decimalToNumeric(legal.Refuerzo),
		decimalToNumeric(legal.Recaudacion), legal.Chofer, datosCliente,
		legal.Usuario, legal.RoleID, legal.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLegalNotFound
	}
	return nil
}

// DeleteTx removes a legal record within a transaction.
func (r *LegalRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM legales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLegalNotFound
	}
	return nil
}

// ListByLocalidad lists a location's legal records, newest first.
func (r *LegalRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Legal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+legalColumns+` FROM legales WHERE localidad = $1 ORDER BY created_at DESC`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLegales(rows)
}

// ListAll lists every legal record, newest first.
func (r *LegalRepository) ListAll(ctx context.Context) ([]*domain.Legal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+legalColumns+` FROM legales ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLegales(rows)
}

// ListByCreatedBetween lists a location's legal records created in [from, to).
func (r *LegalRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Legal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+legalColumns+` FROM legales
		 WHERE localidad = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		localidad, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLegales(rows)
}

func collectLegales(rows pgx.Rows) ([]*domain.Legal, error) {
	var legales []*domain.Legal
	for rows.Next() {
		legal, err := scanLegal(rows)
		if err != nil {
			return nil, err
		}
		legales = append(legales, legal)
	}
	return legales, rows.Err()
}

func scanLegal(row rowScanner) (*domain.Legal, error) {
	var (
		legal                 domain.Legal
		fechaCarga            pgtype.Timestamptz
		fechaEntrega          pgtype.Timestamptz
		kmLineal              pgtype.Numeric
		pagoFleteroEspera     pgtype.Numeric
		viaticos, auto        pgtype.Numeric
		refuerzo, recaudacion pgtype.Numeric
		datosCliente          []byte
		createdAt             pgtype.Timestamptz
	)
	err := row.Scan(&legal.ID, &legal.Armador, &fechaCarga, &fechaEntrega, &kmLineal, &pagoFleteroEspera,
		&viaticos, &auto, &refuerzo, &recaudacion, &legal.Chofer, &datosCliente,
		&legal.Localidad, &legal.Sucursal, &legal.Usuario, &legal.RoleID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLegalNotFound
		}
		return nil, err
	}
	legal.FechaCarga = fechaCarga.Time
	legal.FechaEntrega = fechaEntrega.Time
	legal.KmLineal = numericToDecimal(kmLineal)
	legal.PagoFleteroEspera = numericToDecimal(pagoFleteroEspera)
	legal.Viaticos = numericToDecimal(viaticos)
	legal.Auto = numericToDecimal(auto)
	legal.Refuerzo = numericToDecimal(refuerzo)
	legal.Recaudacion = numericToDecimal(recaudacion)
	legal.CreatedAt = createdAt.Time
	if datosCliente != nil {
		_ = json.Unmarshal(datosCliente, &legal.DatosCliente)
	}
	return &legal, nil
}
