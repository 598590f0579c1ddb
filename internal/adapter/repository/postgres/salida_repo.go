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
)

// SalidaRepository implements usecase.SalidaRepository.
type SalidaRepository struct {
	pool *pgxpool.Pool
}

// NewSalidaRepository creates a new SalidaRepository.
func NewSalidaRepository(pool *pgxpool.Pool) *SalidaRepository {
	return &SalidaRepository{pool: pool}
}

const salidaColumns = `id, chofer, km_viaje_control, km_viaje_control_precio, fletes_km, fletes_km_precio,
	armadores, total_viaticos, motivo, total_flete, total_control, fabrica, salida, espera,
	chofer_vehiculo, datos_cliente, localidad, sucursal, usuario, role_id, created_at`

// Create inserts a salida.
func (r *SalidaRepository) Create(ctx context.Context, salida *domain.Salida) error {
	datosCliente, err := json.Marshal(salida.DatosCliente)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO salidas (id, chofer, km_viaje_control, km_viaje_control_precio, fletes_km, fletes_km_precio,
		     armadores, total_viaticos, motivo, total_flete, total_control, fabrica, salida, espera,
		     chofer_vehiculo, datos_cliente, localidad, sucursal, usuario, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		salida.ID, salida.Chofer, decimalToNumeric(salida.KmViajeControl), decimalToNumeric(salida.KmViajeControlPrecio),
		decimalToNumeric(salida.FletesKm), decimalToNumeric(salida.FletesKmPrecio),
		salida.Armadores, decimalToNumeric(salida.TotalViaticos), salida.Motivo,
		decimalToNumeric(salida.TotalFlete), decimalToNumeric(salida.TotalControl),
		salida.Fabrica, salida.Salida, salida.Espera, salida.ChoferVehiculo, datosCliente,
		salida.Localidad, salida.Sucursal, salida.Usuario, salida.RoleID, timeToPgTimestamptz(salida.CreatedAt))
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// GetByID retrieves a salida by ID.
func (r *SalidaRepository) GetByID(ctx context.Context, id string) (*domain.Salida, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+salidaColumns+` FROM salidas WHERE id = $1`, id)
	return scanSalida(row)
}

// Update overwrites a salida.
func (r *SalidaRepository) Update(ctx context.Context, salida *domain.Salida) error {
	datosCliente, err := json.Marshal(salida.DatosCliente)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE salidas
		 SET chofer = $1, km_viaje_control = $2, km_viaje_control_precio = $3, fletes_km = $4, fletes_km_precio = $5,
		     armadores = $6, total_viaticos = $7, motivo = $8, total_flete = $9, total_control = $10,
		     fabrica = $11, salida = $12, espera = $13, chofer_vehiculo = $14, datos_cliente = $15,
		     usuario = $16, role_id = $17
		 WHERE id = $18`,
		salida.Chofer, decimalToNumeric(salida.KmViajeControl), decimalToNumeric(salida.KmViajeControlPrecio),
		decimalToNumeric(salida.FletesKm), decimalToNumeric(salida.FletesKmPrecio),
		salida.Armadores, decimalToNumeric(salida.TotalViaticos), salida.Motivo,
		decimalToNumeric(salida.TotalFlete), decimalToNumeric(salida.TotalControl),
		salida.Fabrica, salida.Salida, salida.Espera, salida.ChoferVehiculo, datosCliente,
		salida.Usuario, salida.RoleID, salida.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSalidaNotFound
	}
	return nil
}

// Delete removes a salida.
func (r *SalidaRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM salidas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSalidaNotFound
	}
	return nil
}

// ListByLocalidad lists a location's salidas, newest first.
func (r *SalidaRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Salida, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+salidaColumns+` FROM salidas WHERE localidad = $1 ORDER BY created_at DESC`,
		localidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSalidas(rows)
}

// ListByCreatedBetween lists a location's salidas created in [from, to).
func (r *SalidaRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Salida, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+salidaColumns+` FROM salidas
		 WHERE localidad = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		localidad, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSalidas(rows)
}

func collectSalidas(rows pgx.Rows) ([]*domain.Salida, error) {
	var salidas []*domain.Salida
	for rows.Next() {
		salida, err := scanSalida(rows)
		if err != nil {
			return nil, err
		}
		salidas = append(salidas, salida)
	}
	return salidas, rows.Err()
}

func scanSalida(row rowScanner) (*domain.Salida, error) {
	var (
		salida               domain.Salida
		kmViajeControl       pgtype.Numeric
		kmViajeControlPrecio pgtype.Numeric
		fletesKm             pgtype.Numeric
		fletesKmPrecio       pgtype.Numeric
		totalViaticos        pgtype.Numeric
		totalFlete           pgtype.Numeric
		totalControl         pgtype.Numeric
		datosCliente         []byte
		createdAt            pgtype.Timestamptz
	)
	err := row.Scan(&salida.ID, &salida.Chofer, &kmViajeControl, &kmViajeControlPrecio, &fletesKm, &fletesKmPrecio,
		&salida.Armadores, &totalViaticos, &salida.Motivo, &totalFlete, &totalControl,
		&salida.Fabrica, &salida.Salida, &salida.Espera, &salida.ChoferVehiculo, &datosCliente,
		&salida.Localidad, &salida.Sucursal, &salida.Usuario, &salida.RoleID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSalidaNotFound
		}
		return nil, err
	}
	salida.KmViajeControl = numericToDecimal(kmViajeControl)
	salida.KmViajeControlPrecio = numericToDecimal(kmViajeControlPrecio)
	salida.FletesKm = numericToDecimal(fletesKm)
	salida.FletesKmPrecio = numericToDecimal(fletesKmPrecio)
	salida.TotalViaticos = numericToDecimal(totalViaticos)
	salida.TotalFlete = numericToDecimal(totalFlete)
	salida.TotalControl = numericToDecimal(totalControl)
	salida.CreatedAt = createdAt.Time
	if datosCliente != nil {
		_ = json.Unmarshal(datosCliente, &salida.DatosCliente)
	}
	return &salida, nil
}
