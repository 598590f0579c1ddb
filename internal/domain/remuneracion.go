package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Remuneracion is a driver payment record tied to a trip. Recaudacion is
// the trip revenue and contributes positively to the caja.
type Remuneracion struct {
	ID                string
	Armador           string
	FechaCarga        time.Time
	FechaEntrega      time.Time
	KmLineal          decimal.Decimal
	PagoFleteroEspera decimal.Decimal
	Viaticos          decimal.Decimal
	Auto              decimal.Decimal
	Refuerzo          decimal.Decimal
	Recaudacion       decimal.Decimal
	Chofer            string
	DatosCliente      map[string]any
	Localidad         string
	Sucursal          string
	Usuario           string
	RoleID            int
	CreatedAt         time.Time
}

// Legal is a legal/billing record tied to a trip. Same shape as a
// remuneracion, same positive caja contribution.
type Legal struct {
	ID                string
	Armador           string
	FechaCarga        time.Time
	FechaEntrega      time.Time
	KmLineal          decimal.Decimal
	PagoFleteroEspera decimal.Decimal
	Viaticos          decimal.Decimal
	Auto              decimal.Decimal
	Refuerzo          decimal.Decimal
	Recaudacion       decimal.Decimal
	Chofer            string
	DatosCliente      map[string]any
	Localidad         string
	Sucursal          string
	Usuario           string
	RoleID            int
	CreatedAt         time.Time
}
