package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salida is a trip record. Plain CRUD, no caja coupling.
type Salida struct {
	ID                   string
	Chofer               string
	KmViajeControl       decimal.Decimal
	KmViajeControlPrecio decimal.Decimal
	FletesKm             decimal.Decimal
	FletesKmPrecio       decimal.Decimal
	Armadores            string
	TotalViaticos        decimal.Decimal
	Motivo               string
	TotalFlete           decimal.Decimal
	TotalControl         decimal.Decimal
	Fabrica              string
	Salida               string
	Espera               string
	ChoferVehiculo       string
	DatosCliente         map[string]any
	Localidad            string
	Sucursal             string
	Usuario              string
	RoleID               int
	CreatedAt            time.Time
}

// Orden is a work order for a driver.
type Orden struct {
	ID           string
	Chofer       string
	FechaLlegada time.Time
	OrdenFirma   string
	Finalizado   bool
	CreatedAt    time.Time
}

// Chofer is a registered driver.
type Chofer struct {
	ID        string
	Nombre    string
	Vehiculo  string
	Telefono  string
	Localidad string
	Sucursal  string
	CreatedAt time.Time
}
