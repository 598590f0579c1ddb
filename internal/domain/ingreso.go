package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingreso is an income entry. Recaudacion is stored as a positive
// magnitude and contributes +recaudacion to the location's caja.
type Ingreso struct {
	ID          string
	Tipo        string
	Observacion string
	Recaudacion decimal.Decimal
	Localidad   string
	Sucursal    string
	Usuario     string
	RoleID      int
	CreatedAt   time.Time
}

// Gasto is an expense entry, persisted in the egresos table. Recaudacion
// is stored pre-negated, so its caja contribution is the stored value
// itself.
type Gasto struct {
	ID          string
	Tipo        string
	Observacion string
	Recaudacion decimal.Decimal
	Localidad   string
	Sucursal    string
	Usuario     string
	RoleID      int
	CreatedAt   time.Time
}
