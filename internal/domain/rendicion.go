package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rendicion is a reconciliation/settlement record. RendicionFinal is its
// monetary amount and contributes positively to the caja.
type Rendicion struct {
	ID             string
	Armador        string
	RendicionFinal decimal.Decimal
	Detalle        string
	Localidad      string
	Sucursal       string
	Usuario        string
	RoleID         int
	CreatedAt      time.Time
}
