package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Caja is the per-location cash register. Total is a running sum of the
// signed contributions of every live money movement for the location and
// is only ever mutated through atomic delta updates.
type Caja struct {
	ID        string
	Localidad string
	Sucursal  string
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConsistencyReport compares a caja total against the recomputed sum of
// its live movements.
type ConsistencyReport struct {
	Localidad   string
	Total       decimal.Decimal
	MovementSum decimal.Decimal
	Difference  decimal.Decimal
	Consistent  bool
	CheckedAt   time.Time
}
