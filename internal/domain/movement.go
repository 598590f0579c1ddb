package domain

import "github.com/shopspring/decimal"

// MovementKind identifies a money-moving entity type.
type MovementKind string

const (
	KindIngreso      MovementKind = "ingreso"
	KindGasto        MovementKind = "gasto"
	KindRemuneracion MovementKind = "remuneracion"
	KindLegal        MovementKind = "legal"
	KindRendicion    MovementKind = "rendicion"
)

// movementSigns is the single source of truth for each kind's caja
// contribution. Gastos store their amount pre-negated; everything else
// stores the positive magnitude.
var movementSigns = map[MovementKind]int{
	KindIngreso:      1,
	KindGasto:        -1,
	KindRemuneracion: 1,
	KindLegal:        1,
	KindRendicion:    1,
}

// Sign returns +1 or -1 for the kind's caja contribution.
func (k MovementKind) Sign() int {
	return movementSigns[k]
}

// SignedAmount normalizes a raw amount into the value stored on the row
// and added to the caja: the absolute magnitude carrying the kind's sign.
func (k MovementKind) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	abs := amount.Abs()
	if k.Sign() < 0 {
		return abs.Neg()
	}
	return abs
}
