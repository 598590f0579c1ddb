package domain

import "errors"

var (
	// Caja errors
	ErrCajaNotFound = errors.New("no caja exists for that location")

	// Movement errors
	ErrIngresoNotFound      = errors.New("ingreso not found")
	ErrGastoNotFound        = errors.New("gasto not found")
	ErrRemuneracionNotFound = errors.New("remuneracion not found")
	ErrLegalNotFound        = errors.New("legal record not found")
	ErrRendicionNotFound    = errors.New("rendicion not found")

	// Supporting entity errors
	ErrSalidaNotFound = errors.New("salida not found")
	ErrOrdenNotFound  = errors.New("orden not found")
	ErrChoferNotFound = errors.New("chofer not found")
	ErrUserNotFound   = errors.New("user not found")

	// Shared errors
	ErrConflict         = errors.New("an entity with that identity already exists")
	ErrInvalidInput     = errors.New("missing or malformed required field")
	ErrInvalidAmount    = errors.New("amount must be a valid number")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrEmailTaken   = errors.New("email is already registered")
)
