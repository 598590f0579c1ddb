package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// CajaRepository defines data access for cajas. AdjustTotal is the only
// write path for caja.total and must be a single atomic SQL expression.
type CajaRepository interface {
	Create(ctx context.Context, caja *domain.Caja) error
	GetByID(ctx context.Context, id string) (*domain.Caja, error)
	ListByLocation(ctx context.Context, localidad, sucursal string) ([]*domain.Caja, error)
	AdjustTotal(ctx context.Context, tx Transaction, localidad string, delta decimal.Decimal) (*domain.Caja, error)
	SetTotal(ctx context.Context, id string, total decimal.Decimal) (*domain.Caja, error)
	MovementSum(ctx context.Context, localidad string) (decimal.Decimal, error)
}

// IngresoRepository defines data access for ingresos.
type IngresoRepository interface {
	CreateTx(ctx context.Context, tx Transaction, ingreso *domain.Ingreso) error
	GetByID(ctx context.Context, id string) (*domain.Ingreso, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Ingreso, error)
	UpdateTx(ctx context.Context, tx Transaction, ingreso *domain.Ingreso) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Ingreso, error)
	ListAll(ctx context.Context) ([]*domain.Ingreso, error)
	ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Ingreso, error)
}

// GastoRepository defines data access for gastos (egresos table).
type GastoRepository interface {
	CreateTx(ctx context.Context, tx Transaction, gasto *domain.Gasto) error
	GetByID(ctx context.Context, id string) (*domain.Gasto, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Gasto, error)
	UpdateTx(ctx context.Context, tx Transaction, gasto *domain.Gasto) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Gasto, error)
	ListAll(ctx context.Context) ([]*domain.Gasto, error)
	ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Gasto, error)
}

// RemuneracionRepository defines data access for remuneraciones.
type RemuneracionRepository interface {
	CreateTx(ctx context.Context, tx Transaction, rem *domain.Remuneracion) error
	GetByID(ctx context.Context, id string) (*domain.Remuneracion, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Remuneracion, error)
	UpdateTx(ctx context.Context, tx Transaction, rem *domain.Remuneracion) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Remuneracion, error)
	ListAll(ctx context.Context) ([]*domain.Remuneracion, error)
	ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Remuneracion, error)
}

// LegalRepository defines data access for legal records.
type LegalRepository interface {
	CreateTx(ctx context.Context, tx Transaction, legal *domain.Legal) error
	GetByID(ctx context.Context, id string) (*domain.Legal, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Legal, error)
	UpdateTx(ctx context.Context, tx Transaction, legal *domain.Legal) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Legal, error)
	ListAll(ctx context.Context) ([]*domain.Legal, error)
	ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Legal, error)
}

// RendicionRepository defines data access for rendiciones.
type RendicionRepository interface {
	CreateTx(ctx context.Context, tx Transaction, rendicion *domain.Rendicion) error
	GetByID(ctx context.Context, id string) (*domain.Rendicion, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Rendicion, error)
	UpdateTx(ctx context.Context, tx Transaction, rendicion *domain.Rendicion) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Rendicion, error)
	ListAll(ctx context.Context) ([]*domain.Rendicion, error)
	ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Rendicion, error)
}

// SalidaRepository defines data access for salidas.
type SalidaRepository interface {
	Create(ctx context.Context, salida *domain.Salida) error
	GetByID(ctx context.Context, id string) (*domain.Salida, error)
	Update(ctx context.Context, salida *domain.Salida) error
	Delete(ctx context.Context, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Salida, error)
	ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Salida, error)
}

// OrdenRepository defines data access for ordenes.
type OrdenRepository interface {
	Create(ctx context.Context, orden *domain.Orden) error
	GetByID(ctx context.Context, id string) (*domain.Orden, error)
	Update(ctx context.Context, orden *domain.Orden) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Orden, error)
	ListByCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Orden, error)
}

// ChoferRepository defines data access for choferes.
type ChoferRepository interface {
	Create(ctx context.Context, chofer *domain.Chofer) error
	GetByID(ctx context.Context, id string) (*domain.Chofer, error)
	Update(ctx context.Context, chofer *domain.Chofer) error
	Delete(ctx context.Context, id string) error
	ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Chofer, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	CreateTx(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
