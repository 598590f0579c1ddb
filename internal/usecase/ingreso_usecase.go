package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// IngresoUseCase orchestrates income entries and their caja coupling.
// Every mutation runs the entity write and the balance adjustment in one
// transaction: either both commit or neither does.
type IngresoUseCase struct {
	deps        LedgerDeps
	ingresoRepo IngresoRepository
}

// NewIngresoUseCase creates a new IngresoUseCase.
func NewIngresoUseCase(deps LedgerDeps, ingresoRepo IngresoRepository) *IngresoUseCase {
	return &IngresoUseCase{
		deps:        deps,
		ingresoRepo: ingresoRepo,
	}
}

// CreateIngresoInput represents input for creating an ingreso.
type CreateIngresoInput struct {
	Tipo        string
	Observacion string
	Recaudacion decimal.Decimal
}

func (in CreateIngresoInput) validate() error {
	if in.Observacion == "" {
		return fmt.Errorf("%w: observacion", domain.ErrInvalidInput)
	}
	if in.Recaudacion.IsZero() {
		return fmt.Errorf("%w: recaudacion", domain.ErrInvalidAmount)
	}
	return nil
}

// Create inserts an ingreso and credits its recaudacion to the caja.
func (uc *IngresoUseCase) Create(ctx context.Context, actor domain.Principal, input CreateIngresoInput) (*domain.Ingreso, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	signed := domain.KindIngreso.SignedAmount(input.Recaudacion)

	ingreso := &domain.Ingreso{
		ID:          uc.deps.IDGen.Generate(),
		Tipo:        input.Tipo,
		Observacion: input.Observacion,
		Recaudacion: signed,
		Localidad:   actor.Localidad,
		Sucursal:    actor.Sucursal,
		Usuario:     actor.Username,
		RoleID:      actor.RoleID,
		CreatedAt:   time.Now().UTC(),
	}

	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		if err := uc.ingresoRepo.CreateTx(ctx, tx, ingreso); err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, actor.Localidad, signed)
		if err != nil {
			return err
		}
		caja = c

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindIngreso, domain.EventTypeIngresoCreated, ingreso.ID, signed, actor.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return ingreso, caja, nil
}

// UpdateIngresoInput represents input for updating an ingreso.
type UpdateIngresoInput struct {
	Tipo        string
	Recaudacion decimal.Decimal
}

// Update overwrites an ingreso, adjusting the caja by the difference
// between the new and the stored recaudacion. Adjusting by the new amount
// alone would double-count, so the stored amount is read first, under a
// row lock.
func (uc *IngresoUseCase) Update(ctx context.Context, actor domain.Principal, id string, input UpdateIngresoInput) (*domain.Ingreso, *domain.Caja, error) {
	if input.Recaudacion.IsZero() {
		return nil, nil, fmt.Errorf("%w: recaudacion", domain.ErrInvalidAmount)
	}

	newSigned := domain.KindIngreso.SignedAmount(input.Recaudacion)

	var (
		ingreso *domain.Ingreso
		caja    *domain.Caja
	)
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.ingresoRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		delta := newSigned.Sub(current.Recaudacion)
		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, delta)
		if err != nil {
			return err
		}
		caja = c

		current.Tipo = input.Tipo
		current.Recaudacion = newSigned
		current.Usuario = actor.Username
		current.RoleID = actor.RoleID
		if err := uc.ingresoRepo.UpdateTx(ctx, tx, current); err != nil {
			return err
		}
		ingreso = current

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindIngreso, domain.EventTypeIngresoUpdated, id, delta, current.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return ingreso, caja, nil
}

// Delete removes an ingreso, reversing its caja contribution. The stored
// amount already carries its sign, so the reversal is its negation.
func (uc *IngresoUseCase) Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error) {
	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.ingresoRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, current.Recaudacion.Neg())
		if err != nil {
			return err
		}
		caja = c

		if err := uc.ingresoRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindIngreso, domain.EventTypeIngresoDeleted, id, current.Recaudacion.Neg(), current.Localidad))
	})
	if err != nil {
		return nil, err
	}

	return caja, nil
}

// GetIngreso retrieves an ingreso by ID.
func (uc *IngresoUseCase) GetIngreso(ctx context.Context, id string) (*domain.Ingreso, error) {
	return uc.ingresoRepo.GetByID(ctx, id)
}

// ListIngresos lists the actor's location's ingresos.
func (uc *IngresoUseCase) ListIngresos(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error) {
	return uc.ingresoRepo.ListByLocalidad(ctx, actor.Localidad)
}

// ListIngresosAdmin lists every ingreso across locations.
func (uc *IngresoUseCase) ListIngresosAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.ingresoRepo.ListAll(ctx)
}

// ListIngresosMensual lists the current month's ingresos for the actor's
// location, widened by the configured grace window.
func (uc *IngresoUseCase) ListIngresosMensual(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.deps.MonthlyGraceDays)
	return uc.ingresoRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// ListIngresosPorFechas lists ingresos within an explicit date range.
func (uc *IngresoUseCase) ListIngresosPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Ingreso, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.ingresoRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// movementEvent builds the outbox event staged alongside each money
// mutation.
func movementEvent(eventID string, kind domain.MovementKind, eventType, aggregateID string, delta decimal.Decimal, localidad string) *domain.OutboxEvent {
	return domain.NewOutboxEvent(eventID, string(kind), aggregateID, eventType, map[string]any{
		"id":        aggregateID,
		"delta":     delta.String(),
		"localidad": localidad,
	})
}
