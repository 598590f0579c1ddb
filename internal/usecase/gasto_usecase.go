package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// GastoUseCase orchestrates expense entries. Gastos persist their amount
// pre-negated, so the stored recaudacion is both the row value and the
// caja contribution.
type GastoUseCase struct {
	deps      LedgerDeps
	gastoRepo GastoRepository
}

// NewGastoUseCase creates a new GastoUseCase.
func NewGastoUseCase(deps LedgerDeps, gastoRepo GastoRepository) *GastoUseCase {
	return &GastoUseCase{
		deps:      deps,
		gastoRepo: gastoRepo,
	}
}

// CreateGastoInput represents input for creating a gasto.
type CreateGastoInput struct {
	Tipo        string
	Observacion string
	Recaudacion decimal.Decimal
}

func (in CreateGastoInput) validate() error {
	if in.Observacion == "" {
		return fmt.Errorf("%w: observacion", domain.ErrInvalidInput)
	}
	if in.Recaudacion.IsZero() {
		return fmt.Errorf("%w: recaudacion", domain.ErrInvalidAmount)
	}
	return nil
}

// Create inserts a gasto with its amount negated and debits the caja by
// the same value.
func (uc *GastoUseCase) Create(ctx context.Context, actor domain.Principal, input CreateGastoInput) (*domain.Gasto, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	signed := domain.KindGasto.SignedAmount(input.Recaudacion)

	gasto := &domain.Gasto{
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
		if err := uc.gastoRepo.CreateTx(ctx, tx, gasto); err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, actor.Localidad, signed)
		if err != nil {
			return err
		}
		caja = c

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindGasto, domain.EventTypeGastoCreated, gasto.ID, signed, actor.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return gasto, caja, nil
}

// UpdateGastoInput represents input for updating a gasto.
type UpdateGastoInput struct {
	Tipo        string
	Recaudacion decimal.Decimal
}

// Update overwrites a gasto with the new magnitude stored negated. The
// caja moves by newStored - currentStored; since both are negative, a
// smaller expense yields a positive delta.
func (uc *GastoUseCase) Update(ctx context.Context, actor domain.Principal, id string, input UpdateGastoInput) (*domain.Gasto, *domain.Caja, error) {
	if input.Recaudacion.IsZero() {
		return nil, nil, fmt.Errorf("%w: recaudacion", domain.ErrInvalidAmount)
	}

	newSigned := domain.KindGasto.SignedAmount(input.Recaudacion)

	var (
		gasto *domain.Gasto
		caja  *domain.Caja
	)
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.gastoRepo.GetByIDForUpdate(ctx, tx, id)
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
		if err := uc.gastoRepo.UpdateTx(ctx, tx, current); err != nil {
			return err
		}
		gasto = current

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindGasto, domain.EventTypeGastoUpdated, id, delta, current.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return gasto, caja, nil
}

// Delete removes a gasto, reversing its caja contribution. The stored
// amount is negative, so the reversal credits the caja.
func (uc *GastoUseCase) Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error) {
	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.gastoRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, current.Recaudacion.Neg())
		if err != nil {
			return err
		}
		caja = c

		if err := uc.gastoRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindGasto, domain.EventTypeGastoDeleted, id, current.Recaudacion.Neg(), current.Localidad))
	})
	if err != nil {
		return nil, err
	}

	return caja, nil
}

// GetGasto retrieves a gasto by ID.
func (uc *GastoUseCase) GetGasto(ctx context.Context, id string) (*domain.Gasto, error) {
	return uc.gastoRepo.GetByID(ctx, id)
}

// ListGastos lists the actor's location's gastos.
func (uc *GastoUseCase) ListGastos(ctx context.Context, actor domain.Principal) ([]*domain.Gasto, error) {
	return uc.gastoRepo.ListByLocalidad(ctx, actor.Localidad)
}

// ListGastosAdmin lists every gasto across locations.
func (uc *GastoUseCase) ListGastosAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Gasto, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.gastoRepo.ListAll(ctx)
}

// ListGastosMensual lists the current month's gastos for the actor's
// location.
func (uc *GastoUseCase) ListGastosMensual(ctx context.Context, actor domain.Principal) ([]*domain.Gasto, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.deps.MonthlyGraceDays)
	return uc.gastoRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// ListGastosPorFechas lists gastos within an explicit date range.
func (uc *GastoUseCase) ListGastosPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Gasto, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.gastoRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}
