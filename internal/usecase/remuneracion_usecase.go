package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// RemuneracionUseCase orchestrates driver payment records and their caja
// coupling.
type RemuneracionUseCase struct {
	deps    LedgerDeps
	remRepo RemuneracionRepository
}

// NewRemuneracionUseCase creates a new RemuneracionUseCase.
func NewRemuneracionUseCase(deps LedgerDeps, remRepo RemuneracionRepository) *RemuneracionUseCase {
	return &RemuneracionUseCase{
		deps:    deps,
		remRepo: remRepo,
	}
}

// RemuneracionInput carries the full field set used by both create and
// update.
type RemuneracionInput struct {
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
}

func (in RemuneracionInput) validate() error {
	switch {
	case in.Armador == "":
		return fmt.Errorf("%w: armador", domain.ErrInvalidInput)
	case in.FechaCarga.IsZero() || in.FechaEntrega.IsZero():
		return fmt.Errorf("%w: fecha_carga/fecha_entrega", domain.ErrInvalidInput)
	case in.Chofer == "":
		return fmt.Errorf("%w: chofer", domain.ErrInvalidInput)
	case len(in.DatosCliente) == 0:
		return fmt.Errorf("%w: datos_cliente", domain.ErrInvalidInput)
	case in.Recaudacion.IsZero():
		return fmt.Errorf("%w: recaudacion", domain.ErrInvalidAmount)
	}
	return nil
}

// Create inserts a remuneracion and credits its recaudacion to the caja.
func (uc *RemuneracionUseCase) Create(ctx context.Context, actor domain.Principal, input RemuneracionInput) (*domain.Remuneracion, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	signed := domain.KindRemuneracion.SignedAmount(input.Recaudacion)

	rem := &domain.Remuneracion{
		ID:                uc.deps.IDGen.Generate(),
		Armador:           input.Armador,
		FechaCarga:        input.FechaCarga,
		FechaEntrega:      input.FechaEntrega,
		KmLineal:          input.KmLineal,
		PagoFleteroEspera: input.PagoFleteroEspera,
		Viaticos:          input.Viaticos,
		Auto:              input.Auto,
		Refuerzo:          input.Refuerzo,
		Recaudacion:       signed,
		Chofer:            input.Chofer,
		DatosCliente:      input.DatosCliente,
		Localidad:         actor.Localidad,
		Sucursal:          actor.Sucursal,
		Usuario:           actor.Username,
		RoleID:            actor.RoleID,
		CreatedAt:         time.Now().UTC(),
	}

	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		if err := uc.remRepo.CreateTx(ctx, tx, rem); err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, actor.Localidad, signed)
		if err != nil {
			return err
		}
		caja = c

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindRemuneracion, domain.EventTypeRemuneracionCreated, rem.ID, signed, actor.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return rem, caja, nil
}

// Update overwrites a remuneracion, moving the caja by the recaudacion
// difference.
func (uc *RemuneracionUseCase) Update(ctx context.Context, actor domain.Principal, id string, input RemuneracionInput) (*domain.Remuneracion, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	newSigned := domain.KindRemuneracion.SignedAmount(input.Recaudacion)

	var (
		rem  *domain.Remuneracion
		caja *domain.Caja
	)
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.remRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		delta := newSigned.Sub(current.Recaudacion)
		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, delta)
		if err != nil {
			return err
		}
		caja = c

		current.Armador = input.Armador
		current.FechaCarga = input.FechaCarga
		current.FechaEntrega = input.FechaEntrega
		current.KmLineal = input.KmLineal
		current.PagoFleteroEspera = input.PagoFleteroEspera
		current.Viaticos = input.Viaticos
		current.Auto = input.Auto
		current.Refuerzo = input.Refuerzo
		current.Recaudacion = newSigned
		current.Chofer = input.Chofer
		current.DatosCliente = input.DatosCliente
		current.Usuario = actor.Username
		current.RoleID = actor.RoleID
		if err := uc.remRepo.UpdateTx(ctx, tx, current); err != nil {
			return err
		}
		rem = current

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindRemuneracion, domain.EventTypeRemuneracionUpdated, id, delta, current.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return rem, caja, nil
}

// Delete removes a remuneracion, reversing its caja contribution.
func (uc *RemuneracionUseCase) Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error) {
	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.remRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, current.Recaudacion.Neg())
		if err != nil {
			return err
		}
		caja = c

		if err := uc.remRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindRemuneracion, domain.EventTypeRemuneracionDeleted, id, current.Recaudacion.Neg(), current.Localidad))
	})
	if err != nil {
		return nil, err
	}

	return caja, nil
}

// GetRemuneracion retrieves a remuneracion by ID.
func (uc *RemuneracionUseCase) GetRemuneracion(ctx context.Context, id string) (*domain.Remuneracion, error) {
	return uc.remRepo.GetByID(ctx, id)
}

// ListRemuneraciones lists the actor's location's remuneraciones.
func (uc *RemuneracionUseCase) ListRemuneraciones(ctx context.Context, actor domain.Principal) ([]*domain.Remuneracion, error) {
	return uc.remRepo.ListByLocalidad(ctx, actor.Localidad)
}

// ListRemuneracionesAdmin lists every remuneracion across locations.
func (uc *RemuneracionUseCase) ListRemuneracionesAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Remuneracion, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.remRepo.ListAll(ctx)
}

// ListRemuneracionesMensual lists the current month's remuneraciones for
// the actor's location.
func (uc *RemuneracionUseCase) ListRemuneracionesMensual(ctx context.Context, actor domain.Principal) ([]*domain.Remuneracion, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.deps.MonthlyGraceDays)
	return uc.remRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// ListRemuneracionesPorFechas lists remuneraciones within a date range.
func (uc *RemuneracionUseCase) ListRemuneracionesPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Remuneracion, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.remRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}
