package usecase

import (
	"context"
	"time"

	"github.com/fletero/backoffice/internal/domain"
)

// LegalUseCase orchestrates legal/billing records. They share the
// remuneracion field set and the same positive caja coupling.
type LegalUseCase struct {
	deps      LedgerDeps
	legalRepo LegalRepository
}

// NewLegalUseCase creates a new LegalUseCase.
func NewLegalUseCase(deps LedgerDeps, legalRepo LegalRepository) *LegalUseCase {
	return &LegalUseCase{
		deps:      deps,
		legalRepo: legalRepo,
	}
}

// Create inserts a legal record and credits its recaudacion to the caja.
func (uc *LegalUseCase) Create(ctx context.Context, actor domain.Principal, input RemuneracionInput) (*domain.Legal, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	signed := domain.KindLegal.SignedAmount(input.Recaudacion)

	legal := &domain.Legal{
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
		if err := uc.legalRepo.CreateTx(ctx, tx, legal); err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, actor.Localidad, signed)
		if err != nil {
			return err
		}
		caja = c

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindLegal, domain.EventTypeLegalCreated, legal.ID, signed, actor.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return legal, caja, nil
}

// Update overwrites a legal record, moving the caja by the recaudacion
// difference.
func (uc *LegalUseCase) Update(ctx context.Context, actor domain.Principal, id string, input RemuneracionInput) (*domain.Legal, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	newSigned := domain.KindLegal.SignedAmount(input.Recaudacion)

	var (
		legal *domain.Legal
		caja  *domain.Caja
	)
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.legalRepo.GetByIDForUpdate(ctx, tx, id)
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
		if err := uc.legalRepo.UpdateTx(ctx, tx, current); err != nil {
			return err
		}
		legal = current

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindLegal, domain.EventTypeLegalUpdated, id, delta, current.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return legal, caja, nil
}

// Delete removes a legal record, reversing its caja contribution.
func (uc *LegalUseCase) Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error) {
	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.legalRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, current.Recaudacion.Neg())
		if err != nil {
			return err
		}
		caja = c

		if err := uc.legalRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindLegal, domain.EventTypeLegalDeleted, id, current.Recaudacion.Neg(), current.Localidad))
	})
	if err != nil {
		return nil, err
	}

	return caja, nil
}

// GetLegal retrieves a legal record by ID.
func (uc *LegalUseCase) GetLegal(ctx context.Context, id string) (*domain.Legal, error) {
	return uc.legalRepo.GetByID(ctx, id)
}

// ListLegales lists the actor's location's legal records.
func (uc *LegalUseCase) ListLegales(ctx context.Context, actor domain.Principal) ([]*domain.Legal, error) {
	return uc.legalRepo.ListByLocalidad(ctx, actor.Localidad)
}

// ListLegalesAdmin lists every legal record across locations.
func (uc *LegalUseCase) ListLegalesAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Legal, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.legalRepo.ListAll(ctx)
}

// ListLegalesMensual lists the current month's legal records for the
// actor's location.
func (uc *LegalUseCase) ListLegalesMensual(ctx context.Context, actor domain.Principal) ([]*domain.Legal, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.deps.MonthlyGraceDays)
	return uc.legalRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// ListLegalesPorFechas lists legal records within a date range.
func (uc *LegalUseCase) ListLegalesPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Legal, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.legalRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}
