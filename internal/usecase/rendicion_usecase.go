package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// RendicionUseCase orchestrates settlement records. Their monetary field
// is rendicion_final rather than recaudacion; the coupling is otherwise
// identical to the other positive movements.
type RendicionUseCase struct {
	deps          LedgerDeps
	rendicionRepo RendicionRepository
}

// NewRendicionUseCase creates a new RendicionUseCase.
func NewRendicionUseCase(deps LedgerDeps, rendicionRepo RendicionRepository) *RendicionUseCase {
	return &RendicionUseCase{
		deps:          deps,
		rendicionRepo: rendicionRepo,
	}
}

// RendicionInput carries the field set used by both create and update.
type RendicionInput struct {
	Armador        string
	RendicionFinal decimal.Decimal
	Detalle        string
}

func (in RendicionInput) validate() error {
	if in.Armador == "" {
		return fmt.Errorf("%w: armador", domain.ErrInvalidInput)
	}
	if in.RendicionFinal.IsZero() {
		return fmt.Errorf("%w: rendicion_final", domain.ErrInvalidAmount)
	}
	return nil
}

// Create inserts a rendicion and credits its final amount to the caja.
func (uc *RendicionUseCase) Create(ctx context.Context, actor domain.Principal, input RendicionInput) (*domain.Rendicion, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	signed := domain.KindRendicion.SignedAmount(input.RendicionFinal)

	rendicion := &domain.Rendicion{
		ID:             uc.deps.IDGen.Generate(),
		Armador:        input.Armador,
		RendicionFinal: signed,
		Detalle:        input.Detalle,
		Localidad:      actor.Localidad,
		Sucursal:       actor.Sucursal,
		Usuario:        actor.Username,
		RoleID:         actor.RoleID,
		CreatedAt:      time.Now().UTC(),
	}

	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		if err := uc.rendicionRepo.CreateTx(ctx, tx, rendicion); err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, actor.Localidad, signed)
		if err != nil {
			return err
		}
		caja = c

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindRendicion, domain.EventTypeRendicionCreated, rendicion.ID, signed, actor.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return rendicion, caja, nil
}

// Update overwrites a rendicion, moving the caja by the rendicion_final
// difference.
func (uc *RendicionUseCase) Update(ctx context.Context, actor domain.Principal, id string, input RendicionInput) (*domain.Rendicion, *domain.Caja, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	newSigned := domain.KindRendicion.SignedAmount(input.RendicionFinal)

	var (
		rendicion *domain.Rendicion
		caja      *domain.Caja
	)
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.rendicionRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		delta := newSigned.Sub(current.RendicionFinal)
		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, delta)
		if err != nil {
			return err
		}
		caja = c

		current.Armador = input.Armador
		current.RendicionFinal = newSigned
		current.Detalle = input.Detalle
		current.Usuario = actor.Username
		current.RoleID = actor.RoleID
		if err := uc.rendicionRepo.UpdateTx(ctx, tx, current); err != nil {
			return err
		}
		rendicion = current

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindRendicion, domain.EventTypeRendicionUpdated, id, delta, current.Localidad))
	})
	if err != nil {
		return nil, nil, err
	}

	return rendicion, caja, nil
}

// Delete removes a rendicion, reversing its caja contribution.
func (uc *RendicionUseCase) Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error) {
	var caja *domain.Caja
	err := uc.deps.Runner.Run(ctx, func(ctx context.Context, tx Transaction) error {
		current, err := uc.rendicionRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		c, err := uc.deps.CajaRepo.AdjustTotal(ctx, tx, current.Localidad, current.RendicionFinal.Neg())
		if err != nil {
			return err
		}
		caja = c

		if err := uc.rendicionRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		return uc.deps.OutboxRepo.CreateTx(ctx, tx, movementEvent(
			uc.deps.IDGen.Generate(), domain.KindRendicion, domain.EventTypeRendicionDeleted, id, current.RendicionFinal.Neg(), current.Localidad))
	})
	if err != nil {
		return nil, err
	}

	return caja, nil
}

// GetRendicion retrieves a rendicion by ID.
func (uc *RendicionUseCase) GetRendicion(ctx context.Context, id string) (*domain.Rendicion, error) {
	return uc.rendicionRepo.GetByID(ctx, id)
}

// ListRendiciones lists the actor's location's rendiciones.
func (uc *RendicionUseCase) ListRendiciones(ctx context.Context, actor domain.Principal) ([]*domain.Rendicion, error) {
	return uc.rendicionRepo.ListByLocalidad(ctx, actor.Localidad)
}

// ListRendicionesAdmin lists every rendicion across locations.
func (uc *RendicionUseCase) ListRendicionesAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Rendicion, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.rendicionRepo.ListAll(ctx)
}

// ListRendicionesMensual lists the current month's rendiciones for the
// actor's location.
func (uc *RendicionUseCase) ListRendicionesMensual(ctx context.Context, actor domain.Principal) ([]*domain.Rendicion, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.deps.MonthlyGraceDays)
	return uc.rendicionRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// ListRendicionesPorFechas lists rendiciones within a date range.
func (uc *RendicionUseCase) ListRendicionesPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Rendicion, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.rendicionRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}
