package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// CajaUseCase owns every write to caja.total. Money-entity use cases go
// through AdjustTotal; nothing else touches the column.
type CajaUseCase struct {
	cajaRepo CajaRepository
	idGen    IDGenerator
}

// NewCajaUseCase creates a new CajaUseCase.
func NewCajaUseCase(cajaRepo CajaRepository, idGen IDGenerator) *CajaUseCase {
	return &CajaUseCase{
		cajaRepo: cajaRepo,
		idGen:    idGen,
	}
}

// AdjustTotal applies a signed delta to the caja of the given location as
// one atomic storage-level update. A missing caja row is a configuration
// error surfaced as domain.ErrCajaNotFound; callers must not retry it.
func (uc *CajaUseCase) AdjustTotal(ctx context.Context, tx Transaction, localidad string, delta decimal.Decimal) (*domain.Caja, error) {
	caja, err := uc.cajaRepo.AdjustTotal(ctx, tx, localidad, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust caja for %q: %w", localidad, err)
	}
	return caja, nil
}

// ProvisionCajaInput represents input for provisioning a location's caja.
type ProvisionCajaInput struct {
	Total decimal.Decimal
}

// ProvisionCaja creates the single caja row for the actor's location.
// Provisioning happens once per location; a second attempt conflicts.
func (uc *CajaUseCase) ProvisionCaja(ctx context.Context, actor domain.Principal, input ProvisionCajaInput) (*domain.Caja, error) {
	if actor.Localidad == "" {
		return nil, fmt.Errorf("%w: localidad", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	caja := &domain.Caja{
		ID:        uc.idGen.Generate(),
		Localidad: actor.Localidad,
		Sucursal:  actor.Sucursal,
		Total:     input.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.cajaRepo.Create(ctx, caja); err != nil {
		return nil, err
	}

	return caja, nil
}

// GetCaja retrieves a caja by ID.
func (uc *CajaUseCase) GetCaja(ctx context.Context, id string) (*domain.Caja, error) {
	return uc.cajaRepo.GetByID(ctx, id)
}

// ListCajas lists the cajas visible to the actor's location and branch.
func (uc *CajaUseCase) ListCajas(ctx context.Context, actor domain.Principal) ([]*domain.Caja, error) {
	return uc.cajaRepo.ListByLocation(ctx, actor.Localidad, actor.Sucursal)
}

// SetTotal overrides a caja total. Admin-only repair operation; normal
// flows always go through AdjustTotal.
func (uc *CajaUseCase) SetTotal(ctx context.Context, actor domain.Principal, id string, total decimal.Decimal) (*domain.Caja, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return uc.cajaRepo.SetTotal(ctx, id, total)
}

// CheckConsistency recomputes the signed movement sum for a location and
// compares it against the stored caja total.
func (uc *CajaUseCase) CheckConsistency(ctx context.Context, localidad string) (*domain.ConsistencyReport, error) {
	cajas, err := uc.cajaRepo.ListByLocation(ctx, localidad, "")
	if err != nil {
		return nil, err
	}
	if len(cajas) == 0 {
		return nil, domain.ErrCajaNotFound
	}

	total := decimal.Zero
	for _, c := range cajas {
		total = total.Add(c.Total)
	}

	sum, err := uc.cajaRepo.MovementSum(ctx, localidad)
	if err != nil {
		return nil, err
	}

	diff := total.Sub(sum)

	return &domain.ConsistencyReport{
		Localidad:   localidad,
		Total:       total,
		MovementSum: sum,
		Difference:  diff,
		Consistent:  diff.IsZero(),
		CheckedAt:   time.Now().UTC(),
	}, nil
}
