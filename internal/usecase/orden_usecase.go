package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fletero/backoffice/internal/domain"
)

// OrdenUseCase manages driver work orders.
type OrdenUseCase struct {
	ordenRepo OrdenRepository
	idGen     IDGenerator
	graceDays int
}

// NewOrdenUseCase creates a new OrdenUseCase.
func NewOrdenUseCase(ordenRepo OrdenRepository, idGen IDGenerator, graceDays int) *OrdenUseCase {
	return &OrdenUseCase{
		ordenRepo: ordenRepo,
		idGen:     idGen,
		graceDays: graceDays,
	}
}

// OrdenInput carries the work order field set.
type OrdenInput struct {
	Chofer       string
	FechaLlegada time.Time
	OrdenFirma   string
	Finalizado   bool
}

func (in OrdenInput) validate() error {
	if in.Chofer == "" {
		return fmt.Errorf("%w: chofer", domain.ErrInvalidInput)
	}
	return nil
}

// Create inserts a new work order.
func (uc *OrdenUseCase) Create(ctx context.Context, input OrdenInput) (*domain.Orden, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	orden := &domain.Orden{
		ID:           uc.idGen.Generate(),
		Chofer:       input.Chofer,
		FechaLlegada: input.FechaLlegada,
		OrdenFirma:   input.OrdenFirma,
		Finalizado:   input.Finalizado,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.ordenRepo.Create(ctx, orden); err != nil {
		return nil, err
	}
	return orden, nil
}

// Update overwrites a work order.
func (uc *OrdenUseCase) Update(ctx context.Context, id string, input OrdenInput) (*domain.Orden, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	current, err := uc.ordenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Chofer = input.Chofer
	current.FechaLlegada = input.FechaLlegada
	current.OrdenFirma = input.OrdenFirma
	current.Finalizado = input.Finalizado
	if err := uc.ordenRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Finalizar marks a work order as finished.
func (uc *OrdenUseCase) Finalizar(ctx context.Context, id string) (*domain.Orden, error) {
	current, err := uc.ordenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Finalizado = true
	if err := uc.ordenRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a work order.
func (uc *OrdenUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.ordenRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.ordenRepo.Delete(ctx, id)
}

// GetOrden retrieves a work order by ID.
func (uc *OrdenUseCase) GetOrden(ctx context.Context, id string) (*domain.Orden, error) {
	return uc.ordenRepo.GetByID(ctx, id)
}

// ListOrdenes lists every work order.
func (uc *OrdenUseCase) ListOrdenes(ctx context.Context) ([]*domain.Orden, error) {
	return uc.ordenRepo.List(ctx)
}

// ListOrdenesMensual lists the current month's work orders.
func (uc *OrdenUseCase) ListOrdenesMensual(ctx context.Context) ([]*domain.Orden, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.graceDays)
	return uc.ordenRepo.ListByCreatedBetween(ctx, from, to)
}

// ListOrdenesPorFechas lists work orders within a date range.
func (uc *OrdenUseCase) ListOrdenesPorFechas(ctx context.Context, desde, hasta string) ([]*domain.Orden, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.ordenRepo.ListByCreatedBetween(ctx, from, to)
}
