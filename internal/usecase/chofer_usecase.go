package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fletero/backoffice/internal/domain"
)

// ChoferUseCase manages the driver registry.
type ChoferUseCase struct {
	choferRepo ChoferRepository
	idGen      IDGenerator
}

// NewChoferUseCase creates a new ChoferUseCase.
func NewChoferUseCase(choferRepo ChoferRepository, idGen IDGenerator) *ChoferUseCase {
	return &ChoferUseCase{
		choferRepo: choferRepo,
		idGen:      idGen,
	}
}

// ChoferInput carries the driver field set.
type ChoferInput struct {
	Nombre   string
	Vehiculo string
	Telefono string
}

func (in ChoferInput) validate() error {
	if in.Nombre == "" {
		return fmt.Errorf("%w: nombre", domain.ErrInvalidInput)
	}
	return nil
}

// Create registers a driver under the actor's location.
func (uc *ChoferUseCase) Create(ctx context.Context, actor domain.Principal, input ChoferInput) (*domain.Chofer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	chofer := &domain.Chofer{
		ID:        uc.idGen.Generate(),
		Nombre:    input.Nombre,
		Vehiculo:  input.Vehiculo,
		Telefono:  input.Telefono,
		Localidad: actor.Localidad,
		Sucursal:  actor.Sucursal,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.choferRepo.Create(ctx, chofer); err != nil {
		return nil, err
	}
	return chofer, nil
}

// Update overwrites a driver's details.
func (uc *ChoferUseCase) Update(ctx context.Context, id string, input ChoferInput) (*domain.Chofer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	current, err := uc.choferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Nombre = input.Nombre
	current.Vehiculo = input.Vehiculo
	current.Telefono = input.Telefono
	if err := uc.choferRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a driver from the registry.
func (uc *ChoferUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.choferRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.choferRepo.Delete(ctx, id)
}

// GetChofer retrieves a driver by ID.
func (uc *ChoferUseCase) GetChofer(ctx context.Context, id string) (*domain.Chofer, error) {
	return uc.choferRepo.GetByID(ctx, id)
}

// ListChoferes lists drivers registered under the actor's location.
func (uc *ChoferUseCase) ListChoferes(ctx context.Context, actor domain.Principal) ([]*domain.Chofer, error) {
	return uc.choferRepo.ListByLocalidad(ctx, actor.Localidad)
}
