package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// SalidaUseCase manages trip records. Salidas carry no caja coupling, so
// their writes run outside the transaction runner; events are staged
// best-effort after a successful write.
type SalidaUseCase struct {
	salidaRepo SalidaRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	graceDays  int
}

// NewSalidaUseCase creates a new SalidaUseCase.
func NewSalidaUseCase(salidaRepo SalidaRepository, outboxRepo OutboxRepository, idGen IDGenerator, graceDays int) *SalidaUseCase {
	return &SalidaUseCase{
		salidaRepo: salidaRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		graceDays:  graceDays,
	}
}

// SalidaInput carries the trip field set used by both create and update.
type SalidaInput struct {
	Chofer               string
	KmViajeControl       decimal.Decimal
	KmViajeControlPrecio decimal.Decimal
	FletesKm             decimal.Decimal
	FletesKmPrecio       decimal.Decimal
	Armadores            string
	TotalViaticos        decimal.Decimal
	Motivo               string
	TotalFlete           decimal.Decimal
	TotalControl         decimal.Decimal
	Fabrica              string
	Salida               string
	Espera               string
	ChoferVehiculo       string
	DatosCliente         map[string]any
}

func (in SalidaInput) validate() error {
	if in.Chofer == "" {
		return fmt.Errorf("%w: chofer", domain.ErrInvalidInput)
	}
	if len(in.DatosCliente) == 0 {
		return fmt.Errorf("%w: datos_cliente", domain.ErrInvalidInput)
	}
	return nil
}

// Create inserts a salida.
func (uc *SalidaUseCase) Create(ctx context.Context, actor domain.Principal, input SalidaInput) (*domain.Salida, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	salida := &domain.Salida{
		ID:                   uc.idGen.Generate(),
		Chofer:               input.Chofer,
		KmViajeControl:       input.KmViajeControl,
		KmViajeControlPrecio: input.KmViajeControlPrecio,
		FletesKm:             input.FletesKm,
		FletesKmPrecio:       input.FletesKmPrecio,
		Armadores:            input.Armadores,
		TotalViaticos:        input.TotalViaticos,
		Motivo:               input.Motivo,
		TotalFlete:           input.TotalFlete,
		TotalControl:         input.TotalControl,
		Fabrica:              input.Fabrica,
		Salida:               input.Salida,
		Espera:               input.Espera,
		ChoferVehiculo:       input.ChoferVehiculo,
		DatosCliente:         input.DatosCliente,
		Localidad:            actor.Localidad,
		Sucursal:             actor.Sucursal,
		Usuario:              actor.Username,
		RoleID:               actor.RoleID,
		CreatedAt:            time.Now().UTC(),
	}

	if err := uc.salidaRepo.Create(ctx, salida); err != nil {
		return nil, err
	}

	if err := uc.outboxRepo.Create(ctx, uc.salidaEvent(domain.EventTypeSalidaCreated, salida.ID, actor.Localidad)); err != nil {
		return nil, err
	}

	return salida, nil
}

// Update overwrites a salida.
func (uc *SalidaUseCase) Update(ctx context.Context, actor domain.Principal, id string, input SalidaInput) (*domain.Salida, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	current, err := uc.salidaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Chofer = input.Chofer
	current.KmViajeControl = input.KmViajeControl
	current.KmViajeControlPrecio = input.KmViajeControlPrecio
	current.FletesKm = input.FletesKm
	current.FletesKmPrecio = input.FletesKmPrecio
	current.Armadores = input.Armadores
	current.TotalViaticos = input.TotalViaticos
	current.Motivo = input.Motivo
	current.TotalFlete = input.TotalFlete
	current.TotalControl = input.TotalControl
	current.Fabrica = input.Fabrica
	current.Salida = input.Salida
	current.Espera = input.Espera
	current.ChoferVehiculo = input.ChoferVehiculo
	current.DatosCliente = input.DatosCliente
	current.Usuario = actor.Username
	current.RoleID = actor.RoleID

	if err := uc.salidaRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err := uc.outboxRepo.Create(ctx, uc.salidaEvent(domain.EventTypeSalidaUpdated, id, current.Localidad)); err != nil {
		return nil, err
	}

	return current, nil
}

// Delete removes a salida.
func (uc *SalidaUseCase) Delete(ctx context.Context, actor domain.Principal, id string) error {
	current, err := uc.salidaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.salidaRepo.Delete(ctx, id); err != nil {
		return err
	}

	return uc.outboxRepo.Create(ctx, uc.salidaEvent(domain.EventTypeSalidaDeleted, id, current.Localidad))
}

// GetSalida retrieves a salida by ID.
func (uc *SalidaUseCase) GetSalida(ctx context.Context, id string) (*domain.Salida, error) {
	return uc.salidaRepo.GetByID(ctx, id)
}

// ListSalidas lists the actor's location's salidas.
func (uc *SalidaUseCase) ListSalidas(ctx context.Context, actor domain.Principal) ([]*domain.Salida, error) {
	return uc.salidaRepo.ListByLocalidad(ctx, actor.Localidad)
}

// ListSalidasMensual lists the current month's salidas for the actor's
// location.
func (uc *SalidaUseCase) ListSalidasMensual(ctx context.Context, actor domain.Principal) ([]*domain.Salida, error) {
	from, to := domain.MonthWindow(time.Now().UTC(), uc.graceDays)
	return uc.salidaRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

// ListSalidasPorFechas lists salidas within a date range.
func (uc *SalidaUseCase) ListSalidasPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Salida, error) {
	from, to, err := domain.ParseDateRange(desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.salidaRepo.ListByCreatedBetween(ctx, actor.Localidad, from, to)
}

func (uc *SalidaUseCase) salidaEvent(eventType, aggregateID, localidad string) *domain.OutboxEvent {
	return domain.NewOutboxEvent(uc.idGen.Generate(), "salida", aggregateID, eventType, map[string]any{
		"id":        aggregateID,
		"localidad": localidad,
	})
}
