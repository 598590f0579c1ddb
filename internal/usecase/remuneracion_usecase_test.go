package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
	"github.com/fletero/backoffice/internal/usecase/mocks"
)

func remInput(amount int64) usecase.RemuneracionInput {
	return usecase.RemuneracionInput{
		Armador:           "armador sur",
		FechaCarga:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		FechaEntrega:      time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		KmLineal:          decimal.NewFromInt(480),
		PagoFleteroEspera: decimal.NewFromInt(30),
		Viaticos:          decimal.NewFromInt(15),
		Recaudacion:       decimal.NewFromInt(amount),
		Chofer:            "lopez",
		DatosCliente:      map[string]any{"nombre": "cliente sa"},
	}
}

func TestRemuneracionUseCase_Create(t *testing.T) {
	t.Run("credits the caja", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRemuneracionRepository()
		uc := usecase.NewRemuneracionUseCase(fx.deps, repo)

		rem, caja, err := uc.Create(context.Background(), testActor(), remInput(400))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !caja.Total.Equal(decimal.NewFromInt(1400)) {
			t.Errorf("expected caja total 1400, got %s", caja.Total)
		}
		if rem.Chofer != "lopez" || rem.Localidad != "cordoba" {
			t.Errorf("unexpected row metadata: %+v", rem)
		}
	})

	t.Run("validation matrix", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewRemuneracionUseCase(fx.deps, mocks.NewMockRemuneracionRepository())

		tests := []struct {
			name   string
			mutate func(*usecase.RemuneracionInput)
			want   error
		}{
			{"missing armador", func(in *usecase.RemuneracionInput) { in.Armador = "" }, domain.ErrInvalidInput},
			{"missing fechas", func(in *usecase.RemuneracionInput) { in.FechaCarga = time.Time{} }, domain.ErrInvalidInput},
			{"missing chofer", func(in *usecase.RemuneracionInput) { in.Chofer = "" }, domain.ErrInvalidInput},
			{"missing datos_cliente", func(in *usecase.RemuneracionInput) { in.DatosCliente = nil }, domain.ErrInvalidInput},
			{"zero recaudacion", func(in *usecase.RemuneracionInput) { in.Recaudacion = decimal.Zero }, domain.ErrInvalidAmount},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := remInput(400)
				tt.mutate(&in)
				_, _, err := uc.Create(context.Background(), testActor(), in)
				if !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
			})
		}

		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched after rejected inputs, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})
}

func TestRemuneracionUseCase_UpdateAndDelete(t *testing.T) {
	fx := newLedgerFixture(t, decimal.NewFromInt(1000))
	repo := mocks.NewMockRemuneracionRepository()
	uc := usecase.NewRemuneracionUseCase(fx.deps, repo)
	actor := testActor()

	created, _, err := uc.Create(context.Background(), actor, remInput(400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, caja, err := uc.Update(context.Background(), actor, created.ID, remInput(250))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(1250)) {
		t.Errorf("expected caja total 1250 after shrink, got %s", caja.Total)
	}

	caja, err = uc.Delete(context.Background(), actor, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected caja back at 1000, got %s", caja.Total)
	}
}
