package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
	"github.com/fletero/backoffice/internal/usecase/mocks"
)

func TestGastoUseCase_Create(t *testing.T) {
	t.Run("stores the amount negated and debits the caja", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		gastoRepo := mocks.NewMockGastoRepository()
		uc := usecase.NewGastoUseCase(fx.deps, gastoRepo)

		gasto, caja, err := uc.Create(context.Background(), testActor(), usecase.CreateGastoInput{
			Tipo:        "combustible",
			Observacion: "carga ruta 9",
			Recaudacion: decimal.NewFromInt(120),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !gasto.Recaudacion.Equal(decimal.NewFromInt(-120)) {
			t.Errorf("expected stored recaudacion -120, got %s", gasto.Recaudacion)
		}
		if !caja.Total.Equal(decimal.NewFromInt(880)) {
			t.Errorf("expected caja total 880, got %s", caja.Total)
		}
	})

	t.Run("a negative magnitude is normalized before negation", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewGastoUseCase(fx.deps, mocks.NewMockGastoRepository())

		gasto, caja, err := uc.Create(context.Background(), testActor(), usecase.CreateGastoInput{
			Observacion: "ya negativo",
			Recaudacion: decimal.NewFromInt(-120),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gasto.Recaudacion.Equal(decimal.NewFromInt(-120)) {
			t.Errorf("expected stored recaudacion -120, got %s", gasto.Recaudacion)
		}
		if !caja.Total.Equal(decimal.NewFromInt(880)) {
			t.Errorf("expected caja total 880, got %s", caja.Total)
		}
	})

	t.Run("rejects missing observacion", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewGastoUseCase(fx.deps, mocks.NewMockGastoRepository())

		_, _, err := uc.Create(context.Background(), testActor(), usecase.CreateGastoInput{
			Recaudacion: decimal.NewFromInt(120),
		})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})
}

func TestGastoUseCase_Update(t *testing.T) {
	t.Run("shrinking an expense credits the caja", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		gastoRepo := mocks.NewMockGastoRepository()
		uc := usecase.NewGastoUseCase(fx.deps, gastoRepo)

		created, _, err := uc.Create(context.Background(), testActor(), usecase.CreateGastoInput{
			Observacion: "peajes",
			Recaudacion: decimal.NewFromInt(80),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Stored -80, new stored -50: delta is +30 on top of 920.
		updated, caja, err := uc.Update(context.Background(), testActor(), created.ID, usecase.UpdateGastoInput{
			Tipo:        "peajes",
			Recaudacion: decimal.NewFromInt(50),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Recaudacion.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("expected stored recaudacion -50, got %s", updated.Recaudacion)
		}
		if !caja.Total.Equal(decimal.NewFromInt(950)) {
			t.Errorf("expected caja total 950, got %s", caja.Total)
		}
	})

	t.Run("growing an expense debits the caja", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		gastoRepo := mocks.NewMockGastoRepository()
		uc := usecase.NewGastoUseCase(fx.deps, gastoRepo)

		created, _, err := uc.Create(context.Background(), testActor(), usecase.CreateGastoInput{
			Observacion: "reparacion",
			Recaudacion: decimal.NewFromInt(50),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, caja, err := uc.Update(context.Background(), testActor(), created.ID, usecase.UpdateGastoInput{
			Recaudacion: decimal.NewFromInt(200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !caja.Total.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected caja total 800, got %s", caja.Total)
		}
	})
}

func TestGastoUseCase_Delete(t *testing.T) {
	fx := newLedgerFixture(t, decimal.NewFromInt(1000))
	gastoRepo := mocks.NewMockGastoRepository()
	uc := usecase.NewGastoUseCase(fx.deps, gastoRepo)

	created, _, err := uc.Create(context.Background(), testActor(), usecase.CreateGastoInput{
		Observacion: "anulado",
		Recaudacion: decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Stored -120; deleting adds it back.
	caja, err := uc.Delete(context.Background(), testActor(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected caja back at 1000, got %s", caja.Total)
	}
	if _, ok := gastoRepo.Get(created.ID); ok {
		t.Error("expected gasto removed")
	}
}
