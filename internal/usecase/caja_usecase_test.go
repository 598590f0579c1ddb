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

func TestCajaUseCase_ProvisionCaja(t *testing.T) {
	cajaRepo := mocks.NewMockCajaRepository()
	uc := usecase.NewCajaUseCase(cajaRepo, mocks.NewMockIDGenerator())
	actor := testActor()

	caja, err := uc.ProvisionCaja(context.Background(), actor, usecase.ProvisionCajaInput{
		Total: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if caja.Localidad != "cordoba" || !caja.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unexpected caja: %+v", caja)
	}

	t.Run("second provision conflicts", func(t *testing.T) {
		_, err := uc.ProvisionCaja(context.Background(), actor, usecase.ProvisionCajaInput{})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("missing localidad rejected", func(t *testing.T) {
		_, err := uc.ProvisionCaja(context.Background(), domain.Principal{}, usecase.ProvisionCajaInput{})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestCajaUseCase_SetTotal(t *testing.T) {
	cajaRepo := mocks.NewMockCajaRepository()
	cajaRepo.Seed(&domain.Caja{ID: "caja-1", Localidad: "cordoba", Total: decimal.NewFromInt(100)})
	uc := usecase.NewCajaUseCase(cajaRepo, mocks.NewMockIDGenerator())

	if _, err := uc.SetTotal(context.Background(), testActor(), "caja-1", decimal.NewFromInt(500)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-admin, got %v", err)
	}

	admin := testActor()
	admin.RoleID = domain.RoleAdmin
	caja, err := uc.SetTotal(context.Background(), admin, "caja-1", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected total 500, got %s", caja.Total)
	}
}

func TestCajaUseCase_AdjustTotal(t *testing.T) {
	cajaRepo := mocks.NewMockCajaRepository()
	uc := usecase.NewCajaUseCase(cajaRepo, mocks.NewMockIDGenerator())

	_, err := uc.AdjustTotal(context.Background(), &mocks.MockTransaction{}, "nowhere", decimal.NewFromInt(10))
	if !errors.Is(err, domain.ErrCajaNotFound) {
		t.Fatalf("expected ErrCajaNotFound, got %v", err)
	}
}

func TestCajaUseCase_CheckConsistency(t *testing.T) {
	t.Run("consistent caja", func(t *testing.T) {
		cajaRepo := mocks.NewMockCajaRepository()
		cajaRepo.Seed(&domain.Caja{ID: "caja-1", Localidad: "cordoba", Total: decimal.NewFromInt(180)})
		cajaRepo.MovementSumFunc = func(ctx context.Context, localidad string) (decimal.Decimal, error) {
			return decimal.NewFromInt(180), nil
		}
		uc := usecase.NewCajaUseCase(cajaRepo, mocks.NewMockIDGenerator())

		report, err := uc.CheckConsistency(context.Background(), "cordoba")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Consistent || !report.Difference.IsZero() {
			t.Errorf("expected consistent report, got %+v", report)
		}
	})

	t.Run("drifted caja", func(t *testing.T) {
		cajaRepo := mocks.NewMockCajaRepository()
		cajaRepo.Seed(&domain.Caja{ID: "caja-1", Localidad: "cordoba", Total: decimal.NewFromInt(200)})
		cajaRepo.MovementSumFunc = func(ctx context.Context, localidad string) (decimal.Decimal, error) {
			return decimal.NewFromInt(180), nil
		}
		uc := usecase.NewCajaUseCase(cajaRepo, mocks.NewMockIDGenerator())

		report, err := uc.CheckConsistency(context.Background(), "cordoba")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Consistent {
			t.Error("expected inconsistent report")
		}
		if !report.Difference.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected difference 20, got %s", report.Difference)
		}
	})

	t.Run("unknown location", func(t *testing.T) {
		uc := usecase.NewCajaUseCase(mocks.NewMockCajaRepository(), mocks.NewMockIDGenerator())
		if _, err := uc.CheckConsistency(context.Background(), "nowhere"); !errors.Is(err, domain.ErrCajaNotFound) {
			t.Fatalf("expected ErrCajaNotFound, got %v", err)
		}
	})
}
