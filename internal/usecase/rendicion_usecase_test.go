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

func rendicionInput(amount int64) usecase.RendicionInput {
	return usecase.RendicionInput{
		Armador:        "armador norte",
		RendicionFinal: decimal.NewFromInt(amount),
		Detalle:        "cierre de viaje",
	}
}

func TestRendicionUseCase_Create(t *testing.T) {
	t.Run("credits the caja by the rendicion_final", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRendicionRepository()
		uc := usecase.NewRendicionUseCase(fx.deps, repo)

		rendicion, caja, err := uc.Create(context.Background(), testActor(), rendicionInput(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !caja.Total.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected caja total 1200, got %s", caja.Total)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected committed total 1200, got %s", fx.cajaRepo.Total("cordoba"))
		}
		if !rendicion.RendicionFinal.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected stored rendicion_final 200, got %s", rendicion.RendicionFinal)
		}
		if rendicion.Localidad != "cordoba" || rendicion.Usuario != "maria" {
			t.Errorf("expected actor metadata on the row, got %q/%q", rendicion.Localidad, rendicion.Usuario)
		}
		if _, ok := repo.Get(rendicion.ID); !ok {
			t.Error("expected rendicion to be persisted")
		}
		events := fx.outboxRepo.Events()
		if len(events) != 1 || events[0].EventType != domain.EventTypeRendicionCreated {
			t.Errorf("expected one rendicion.created event, got %v", events)
		}
	})

	t.Run("rejects missing armador before any write", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewRendicionUseCase(fx.deps, mocks.NewMockRendicionRepository())

		in := rendicionInput(200)
		in.Armador = ""
		_, _, err := uc.Create(context.Background(), testActor(), in)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})

	t.Run("rejects zero rendicion_final", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewRendicionUseCase(fx.deps, mocks.NewMockRendicionRepository())

		_, _, err := uc.Create(context.Background(), testActor(), rendicionInput(0))
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("rolls back the row when no caja exists", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRendicionRepository()
		uc := usecase.NewRendicionUseCase(fx.deps, repo)

		actor := testActor()
		actor.Localidad = "rosario"

		rendicion, _, err := uc.Create(context.Background(), actor, rendicionInput(200))
		if !errors.Is(err, domain.ErrCajaNotFound) {
			t.Fatalf("expected ErrCajaNotFound, got %v", err)
		}
		if rendicion != nil {
			t.Error("expected no rendicion on failure")
		}
		if items, _ := repo.ListAll(context.Background()); len(items) != 0 {
			t.Errorf("expected no persisted rows, got %d", len(items))
		}
		if len(fx.outboxRepo.Events()) != 0 {
			t.Error("expected no events on failure")
		}
	})

	t.Run("rolls back the caja when the insert conflicts", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRendicionRepository()
		repo.CreateTxFunc = func(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error {
			return domain.ErrConflict
		}
		uc := usecase.NewRendicionUseCase(fx.deps, repo)

		_, _, err := uc.Create(context.Background(), testActor(), rendicionInput(200))
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched after conflict, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})
}

func TestRendicionUseCase_Update(t *testing.T) {
	t.Run("moves the caja by the difference", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRendicionRepository()
		uc := usecase.NewRendicionUseCase(fx.deps, repo)

		created, _, err := uc.Create(context.Background(), testActor(), rendicionInput(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, caja, err := uc.Update(context.Background(), testActor(), created.ID, rendicionInput(350))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 1000 + 200, then +150 for the difference.
		if !caja.Total.Equal(decimal.NewFromInt(1350)) {
			t.Errorf("expected caja total 1350, got %s", caja.Total)
		}
		if !updated.RendicionFinal.Equal(decimal.NewFromInt(350)) {
			t.Errorf("expected stored rendicion_final 350, got %s", updated.RendicionFinal)
		}
		stored, _ := repo.Get(created.ID)
		if !stored.RendicionFinal.Equal(decimal.NewFromInt(350)) {
			t.Errorf("expected committed rendicion_final 350, got %s", stored.RendicionFinal)
		}
	})

	t.Run("unknown id leaves everything untouched", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewRendicionUseCase(fx.deps, mocks.NewMockRendicionRepository())

		_, _, err := uc.Update(context.Background(), testActor(), "missing", rendicionInput(350))
		if !errors.Is(err, domain.ErrRendicionNotFound) {
			t.Fatalf("expected ErrRendicionNotFound, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})
}

func TestRendicionUseCase_Delete(t *testing.T) {
	t.Run("reverses the caja contribution", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRendicionRepository()
		uc := usecase.NewRendicionUseCase(fx.deps, repo)

		created, _, err := uc.Create(context.Background(), testActor(), rendicionInput(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		caja, err := uc.Delete(context.Background(), testActor(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !caja.Total.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected caja back at 1000, got %s", caja.Total)
		}
		if _, ok := repo.Get(created.ID); ok {
			t.Error("expected rendicion removed")
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewRendicionUseCase(fx.deps, mocks.NewMockRendicionRepository())

		_, err := uc.Delete(context.Background(), testActor(), "missing")
		if !errors.Is(err, domain.ErrRendicionNotFound) {
			t.Fatalf("expected ErrRendicionNotFound, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})

	t.Run("a failing delete keeps the caja intact", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockRendicionRepository()
		uc := usecase.NewRendicionUseCase(fx.deps, repo)

		created, _, err := uc.Create(context.Background(), testActor(), rendicionInput(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		storageErr := errors.New("storage gone")
		repo.DeleteTxFunc = func(ctx context.Context, tx usecase.Transaction, id string) error {
			return storageErr
		}

		if _, err := uc.Delete(context.Background(), testActor(), created.ID); !errors.Is(err, storageErr) {
			t.Fatalf("expected storage error, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected total still 1200, got %s", fx.cajaRepo.Total("cordoba"))
		}
		if _, ok := repo.Get(created.ID); !ok {
			t.Error("expected rendicion still present")
		}
	})
}
