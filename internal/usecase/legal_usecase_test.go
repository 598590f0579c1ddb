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

func TestLegalUseCase_Create(t *testing.T) {
	t.Run("credits the caja by the recaudacion", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockLegalRepository()
		uc := usecase.NewLegalUseCase(fx.deps, repo)

		legal, caja, err := uc.Create(context.Background(), testActor(), remInput(600))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !caja.Total.Equal(decimal.NewFromInt(1600)) {
			t.Errorf("expected caja total 1600, got %s", caja.Total)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1600)) {
			t.Errorf("expected committed total 1600, got %s", fx.cajaRepo.Total("cordoba"))
		}
		if !legal.Recaudacion.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected stored recaudacion 600, got %s", legal.Recaudacion)
		}
		if legal.Localidad != "cordoba" || legal.Usuario != "maria" {
			t.Errorf("expected actor metadata on the row, got %q/%q", legal.Localidad, legal.Usuario)
		}
		if _, ok := repo.Get(legal.ID); !ok {
			t.Error("expected legal record to be persisted")
		}
		events := fx.outboxRepo.Events()
		if len(events) != 1 || events[0].EventType != domain.EventTypeLegalCreated {
			t.Errorf("expected one legal.created event, got %v", events)
		}
	})

	t.Run("validation matrix", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewLegalUseCase(fx.deps, mocks.NewMockLegalRepository())

		tests := []struct {
			name   string
			mutate func(*usecase.RemuneracionInput)
			want   error
		}{
			{"missing armador", func(in *usecase.RemuneracionInput) { in.Armador = "" }, domain.ErrInvalidInput},
			{"missing fechas", func(in *usecase.RemuneracionInput) { in.FechaCarga = time.Time{} }, domain.ErrInvalidInput},
			{"missing chofer", func(in *usecase.RemuneracionInput) { in.Chofer = "" }, domain.ErrInvalidInput},
			{"zero recaudacion", func(in *usecase.RemuneracionInput) { in.Recaudacion = decimal.Zero }, domain.ErrInvalidAmount},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := remInput(600)
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

	t.Run("rolls back the row when no caja exists", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockLegalRepository()
		uc := usecase.NewLegalUseCase(fx.deps, repo)

		actor := testActor()
		actor.Localidad = "rosario"

		legal, _, err := uc.Create(context.Background(), actor, remInput(600))
		if !errors.Is(err, domain.ErrCajaNotFound) {
			t.Fatalf("expected ErrCajaNotFound, got %v", err)
		}
		if legal != nil {
			t.Error("expected no legal record on failure")
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
		repo := mocks.NewMockLegalRepository()
		repo.CreateTxFunc = func(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error {
			return domain.ErrConflict
		}
		uc := usecase.NewLegalUseCase(fx.deps, repo)

		_, _, err := uc.Create(context.Background(), testActor(), remInput(600))
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched after conflict, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})
}

func TestLegalUseCase_Update(t *testing.T) {
	t.Run("moves the caja by the difference", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockLegalRepository()
		uc := usecase.NewLegalUseCase(fx.deps, repo)

		created, _, err := uc.Create(context.Background(), testActor(), remInput(600))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, caja, err := uc.Update(context.Background(), testActor(), created.ID, remInput(900))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 1000 + 600, then +300 for the difference.
		if !caja.Total.Equal(decimal.NewFromInt(1900)) {
			t.Errorf("expected caja total 1900, got %s", caja.Total)
		}
		if !updated.Recaudacion.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected stored recaudacion 900, got %s", updated.Recaudacion)
		}
		stored, _ := repo.Get(created.ID)
		if !stored.Recaudacion.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected committed recaudacion 900, got %s", stored.Recaudacion)
		}
	})

	t.Run("unknown id leaves everything untouched", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewLegalUseCase(fx.deps, mocks.NewMockLegalRepository())

		_, _, err := uc.Update(context.Background(), testActor(), "missing", remInput(900))
		if !errors.Is(err, domain.ErrLegalNotFound) {
			t.Fatalf("expected ErrLegalNotFound, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})
}

func TestLegalUseCase_Delete(t *testing.T) {
	t.Run("reverses the caja contribution", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockLegalRepository()
		uc := usecase.NewLegalUseCase(fx.deps, repo)

		created, _, err := uc.Create(context.Background(), testActor(), remInput(600))
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
			t.Error("expected legal record removed")
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		uc := usecase.NewLegalUseCase(fx.deps, mocks.NewMockLegalRepository())

		_, err := uc.Delete(context.Background(), testActor(), "missing")
		if !errors.Is(err, domain.ErrLegalNotFound) {
			t.Fatalf("expected ErrLegalNotFound, got %v", err)
		}
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total untouched, got %s", fx.cajaRepo.Total("cordoba"))
		}
	})

	t.Run("a failing delete keeps the caja intact", func(t *testing.T) {
		fx := newLedgerFixture(t, decimal.NewFromInt(1000))
		repo := mocks.NewMockLegalRepository()
		uc := usecase.NewLegalUseCase(fx.deps, repo)

		created, _, err := uc.Create(context.Background(), testActor(), remInput(600))
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
		if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1600)) {
			t.Errorf("expected total still 1600, got %s", fx.cajaRepo.Total("cordoba"))
		}
		if _, ok := repo.Get(created.ID); !ok {
			t.Error("expected legal record still present")
		}
	})
}
