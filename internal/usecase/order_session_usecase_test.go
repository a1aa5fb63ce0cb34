package usecase

import (
	"context"
	"errors"
	"testing"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	mock_interfaces "fibra_vendas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderSessionUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewOrderSessionUseCase(repo)

	var stored entities.OrderSession
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.OrderSession) error {
			stored = s
			return nil
		})

	s, err := uc.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected generated id")
	}
	if s.Draft.Step != entities.FirstStep {
		t.Fatalf("expected draft at step 1, got %d", s.Draft.Step)
	}
	if s.Draft.DueDate != entities.DefaultDueDate {
		t.Fatalf("expected default due date, got %q", s.Draft.DueDate)
	}
	if stored.ID != s.ID {
		t.Fatalf("expected stored session %s, got %s", s.ID, stored.ID)
	}
}

func TestOrderSessionUseCase_Get(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewOrderSessionUseCase(nil)
		_, err := uc.Get(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewOrderSessionUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "missing").Return(entities.OrderSession{}, nil)

		_, err := uc.Get(context.Background(), "missing")
		if !errors.Is(err, ErrOrderSessionNotFound) {
			t.Fatalf("expected ErrOrderSessionNotFound, got %v", err)
		}
	})

	t.Run("repo failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewOrderSessionUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "id-1").Return(entities.OrderSession{}, errors.New("db"))

		_, err := uc.Get(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected repo error, got %v", err)
		}
	})
}

func TestOrderSessionUseCase_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewOrderSessionUseCase(repo)

	existing := entities.OrderSession{ID: "id-1", Draft: entities.NewOrderDraft()}
	repo.EXPECT().Get(gomock.Any(), "id-1").Return(existing, nil)

	var stored entities.OrderSession
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.OrderSession) error {
			stored = s
			return nil
		})

	s, err := uc.Dispatch(context.Background(), "id-1",
		order.SetContactInfo{Celular: "(11) 98888-7777"},
		order.SetPlan{Plan: entities.Plan{ID: 287, AppsLimit: 2}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Draft.Customer == nil || s.Draft.SelectedPlan == nil {
		t.Fatalf("expected both intents applied, got %+v", s.Draft)
	}
	if stored.Draft.SelectedPlan == nil || stored.Draft.SelectedPlan.ID != 287 {
		t.Fatal("expected reduced draft persisted")
	}
	if stored.UpdatedAt.IsZero() {
		t.Fatal("expected updated timestamp")
	}
}

func TestOrderSessionUseCase_SetStep(t *testing.T) {
	t.Run("locked step rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewOrderSessionUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "id-1").Return(entities.OrderSession{ID: "id-1", Draft: entities.NewOrderDraft()}, nil)

		_, err := uc.SetStep(context.Background(), "id-1", 3)
		if !errors.Is(err, ErrStepLocked) {
			t.Fatalf("expected ErrStepLocked, got %v", err)
		}
	})

	t.Run("rewind allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewOrderSessionUseCase(repo)

		draft := entities.NewOrderDraft()
		draft.Step = 3
		existing := entities.OrderSession{ID: "id-1", Draft: draft}
		repo.EXPECT().Get(gomock.Any(), "id-1").Return(existing, nil).Times(2)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.SetStep(context.Background(), "id-1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Draft.Step != 1 {
			t.Fatalf("expected step 1, got %d", s.Draft.Step)
		}
	})
}

func TestOrderSessionUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewOrderSessionUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)
	if err := uc.Reset(context.Background(), "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Reset(context.Background(), ""); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
}

func TestOrderSessionUseCase_SubmitLatch(t *testing.T) {
	uc := NewOrderSessionUseCase(nil)

	if !uc.BeginSubmit("id-1") {
		t.Fatal("expected first BeginSubmit to take the latch")
	}
	if uc.BeginSubmit("id-1") {
		t.Fatal("expected second BeginSubmit refused while in flight")
	}
	if !uc.BeginSubmit("id-2") {
		t.Fatal("expected independent latch per session")
	}

	uc.EndSubmit("id-1")
	if !uc.BeginSubmit("id-1") {
		t.Fatal("expected latch released after EndSubmit")
	}
}
