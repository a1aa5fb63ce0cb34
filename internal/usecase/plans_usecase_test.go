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

func newCatalogMock(ctrl *gomock.Controller) *mock_interfaces.MockICatalogRepository {
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	catalog.EXPECT().Plans(gomock.Any()).Return(entities.DefaultPlans(), nil).AnyTimes()
	catalog.EXPECT().Apps(gomock.Any()).Return(entities.DefaultApps(), nil).AnyTimes()
	catalog.EXPECT().Services(gomock.Any()).Return(entities.DefaultServices(), nil).AnyTimes()
	catalog.EXPECT().TimeSlots(gomock.Any()).Return(entities.DefaultTimeSlots(), nil).AnyTimes()
	return catalog
}

func TestPlansUseCase_SelectPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := NewOrderSessionUseCase(newFakeSessionRepo())
	uc := NewPlansUseCase(sessions, newCatalogMock(ctrl))
	s := seedSession(t, sessions)

	out, err := uc.SelectPlan(context.Background(), s.ID, 287)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Draft.SelectedPlan == nil || out.Draft.SelectedPlan.Name != "TURBO" {
		t.Fatalf("expected TURBO selected, got %+v", out.Draft.SelectedPlan)
	}

	_, err = uc.SelectPlan(context.Background(), s.ID, 999)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestPlansUseCase_ToggleApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := NewOrderSessionUseCase(newFakeSessionRepo())
	uc := NewPlansUseCase(sessions, newCatalogMock(ctrl))
	s := seedSession(t, sessions)

	if _, err := uc.SelectPlan(context.Background(), s.ID, 287); err != nil {
		t.Fatalf("select plan: %v", err)
	}

	out, err := uc.ToggleApp(context.Background(), s.ID, "netflix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Draft.HasApp("netflix") {
		t.Fatal("expected netflix selected")
	}

	_, err = uc.ToggleApp(context.Background(), s.ID, "nope")
	if !errors.Is(err, ErrAppNotFound) {
		t.Fatalf("expected ErrAppNotFound, got %v", err)
	}
}

func TestPlansUseCase_ToggleService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := NewOrderSessionUseCase(newFakeSessionRepo())
	uc := NewPlansUseCase(sessions, newCatalogMock(ctrl))
	s := seedSession(t, sessions)

	out, err := uc.ToggleService(context.Background(), s.ID, "mesh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Draft.HasService("mesh") {
		t.Fatal("expected mesh selected")
	}

	_, err = uc.ToggleService(context.Background(), s.ID, "nope")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestPlansUseCase_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := NewOrderSessionUseCase(newFakeSessionRepo())
	uc := NewPlansUseCase(sessions, newCatalogMock(ctrl))
	s := seedSession(t, sessions)

	// Move the draft to step 2 first.
	if _, err := sessions.Dispatch(context.Background(), s.ID, order.SetStep{Step: 2}); err != nil {
		t.Fatalf("seed step: %v", err)
	}
	if _, err := uc.SelectPlan(context.Background(), s.ID, 287); err != nil {
		t.Fatalf("select plan: %v", err)
	}
	if _, err := uc.ToggleApp(context.Background(), s.ID, "netflix"); err != nil {
		t.Fatalf("toggle app: %v", err)
	}

	_, err := uc.Confirm(context.Background(), s.ID)
	if !errors.Is(err, ErrPlanStepIncomplete) {
		t.Fatalf("expected ErrPlanStepIncomplete with 1 of 2 apps, got %v", err)
	}

	if _, err := uc.ToggleApp(context.Background(), s.ID, "disney"); err != nil {
		t.Fatalf("toggle app: %v", err)
	}
	out, err := uc.Confirm(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Draft.Step != 3 {
		t.Fatalf("expected step 3, got %d", out.Draft.Step)
	}
}
