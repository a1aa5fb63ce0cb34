package usecase

import (
	"context"
	"errors"
	"log"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	"fibra_vendas/internal/usecase/interfaces"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrAppNotFound        = errors.New("app not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrPlanStepIncomplete = errors.New("plan selection incomplete")
)

// IPlansUseCase is the step 2 controller: plan choice, bundled-app picks and
// additional services.

type IPlansUseCase interface {
	SelectPlan(ctx context.Context, orderID string, planID int) (entities.OrderSession, error)
	ToggleApp(ctx context.Context, orderID, appID string) (entities.OrderSession, error)
	ToggleService(ctx context.Context, orderID, serviceID string) (entities.OrderSession, error)
	Confirm(ctx context.Context, orderID string) (entities.OrderSession, error)
}

type PlansUseCase struct {
	sessions IOrderSessionUseCase
	catalog  interfaces.ICatalogRepository
}

var _ IPlansUseCase = (*PlansUseCase)(nil)

func NewPlansUseCase(sessions IOrderSessionUseCase, catalog interfaces.ICatalogRepository) *PlansUseCase {
	return &PlansUseCase{sessions: sessions, catalog: catalog}
}

func (u *PlansUseCase) SelectPlan(ctx context.Context, orderID string, planID int) (entities.OrderSession, error) {
	plans, err := u.catalog.Plans(ctx)
	if err != nil {
		return entities.OrderSession{}, err
	}
	for _, p := range plans {
		if p.ID == planID {
			log.Printf("[plans][usecase] plan selected order_id=%s plan=%s", orderID, p.Name)
			return u.sessions.Dispatch(ctx, orderID, order.SetPlan{Plan: p})
		}
	}
	return entities.OrderSession{}, ErrPlanNotFound
}

// ToggleApp flips app membership. Adding past the plan's apps limit is a
// silent no-op in the transition function, mirroring a disabled control.
func (u *PlansUseCase) ToggleApp(ctx context.Context, orderID, appID string) (entities.OrderSession, error) {
	apps, err := u.catalog.Apps(ctx)
	if err != nil {
		return entities.OrderSession{}, err
	}
	for _, a := range apps {
		if a.ID == appID {
			return u.sessions.Dispatch(ctx, orderID, order.ToggleApp{App: a})
		}
	}
	return entities.OrderSession{}, ErrAppNotFound
}

func (u *PlansUseCase) ToggleService(ctx context.Context, orderID, serviceID string) (entities.OrderSession, error) {
	services, err := u.catalog.Services(ctx)
	if err != nil {
		return entities.OrderSession{}, err
	}
	for _, s := range services {
		if s.ID == serviceID {
			return u.sessions.Dispatch(ctx, orderID, order.ToggleService{Service: s})
		}
	}
	return entities.OrderSession{}, ErrServiceNotFound
}

// Confirm advances to step 3. The gate requires the app selection to match
// the plan's limit exactly, not just stay under it.
func (u *PlansUseCase) Confirm(ctx context.Context, orderID string) (entities.OrderSession, error) {
	s, err := u.sessions.Get(ctx, orderID)
	if err != nil {
		return entities.OrderSession{}, err
	}
	if s.Draft.Step == 2 && !order.CanAdvance(s.Draft, 2) {
		return entities.OrderSession{}, ErrPlanStepIncomplete
	}
	return u.sessions.SetStep(ctx, orderID, 3)
}
