package usecase

import (
	"context"
	"errors"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	"fibra_vendas/internal/usecase/interfaces"
)

var (
	ErrSlotNotFound           = errors.New("time slot not found")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidDueDate         = errors.New("invalid due date")
	ErrContractStepIncomplete = errors.New("contract data incomplete")
)

var dueDates = map[string]struct{}{"5": {}, "10": {}, "15": {}, "20": {}, "25": {}}

// IContractUseCase is the step 4 controller: remaining customer data,
// installation scheduling and billing preferences.

type IContractUseCase interface {
	UpdateCustomer(ctx context.Context, orderID string, patch entities.CustomerPatch) (entities.OrderSession, error)
	SetScheduling(ctx context.Context, orderID, date, timeID string) (entities.OrderSession, error)
	SetPayment(ctx context.Context, orderID string, method entities.PaymentMethod, dueDate string) (entities.OrderSession, error)
	SetDueDate(ctx context.Context, orderID, dueDate string) (entities.OrderSession, error)
	Confirm(ctx context.Context, orderID string) (entities.OrderSession, error)
}

type ContractUseCase struct {
	sessions IOrderSessionUseCase
	catalog  interfaces.ICatalogRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(sessions IOrderSessionUseCase, catalog interfaces.ICatalogRepository) *ContractUseCase {
	return &ContractUseCase{sessions: sessions, catalog: catalog}
}

func (u *ContractUseCase) UpdateCustomer(ctx context.Context, orderID string, patch entities.CustomerPatch) (entities.OrderSession, error) {
	return u.sessions.Dispatch(ctx, orderID, order.SetCustomer{Patch: patch})
}

func (u *ContractUseCase) SetScheduling(ctx context.Context, orderID, date, timeID string) (entities.OrderSession, error) {
	slots, err := u.catalog.TimeSlots(ctx)
	if err != nil {
		return entities.OrderSession{}, err
	}
	for _, slot := range slots {
		if slot.ID == timeID {
			return u.sessions.Dispatch(ctx, orderID, order.SetScheduling{Scheduling: entities.Scheduling{
				Date:      date,
				TimeID:    slot.ID,
				TimeLabel: slot.Label,
			}})
		}
	}
	return entities.OrderSession{}, ErrSlotNotFound
}

func (u *ContractUseCase) SetPayment(ctx context.Context, orderID string, method entities.PaymentMethod, dueDate string) (entities.OrderSession, error) {
	if method != entities.PaymentCreditCard && method != entities.PaymentBoleto {
		return entities.OrderSession{}, ErrInvalidPaymentMethod
	}
	if dueDate == "" {
		dueDate = entities.DefaultDueDate
	}
	if _, ok := dueDates[dueDate]; !ok {
		return entities.OrderSession{}, ErrInvalidDueDate
	}
	return u.sessions.Dispatch(ctx, orderID, order.SetPayment{Method: method, DueDate: dueDate})
}

func (u *ContractUseCase) SetDueDate(ctx context.Context, orderID, dueDate string) (entities.OrderSession, error) {
	if _, ok := dueDates[dueDate]; !ok {
		return entities.OrderSession{}, ErrInvalidDueDate
	}
	return u.sessions.Dispatch(ctx, orderID, order.SetDueDate{DueDate: dueDate})
}

func (u *ContractUseCase) Confirm(ctx context.Context, orderID string) (entities.OrderSession, error) {
	s, err := u.sessions.Get(ctx, orderID)
	if err != nil {
		return entities.OrderSession{}, err
	}
	if s.Draft.Step == 4 && !order.CanAdvance(s.Draft, 4) {
		return entities.OrderSession{}, ErrContractStepIncomplete
	}
	return u.sessions.SetStep(ctx, orderID, 5)
}
