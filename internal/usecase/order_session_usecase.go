package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/domain/order"
	"fibra_vendas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrOrderSessionNotFound = errors.New("order session not found")
	ErrStepLocked           = errors.New("step locked")
	ErrSubmissionInFlight   = errors.New("submission already in flight")
)

// IOrderSessionUseCase is the draft store: it owns every order-in-progress
// and funnels all mutations through the single Dispatch entry point.

type IOrderSessionUseCase interface {
	Create(ctx context.Context) (entities.OrderSession, error)
	Get(ctx context.Context, id string) (entities.OrderSession, error)
	Dispatch(ctx context.Context, id string, intents ...order.Intent) (entities.OrderSession, error)
	SetStep(ctx context.Context, id string, step int) (entities.OrderSession, error)
	Reset(ctx context.Context, id string) error
	BeginSubmit(id string) bool
	EndSubmit(id string)
}

type OrderSessionUseCase struct {
	repo interfaces.ISessionRepository

	// inFlight guards against double-submit for the same session. One
	// controller is active per step at a time, so a plain set is enough.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ IOrderSessionUseCase = (*OrderSessionUseCase)(nil)

func NewOrderSessionUseCase(repo interfaces.ISessionRepository) *OrderSessionUseCase {
	return &OrderSessionUseCase{repo: repo, inFlight: map[string]struct{}{}}
}

func (u *OrderSessionUseCase) Create(ctx context.Context) (entities.OrderSession, error) {
	now := time.Now().UTC()
	s := entities.OrderSession{
		ID:        uuid.NewString(),
		Draft:     entities.NewOrderDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.Put(ctx, s); err != nil {
		return entities.OrderSession{}, err
	}
	log.Printf("[order][session] created order_id=%s", s.ID)
	return s, nil
}

func (u *OrderSessionUseCase) Get(ctx context.Context, id string) (entities.OrderSession, error) {
	return u.load(ctx, id)
}

// Dispatch applies the intents in order through the pure transition function
// and persists the resulting draft. Each intent tag is logged, which gives a
// replayable audit trail of the session.
func (u *OrderSessionUseCase) Dispatch(ctx context.Context, id string, intents ...order.Intent) (entities.OrderSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.OrderSession{}, err
	}

	for _, in := range intents {
		s.Draft = order.Reduce(s.Draft, in)
		log.Printf("[order][dispatch] order_id=%s intent=%s step=%d", s.ID, in.Tag(), s.Draft.Step)
	}
	s.UpdatedAt = time.Now().UTC()

	if err := u.repo.Put(ctx, s); err != nil {
		return entities.OrderSession{}, err
	}
	return s, nil
}

// SetStep is the gate-checked step change: rewind to a reached step, or
// advance one step when the current step's precondition holds.
func (u *OrderSessionUseCase) SetStep(ctx context.Context, id string, step int) (entities.OrderSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.OrderSession{}, err
	}
	if !order.CanSetStep(s.Draft, step) {
		log.Printf("[order][session] step change rejected order_id=%s from=%d to=%d", s.ID, s.Draft.Step, step)
		return entities.OrderSession{}, ErrStepLocked
	}
	return u.Dispatch(ctx, id, order.SetStep{Step: step})
}

func (u *OrderSessionUseCase) Reset(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[order][session] discarded order_id=%s", id)
	return nil
}

// BeginSubmit takes the submission latch for the session. It returns false
// when a submission is already running, so the caller can refuse re-entry.
func (u *OrderSessionUseCase) BeginSubmit(id string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[id]; busy {
		return false
	}
	u.inFlight[id] = struct{}{}
	return true
}

func (u *OrderSessionUseCase) EndSubmit(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, id)
}

func (u *OrderSessionUseCase) load(ctx context.Context, id string) (entities.OrderSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderSession{}, ErrInvalidOrderID
	}
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return entities.OrderSession{}, err
	}
	if s.ID == "" {
		return entities.OrderSession{}, ErrOrderSessionNotFound
	}
	return s, nil
}
