package repository

import (
	"context"
	"sync"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase/interfaces"
)

// SessionMemoryRepository keeps capture sessions in process memory, the
// default for the single-instance API: a session lives for the duration of
// the checkout and is discarded on submit or reset.
//
// Snapshots are cloned both ways so no caller can alias the stored draft.

type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.OrderSession
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: map[string]entities.OrderSession{}}
}

func (r *SessionMemoryRepository) Put(_ context.Context, s entities.OrderSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Draft = s.Draft.Clone()
	r.sessions[s.ID] = s
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (entities.OrderSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return entities.OrderSession{}, nil
	}
	s.Draft = s.Draft.Clone()
	return s, nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
