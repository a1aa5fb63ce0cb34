package interfaces

import (
	"context"

	"fibra_vendas/internal/domain/entities"
)

// ISessionRepository abstracts storage for in-progress order sessions.
//
// The default implementation keeps sessions in memory for the lifetime of
// the process; a DynamoDB-backed implementation can be selected by env for
// deployments where the API is not a single long-lived process.
//
// Get returns a zero-value session (empty ID) when nothing is found.

type ISessionRepository interface {
	Put(ctx context.Context, s entities.OrderSession) error
	Get(ctx context.Context, id string) (entities.OrderSession, error)
	Delete(ctx context.Context, id string) error
}
