package interfaces

import (
	"context"

	"fibra_vendas/internal/domain/entities"
)

// ICatalogRepository serves the immutable commercial catalog.
//
// One catalog feeds both the pricing derivation and the step usecases, so
// plans/apps/services can never drift between consumers.

type ICatalogRepository interface {
	Plans(ctx context.Context) ([]entities.Plan, error)
	Apps(ctx context.Context) ([]entities.AppOption, error)
	Services(ctx context.Context) ([]entities.AdditionalService, error)
	Condominios(ctx context.Context) ([]entities.Condominio, error)
	TimeSlots(ctx context.Context) ([]entities.TimeSlot, error)
}
