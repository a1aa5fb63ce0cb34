package usecase

import (
	"context"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the read-only commercial catalog to handlers.

type ICatalogUseCase interface {
	Plans(ctx context.Context) ([]entities.Plan, error)
	Apps(ctx context.Context) ([]entities.AppOption, error)
	Services(ctx context.Context) ([]entities.AdditionalService, error)
	Condominios(ctx context.Context) ([]entities.Condominio, error)
	TimeSlots(ctx context.Context) ([]entities.TimeSlot, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Plans(ctx context.Context) ([]entities.Plan, error) { return u.repo.Plans(ctx) }

func (u *CatalogUseCase) Apps(ctx context.Context) ([]entities.AppOption, error) {
	return u.repo.Apps(ctx)
}

func (u *CatalogUseCase) Services(ctx context.Context) ([]entities.AdditionalService, error) {
	return u.repo.Services(ctx)
}

func (u *CatalogUseCase) Condominios(ctx context.Context) ([]entities.Condominio, error) {
	return u.repo.Condominios(ctx)
}

func (u *CatalogUseCase) TimeSlots(ctx context.Context) ([]entities.TimeSlot, error) {
	return u.repo.TimeSlots(ctx)
}
