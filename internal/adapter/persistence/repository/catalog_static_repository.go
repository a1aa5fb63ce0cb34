package repository

import (
	"context"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase/interfaces"
)

// CatalogStaticRepository serves the built-in catalog. It is the default
// when no catalog database is configured; the data is copied on every read
// so catalog entries stay immutable.

type CatalogStaticRepository struct{}

var _ interfaces.ICatalogRepository = (*CatalogStaticRepository)(nil)

func NewCatalogStaticRepository() *CatalogStaticRepository {
	return &CatalogStaticRepository{}
}

func (r *CatalogStaticRepository) Plans(_ context.Context) ([]entities.Plan, error) {
	return entities.DefaultPlans(), nil
}

func (r *CatalogStaticRepository) Apps(_ context.Context) ([]entities.AppOption, error) {
	return entities.DefaultApps(), nil
}

func (r *CatalogStaticRepository) Services(_ context.Context) ([]entities.AdditionalService, error) {
	return entities.DefaultServices(), nil
}

func (r *CatalogStaticRepository) Condominios(_ context.Context) ([]entities.Condominio, error) {
	return entities.DefaultCondominios(), nil
}

func (r *CatalogStaticRepository) TimeSlots(_ context.Context) ([]entities.TimeSlot, error) {
	return entities.DefaultTimeSlots(), nil
}
