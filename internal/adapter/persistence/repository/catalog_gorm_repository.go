package repository

import (
	"context"
	"strings"

	"fibra_vendas/internal/domain/entities"
	"fibra_vendas/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// GORM models for the catalog tables. Features are stored as one
// pipe-separated column; the catalog is tiny and read-only at runtime.

type planModel struct {
	ID            int    `gorm:"primaryKey"`
	Name          string `gorm:"size:64"`
	Speed         int
	Price         float64
	OriginalPrice float64
	Features      string `gorm:"size:512"`
	AppsLimit     int
	BestValue     bool
}

func (planModel) TableName() string { return "catalog_plans" }

type appOptionModel struct {
	ID     string `gorm:"primaryKey;size:64"`
	Name   string `gorm:"size:64"`
	Logo   string `gorm:"size:256"`
	Domain string `gorm:"size:128"`
}

func (appOptionModel) TableName() string { return "catalog_apps" }

type additionalServiceModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:64"`
	Price       float64
	Description string `gorm:"size:256"`
}

func (additionalServiceModel) TableName() string { return "catalog_services" }

type condominioModel struct {
	ID     string `gorm:"primaryKey;size:64"`
	Nome   string `gorm:"size:128"`
	Bairro string `gorm:"size:128"`
}

func (condominioModel) TableName() string { return "catalog_condominios" }

type timeSlotModel struct {
	ID    string `gorm:"primaryKey;size:16"`
	Label string `gorm:"size:64"`
}

func (timeSlotModel) TableName() string { return "catalog_time_slots" }

// CatalogGormRepository reads the catalog from Postgres. Selected when
// CATALOG_DATABASE_DSN is set.

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) (*CatalogGormRepository, error) {
	if err := db.AutoMigrate(&planModel{}, &appOptionModel{}, &additionalServiceModel{}, &condominioModel{}, &timeSlotModel{}); err != nil {
		return nil, err
	}
	return &CatalogGormRepository{db: db}, nil
}

func (r *CatalogGormRepository) Plans(ctx context.Context) ([]entities.Plan, error) {
	var rows []planModel
	if err := r.db.WithContext(ctx).Order("price").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Plan, 0, len(rows))
	for _, m := range rows {
		var features []string
		if m.Features != "" {
			features = strings.Split(m.Features, "|")
		}
		out = append(out, entities.Plan{
			ID:            m.ID,
			Name:          m.Name,
			Speed:         m.Speed,
			Price:         m.Price,
			OriginalPrice: m.OriginalPrice,
			Features:      features,
			AppsLimit:     m.AppsLimit,
			BestValue:     m.BestValue,
		})
	}
	return out, nil
}

func (r *CatalogGormRepository) Apps(ctx context.Context) ([]entities.AppOption, error) {
	var rows []appOptionModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.AppOption, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.AppOption{ID: m.ID, Name: m.Name, Logo: m.Logo, Domain: m.Domain})
	}
	return out, nil
}

func (r *CatalogGormRepository) Services(ctx context.Context) ([]entities.AdditionalService, error) {
	var rows []additionalServiceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.AdditionalService, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.AdditionalService{ID: m.ID, Name: m.Name, Price: m.Price, Description: m.Description})
	}
	return out, nil
}

func (r *CatalogGormRepository) Condominios(ctx context.Context) ([]entities.Condominio, error) {
	var rows []condominioModel
	if err := r.db.WithContext(ctx).Order("nome").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Condominio, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Condominio{ID: m.ID, Nome: m.Nome, Bairro: m.Bairro})
	}
	return out, nil
}

func (r *CatalogGormRepository) TimeSlots(ctx context.Context) ([]entities.TimeSlot, error) {
	var rows []timeSlotModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.TimeSlot, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.TimeSlot{ID: m.ID, Label: m.Label})
	}
	return out, nil
}
