package repository

import (
	"context"

	"buildconnect/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID          string   `gorm:"column:id;primaryKey;size:36"`
	Name        string   `gorm:"column:name;not null"`
	Slug        string   `gorm:"column:slug;uniqueIndex;not null"`
	Description string   `gorm:"column:description"`
	Icon        string   `gorm:"column:icon"`
	Services    []string `gorm:"column:services;type:text;serializer:json"`
}

func (categoryModel) TableName() string { return "service_categories" }

func toDomainCategory(m categoryModel) domain.ServiceCategory {
	services := m.Services
	if services == nil {
		services = []string{}
	}
	return domain.ServiceCategory{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Icon:        m.Icon,
		Services:    services,
	}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.ServiceCategory, error) {
	var rows []categoryModel
	if err := conn(ctx, r.db).Order("name").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.ServiceCategory, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCategory(m))
	}
	return out, nil
}

// Upsert inserts c or, when the slug is taken, refreshes the stored row.
func (r *CategoryRepository) Upsert(ctx context.Context, c *domain.ServiceCategory) error {
	m := categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Services:    c.Services,
	}
	err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "services"}),
	}).Create(&m).Error
	return translate(err)
}
