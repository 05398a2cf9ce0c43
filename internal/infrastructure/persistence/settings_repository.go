package persistence

import (
	"context"
	"errors"

	"github.com/facturation/backend/internal/domain/company"
	"github.com/facturation/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSettingsRepository implements SettingsRepository using GORM.
// The parametres table holds exactly one row.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the settings singleton, seeding defaults when the table is empty
func (r *GormSettingsRepository) Get(ctx context.Context) (*company.Settings, error) {
	var model models.SettingsModel
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Order("created_at ASC").
		First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := company.DefaultSettings()
	if err := r.Save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// Save persists the settings singleton
func (r *GormSettingsRepository) Save(ctx context.Context, settings *company.Settings) error {
	model := models.SettingsModelFromDomain(settings)
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error
}

// Ensure GormSettingsRepository implements SettingsRepository
var _ company.SettingsRepository = (*GormSettingsRepository)(nil)
