package settings

import (
	"context"

	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists the singleton store settings row.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row, creating the default row if it is missing.
func (r *Repository) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", models.SettingsID).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	s = models.Settings{ID: models.SettingsID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&s).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&s, "id = ?", models.SettingsID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Save replaces the settings row.
func (r *Repository) Save(ctx context.Context, s *models.Settings) error {
	s.ID = models.SettingsID
	return r.db.WithContext(ctx).Save(s).Error
}
