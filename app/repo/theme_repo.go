package repo

import (
	"fmt"
	"worksuite/app/models"

	"gorm.io/gorm"
)

type ThemeRepository struct{ db *gorm.DB }

func NewThemeRepository(db *gorm.DB) *ThemeRepository { return &ThemeRepository{db: db} }

func (r *ThemeRepository) Create(t *models.Theme) error {
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("create theme: %w", err)
	}
	return nil
}

// ListVisible returns public themes plus, when the caller is known, their own.
func (r *ThemeRepository) ListVisible(ownerID *string) ([]models.Theme, error) {
	q := r.db.Model(&models.Theme{})
	if ownerID != nil {
		q = q.Where("is_public = ? OR owner_id = ?", true, *ownerID)
	} else {
		q = q.Where("is_public = ?", true)
	}
	var out []models.Theme
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return out, nil
}
