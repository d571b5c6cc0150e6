package services

import (
	"encoding/json"
	"fmt"
	"worksuite/app/dto"
	"worksuite/app/errs"
	"worksuite/app/models"
	"worksuite/app/repo"
	"worksuite/app/themes"

	"github.com/google/uuid"
)

type ThemeService struct{ themes *repo.ThemeRepository }

func NewThemeService(themes *repo.ThemeRepository) *ThemeService {
	return &ThemeService{themes: themes}
}

func (s *ThemeService) ListVisible(ownerID *string) ([]models.Theme, error) {
	return s.themes.ListVisible(ownerID)
}

// Create normalizes a custom theme definition against the preset defaults
// before storing it, so partial definitions render consistently.
func (s *ThemeService) Create(req dto.CreateThemeRequest, ownerID *string) (*models.Theme, error) {
	if req.Name == "" {
		return nil, errs.Validation("name", "required")
	}
	var preset themes.Preset
	if len(req.Data) == 0 || json.Unmarshal(req.Data, &preset) != nil {
		return nil, errs.Validation("data", "must be a JSON theme definition")
	}
	preset.Name = req.Name
	normalized, err := json.Marshal(themes.Normalize(preset))
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	t := &models.Theme{
		ID: uuid.NewString(), Name: req.Name, Data: string(normalized),
		OwnerID: ownerID, IsPublic: req.IsPublic,
	}
	if err := s.themes.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}
