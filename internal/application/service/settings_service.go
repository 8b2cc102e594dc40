package service

import (
	"context"
	"log"
	"strings"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
)

// SettingsService manages the single-row company configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings row, materializing defaults when
// none exists yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Printf("Error loading company settings: %v", err)
		return nil, apperror.NewBackendError("load settings", err)
	}
	if settings == nil {
		settings = &entity.CompanySettings{MaxTables: entity.DefaultMaxTables}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	CompanyName *string
	MaxTables   *int
}

// UpdateSettings updates the company configuration, creating the row
// on first write.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Printf("Error loading company settings: %v", err)
		return nil, apperror.NewBackendError("load settings", err)
	}

	isNew := settings == nil
	if isNew {
		settings = &entity.CompanySettings{MaxTables: entity.DefaultMaxTables}
	}

	if input.CompanyName != nil {
		settings.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.MaxTables != nil {
		if *input.MaxTables < 1 {
			return nil, apperror.NewBadRequestError("Table count must be at least 1")
		}
		settings.MaxTables = *input.MaxTables
	}

	if isNew {
		err = s.settingsRepo.Create(ctx, settings)
	} else {
		err = s.settingsRepo.Update(ctx, settings)
	}
	if err != nil {
		log.Printf("Error saving company settings: %v", err)
		return nil, apperror.NewBackendError("save settings", err)
	}
	return settings, nil
}
