package repository

import (
	"context"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row company
// configuration.
type SettingsRepository interface {
	// Get returns the settings row, or (nil, nil) when none exists yet.
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Create(ctx context.Context, settings *entity.CompanySettings) error
	Update(ctx context.Context, settings *entity.CompanySettings) error
}
