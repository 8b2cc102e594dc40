package repository

import (
	"context"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ProfileRepository defines the interface for staff account data access
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByUserName(ctx context.Context, userName string) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
