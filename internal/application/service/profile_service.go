package service

import (
	"context"
	"log"
	"strings"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/dcamacho/barkeep-api/pkg/utils"
	"github.com/google/uuid"
)

// ProfileService handles staff account management
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// CreateProfileInput represents the create profile input
type CreateProfileInput struct {
	FullName    string
	UserName    string
	Password    string
	Role        string
	NumberPhone *string
}

// CreateProfile creates a new staff account
func (s *ProfileService) CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error) {
	userName := strings.TrimSpace(strings.ToLower(input.UserName))
	if userName == "" {
		return nil, apperror.NewBadRequestError("Username is required")
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewBadRequestError("Password must be at least 6 characters")
	}

	role := input.Role
	if role == "" {
		role = enum.RoleWaiter
	}
	if !enum.IsValidRole(role) {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	existing, err := s.profileRepo.GetByUserName(ctx, userName)
	if err != nil {
		log.Printf("Error checking username %q: %v", userName, err)
		return nil, apperror.NewBackendError("load profile", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		FullName:    strings.TrimSpace(input.FullName),
		UserName:    userName,
		Password:    hashedPassword,
		Role:        role,
		NumberPhone: input.NumberPhone,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		log.Printf("Error creating profile %q: %v", userName, err)
		return nil, apperror.NewBackendError("create profile", err)
	}
	return profile, nil
}

// UpdateProfileInput represents the update profile input. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	FullName    *string
	Password    *string
	Role        *string
	NumberPhone *string
}

// UpdateProfile applies a partial update to a staff account
func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Role != nil {
		if !enum.IsValidRole(*input.Role) {
			return nil, apperror.NewBadRequestError("Invalid role")
		}
		profile.Role = *input.Role
	}
	if input.NumberPhone != nil {
		profile.NumberPhone = input.NumberPhone
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, apperror.NewBadRequestError("Password must be at least 6 characters")
		}
		hashedPassword, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		profile.Password = hashedPassword
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		log.Printf("Error updating profile %s: %v", id, err)
		return nil, apperror.NewBackendError("update profile", err)
	}
	return profile, nil
}

// GetProfile retrieves a staff account by ID
func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error loading profile %s: %v", id, err)
		return nil, apperror.NewBackendError("load profile", err)
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return profile, nil
}

// ListProfiles lists all staff accounts
func (s *ProfileService) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing profiles: %v", err)
		return nil, apperror.NewBackendError("list profiles", err)
	}
	return profiles, nil
}

// DeleteProfile removes a staff account. The caller cannot delete
// their own account.
func (s *ProfileService) DeleteProfile(ctx context.Context, id, callerID uuid.UUID) error {
	if id == callerID {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}
	if _, err := s.GetProfile(ctx, id); err != nil {
		return err
	}
	if err := s.profileRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting profile %s: %v", id, err)
		return apperror.NewBackendError("delete profile", err)
	}
	return nil
}
