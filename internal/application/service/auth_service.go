package service

import (
	"context"
	"log"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/dcamacho/barkeep-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	profileRepo repository.ProfileRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(profileRepo repository.ProfileRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	UserName string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Profile      *entity.Profile
	AccessToken  string
	RefreshToken string
}

// Login authenticates a staff member by username and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	profile, err := s.profileRepo.GetByUserName(ctx, input.UserName)
	if err != nil {
		log.Printf("Error loading profile %q: %v", input.UserName, err)
		return nil, apperror.NewBackendError("load profile", err)
	}
	if profile == nil {
		// Single-terminal app; the distinct not-found message is what the
		// sign-in screen shows for a mistyped username.
		return nil, apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(input.Password, profile.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(profile.ID, profile.UserName, profile.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(profile.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Error loading profile %s: %v", userID, err)
		return nil, apperror.NewBackendError("load profile", err)
	}
	if profile == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(profile.ID, profile.UserName, profile.Role)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(profile.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
