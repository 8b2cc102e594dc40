package handler

import (
	"github.com/dcamacho/barkeep-api/internal/application/service"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/request"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles staff account management HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// List returns all staff accounts
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profiles retrieved successfully", profiles)
}

// Create handles creating a staff account
func (h *ProfileHandler) Create(c *gin.Context) {
	var req request.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), &service.CreateProfileInput{
		FullName:    req.FullName,
		UserName:    req.UserName,
		Password:    req.Password,
		Role:        req.Role,
		NumberPhone: req.NumberPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Profile created successfully", profile)
}

// Update handles partially updating a staff account
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), id, &service.UpdateProfileInput{
		FullName:    req.FullName,
		Password:    req.Password,
		Role:        req.Role,
		NumberPhone: req.NumberPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile updated successfully", profile)
}

// Delete handles removing a staff account
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), id, *userID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile deleted successfully", nil)
}
