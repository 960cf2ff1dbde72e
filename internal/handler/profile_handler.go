package handler

import (
	"io"
	"net/http"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/middleware"
	"github.com/fintrack/fintrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
	avatarService  *service.AvatarService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService, avatarService *service.AvatarService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		avatarService:  avatarService,
	}
}

// UpdateProfileRequest represents the update profile request body
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}

// ProfileResponse represents the profile in API responses
type ProfileResponse struct {
	UserResponse
	AvatarDownloadURL *string `json:"avatarDownloadUrl,omitempty"`
}

func (h *ProfileHandler) toProfileResponse(c echo.Context, user *domain.User) ProfileResponse {
	resp := ProfileResponse{UserResponse: toUserResponse(user)}

	// Avatar URLs stored as object paths get presigned on the way out
	if user.AvatarURL != nil && h.avatarService != nil && h.avatarService.IsEnabled() {
		if url, err := h.avatarService.PresignedURL(c.Request().Context(), *user.AvatarURL); err == nil {
			resp.AvatarDownloadURL = &url
		} else {
			log.Debug().Err(err).Msg("Failed to presign avatar URL")
		}
	}
	return resp
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.profileService.GetProfile(auth0ID)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to get profile")
		return NewNotFoundError(c, "User not found")
	}

	return c.JSON(http.StatusOK, h.toProfileResponse(c, user))
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.profileService.UpdateName(auth0ID, req.FullName)
	if err != nil {
		switch err {
		case domain.ErrNameRequired:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "fullName", Message: "Name is required"},
			})
		case domain.ErrNameTooLong:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "fullName", Message: "Name must be 255 characters or less"},
			})
		case domain.ErrUserNotFound:
			return NewNotFoundError(c, "User not found")
		default:
			log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to update profile")
			return NewInternalError(c, "Failed to update profile")
		}
	}

	log.Info().Str("auth0_id", auth0ID).Msg("Profile updated")
	return c.JSON(http.StatusOK, h.toProfileResponse(c, user))
}

// UploadAvatar handles POST /api/v1/profile/avatar
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	userID := middleware.GetUserID(c)
	if auth0ID == "" || userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	if h.avatarService == nil || !h.avatarService.IsEnabled() {
		return NewServiceUnavailableError(c, "Avatar uploads are disabled (storage not configured)")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "file", Message: "File is required"},
		})
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to process file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		return NewInternalError(c, "Failed to read file")
	}

	objectPath, err := h.avatarService.ProcessAndUpload(c.Request().Context(), userID, data, file.Filename)
	if err != nil {
		switch err {
		case service.ErrAvatarTooLarge:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "File too large. Maximum size is 5MB"},
			})
		case service.ErrInvalidAvatarFormat:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "Invalid format. Supported: JPEG, PNG, WebP"},
			})
		case service.ErrAvatarTooSmall:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "Image too small. Minimum 50x50 pixels"},
			})
		case service.ErrInvalidAvatarData:
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "file", Message: "Invalid image data"},
			})
		default:
			log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to upload avatar")
			return NewInternalError(c, "Failed to upload avatar")
		}
	}

	user, err := h.profileService.UpdateAvatarURL(auth0ID, objectPath)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to store avatar path")
		return NewInternalError(c, "Failed to update profile")
	}

	log.Info().Str("auth0_id", auth0ID).Str("object_path", objectPath).Msg("Avatar uploaded")
	return c.JSON(http.StatusOK, h.toProfileResponse(c, user))
}
