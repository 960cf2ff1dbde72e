package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fintrack/fintrack-backend/internal/repository/storage"
	"github.com/google/uuid"
)

const (
	MaxAvatarSize   = 5 * 1024 * 1024 // 5MB
	MinAvatarWidth  = 50
	MinAvatarHeight = 50
	AvatarWidth     = 256
	JPEGQuality     = 85

	// PresignedURLExpiry is how long avatar download links stay valid
	PresignedURLExpiry = 24 * time.Hour
)

var (
	ErrAvatarTooLarge             = errors.New("file too large. Maximum size is 5MB")
	ErrInvalidAvatarFormat        = errors.New("invalid format. Supported: JPEG, PNG, WebP")
	ErrAvatarTooSmall             = errors.New("image too small. Minimum 50x50 pixels")
	ErrInvalidAvatarData          = errors.New("invalid image data")
	ErrAvatarStorageNotConfigured = errors.New("avatar storage not configured")
)

// AllowedAvatarExtensions maps extensions to content types
var AllowedAvatarExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// AvatarService handles avatar processing and storage
type AvatarService struct {
	storage storage.AvatarRepository
}

// NewAvatarService creates a new AvatarService
func NewAvatarService(storage storage.AvatarRepository) *AvatarService {
	return &AvatarService{storage: storage}
}

// IsEnabled indicates whether uploads are supported (storage configured).
func (s *AvatarService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// validateAndDecode validates the image and returns the decoded image
func (s *AvatarService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	if len(data) > MaxAvatarSize {
		return nil, ErrAvatarTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := AllowedAvatarExtensions[ext]; !ok {
		return nil, ErrInvalidAvatarFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidAvatarData
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinAvatarWidth || bounds.Dy() < MinAvatarHeight {
		return nil, ErrAvatarTooSmall
	}

	return img, nil
}

// ProcessAndUpload resizes an avatar image and uploads it, returning the
// object path stored on the user record.
func (s *AvatarService) ProcessAndUpload(ctx context.Context, userID uuid.UUID, data []byte, filename string) (string, error) {
	if !s.IsEnabled() {
		return "", ErrAvatarStorageNotConfigured
	}

	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return "", err
	}

	processed := img
	if img.Bounds().Dx() > AvatarWidth {
		// Resize maintaining aspect ratio
		processed = imaging.Resize(img, AvatarWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	objectPath := storage.GenerateObjectPath(userID, "avatar", ".jpg")
	path, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return path, nil
}

// PresignedURL returns a temporary download URL for a stored avatar
func (s *AvatarService) PresignedURL(ctx context.Context, objectPath string) (string, error) {
	if objectPath == "" {
		return "", nil
	}
	if !s.IsEnabled() {
		return "", ErrAvatarStorageNotConfigured
	}
	return s.storage.GeneratePresignedURL(ctx, objectPath, PresignedURLExpiry)
}

// Delete removes a stored avatar object
func (s *AvatarService) Delete(ctx context.Context, objectPath string) error {
	if objectPath == "" {
		return nil
	}
	if !s.IsEnabled() {
		return ErrAvatarStorageNotConfigured
	}
	return s.storage.Delete(ctx, objectPath)
}
