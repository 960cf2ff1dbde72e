package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// AvatarRepository defines the interface for avatar storage operations
type AvatarRepository interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}

// GenerateObjectPath creates a unique object path for a user's avatar
func GenerateObjectPath(userID uuid.UUID, variant string, ext string) string {
	filename := fmt.Sprintf("%s_%s%s", uuid.New().String(), variant, ext)
	return path.Join(userID.String(), "avatar", filename)
}
