package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated FinTrack user. Identity comes from Auth0;
// the auth0_id is the stable link between the JWT subject and the local row.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Auth0ID   string     `json:"-"`
	Email     string     `json:"email"`
	FullName  *string    `json:"fullName,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type UserRepository interface {
	GetByID(id uuid.UUID) (*User, error)
	GetByAuth0ID(auth0ID string) (*User, error)
	CreateOrGetByAuth0ID(auth0ID, email string, fullName *string) (*User, error)
	UpdateName(auth0ID string, fullName string) (*User, error)
	UpdateAvatarURL(auth0ID string, avatarURL string) (*User, error)
}
