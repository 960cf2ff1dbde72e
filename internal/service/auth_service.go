package service

import (
	"context"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuthService handles the post-login user provisioning flow
type AuthService struct {
	userRepo domain.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// HandleCallback ensures a local user exists for the Auth0 subject.
// Called after the frontend completes the Auth0 login flow.
func (s *AuthService) HandleCallback(auth0ID, email string, fullName *string) (*domain.User, error) {
	if auth0ID == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.CreateOrGetByAuth0ID(auth0ID, email, fullName)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("auth0_id", auth0ID).
		Str("user_id", user.ID.String()).
		Msg("User resolved from Auth0 callback")

	return user, nil
}

// GetCurrentUser returns the user record for an Auth0 subject
func (s *AuthService) GetCurrentUser(auth0ID string) (*domain.User, error) {
	return s.userRepo.GetByAuth0ID(auth0ID)
}

// GetUserIDByAuth0ID resolves the local user ID for an Auth0 subject.
// Satisfies the auth middleware and WebSocket user lookup interfaces.
func (s *AuthService) GetUserIDByAuth0ID(ctx context.Context, auth0ID string) (uuid.UUID, error) {
	user, err := s.userRepo.GetByAuth0ID(auth0ID)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}
