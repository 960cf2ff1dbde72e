package service

import (
	"strings"

	"github.com/fintrack/fintrack-backend/internal/domain"
	"github.com/fintrack/fintrack-backend/internal/events"
)

// ProfileService handles user profile operations
type ProfileService struct {
	userRepo       domain.UserRepository
	eventPublisher events.EventPublisher
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ProfileService) SetEventPublisher(publisher events.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ProfileService) publishEvent(user *domain.User, event events.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(user.ID, event)
	}
}

// GetProfile returns the profile for an Auth0 subject
func (s *ProfileService) GetProfile(auth0ID string) (*domain.User, error) {
	return s.userRepo.GetByAuth0ID(auth0ID)
}

// UpdateName updates the user's display name
func (s *ProfileService) UpdateName(auth0ID string, fullName string) (*domain.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, domain.ErrNameRequired
	}
	if len(fullName) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	user, err := s.userRepo.UpdateName(auth0ID, fullName)
	if err != nil {
		return nil, err
	}

	s.publishEvent(user, events.ProfileUpdated(user))
	return user, nil
}

// UpdateAvatarURL stores the avatar object path on the user record
func (s *ProfileService) UpdateAvatarURL(auth0ID string, avatarURL string) (*domain.User, error) {
	user, err := s.userRepo.UpdateAvatarURL(auth0ID, avatarURL)
	if err != nil {
		return nil, err
	}

	s.publishEvent(user, events.ProfileUpdated(user))
	return user, nil
}
