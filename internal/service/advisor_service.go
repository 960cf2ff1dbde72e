package service

import (
	"strings"

	"github.com/fintrack/fintrack-backend/internal/domain"
)

// AdvisorService answers budgeting questions with canned guidance. A real
// model integration can replace Reply without touching the handler.
type AdvisorService struct{}

// NewAdvisorService creates a new AdvisorService
func NewAdvisorService() *AdvisorService {
	return &AdvisorService{}
}

// AdvisorReply is the advisor response payload
type AdvisorReply struct {
	Reply string `json:"reply"`
}

const advisorCannedReply = "Thanks for your question! Here are a few general tips: " +
	"track every expense no matter how small, set a monthly budget before the month starts, " +
	"and aim to put at least 10% of your income toward your savings goals. " +
	"Review your category breakdown weekly to spot where the money actually goes."

// Reply returns advice for a user message. An empty message is invalid.
func (s *AdvisorService) Reply(message string) (*AdvisorReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidInput
	}
	return &AdvisorReply{Reply: advisorCannedReply}, nil
}
