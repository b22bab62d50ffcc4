package services

import (
	"context"
	"fmt"

	"tractor-backend/internal/ai"
	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
)

// ReminderService turns a due amount into an email draft via the AI
// drafter, falling back to the saved branding when the caller sends no
// branding elements of their own.
type ReminderService struct {
	Drafter      *ai.Drafter
	BrandingRepo *repositories.BrandingRepository
}

func NewReminderService(drafter *ai.Drafter, brandingRepo *repositories.BrandingRepository) *ReminderService {
	return &ReminderService{Drafter: drafter, BrandingRepo: brandingRepo}
}

// GenerateReminderEmail validates the input and asks the drafter for a
// draft. Returns a VALIDATION error when no OpenAI key is configured.
func (s *ReminderService) GenerateReminderEmail(ctx context.Context, req *models.ReminderEmailRequest) (*models.ReminderEmailResponse, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	if s.Drafter == nil {
		return nil, apperrors.NewValidation("reminder email drafting is not configured")
	}

	branding := req.BrandingElements
	if branding == "" {
		saved, err := s.BrandingRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		branding = brandingElements(saved)
	}

	draft, err := s.Drafter.DraftReminderEmail(ctx, req.CustomerName, req.AmountDue, req.DueDate, branding)
	if err != nil {
		return nil, err
	}
	return &models.ReminderEmailResponse{EmailDraft: draft}, nil
}

func brandingElements(b models.BrandingSettings) string {
	out := fmt.Sprintf("Business name: %s", b.BusinessName)
	if b.Tagline != "" {
		out += fmt.Sprintf(". Tagline: %s", b.Tagline)
	}
	if b.PrimaryColor != "" {
		out += fmt.Sprintf(". Primary color: %s", b.PrimaryColor)
	}
	return out
}
