package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tractor-backend/internal/apperrors"
	"tractor-backend/internal/models"
	"tractor-backend/internal/repositories"
)

func TestGenerateReminderEmailValidation(t *testing.T) {
	brandingRepo := repositories.NewBrandingRepository(t.TempDir())
	s := NewReminderService(nil, brandingRepo)

	tests := []struct {
		name string
		req  models.ReminderEmailRequest
	}{
		{"missing customer name", models.ReminderEmailRequest{AmountDue: 500, DueDate: "2025-02-10"}},
		{"zero amount", models.ReminderEmailRequest{CustomerName: "Ramesh", DueDate: "2025-02-10"}},
		{"missing due date", models.ReminderEmailRequest{CustomerName: "Ramesh", AmountDue: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.GenerateReminderEmail(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestGenerateReminderEmailUnconfigured(t *testing.T) {
	brandingRepo := repositories.NewBrandingRepository(t.TempDir())
	s := NewReminderService(nil, brandingRepo)

	_, err := s.GenerateReminderEmail(context.Background(), &models.ReminderEmailRequest{
		CustomerName: "Ramesh Kumar",
		AmountDue:    500,
		DueDate:      "2025-02-10",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "not configured")
}

func TestBrandingElements(t *testing.T) {
	tests := []struct {
		name string
		in   models.BrandingSettings
		want string
	}{
		{
			name: "name only",
			in:   models.BrandingSettings{BusinessName: "Tractor Seva Kendra"},
			want: "Business name: Tractor Seva Kendra",
		},
		{
			name: "full branding",
			in: models.BrandingSettings{
				BusinessName: "Tractor Seva Kendra",
				Tagline:      "Field work and haulage",
				PrimaryColor: "#2F6846",
			},
			want: "Business name: Tractor Seva Kendra. Tagline: Field work and haulage. Primary color: #2F6846",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brandingElements(tt.in))
		})
	}
}
