package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devconnect/internal/models"
	"devconnect/internal/validation"
)

func strPtr(s string) *string { return &s }

func TestProfileUpsert_OnlySubmittedColumnsChange(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProfileService(profileRepo)

	var updates map[string]any
	profileRepo.On("Upsert", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updates = args.Get(2).(map[string]any)
		}).
		Return(&models.Profile{ID: 1, UserID: 1}, nil)

	_, err := svc.Upsert(context.Background(), 1, validation.ProfileRequest{
		Status:  "Developer",
		Skills:  "Go, SQL",
		Company: strPtr("Acme"),
	})
	assert.NoError(t, err)

	assert.Equal(t, "Developer", updates["status"])
	assert.Equal(t, models.StringList{"Go", "SQL"}, updates["skills"])
	assert.Equal(t, "Acme", updates["company"])
	assert.Contains(t, updates, "updated_at")
	// Omitted fields must not appear in the assignment set at all.
	assert.NotContains(t, updates, "bio")
	assert.NotContains(t, updates, "website")
	assert.NotContains(t, updates, "social_twitter")
}

func TestProfileUpsert_SocialColumns(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProfileService(profileRepo)

	var updates map[string]any
	profileRepo.On("Upsert", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updates = args.Get(2).(map[string]any)
		}).
		Return(&models.Profile{ID: 1, UserID: 1}, nil)

	_, err := svc.Upsert(context.Background(), 1, validation.ProfileRequest{
		Status:  "Developer",
		Skills:  "Go",
		Twitter: strPtr("https://twitter.com/jane"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://twitter.com/jane", updates["social_twitter"])
}

func TestAddExperience_RequiresProfile(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProfileService(profileRepo)

	profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddExperience(context.Background(), 1, validation.ExperienceRequest{
		Title: "Dev", Company: "Acme", Location: "Berlin", From: "2020-01-01",
	})
	var appErr *models.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.KindNotFound, appErr.Kind)
	assert.Equal(t, "Profile not found", appErr.Message)
	profileRepo.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything)
}

func TestAddExperience_ParsesDates(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProfileService(profileRepo)

	profile := &models.Profile{ID: 5, UserID: 1}
	profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(profile, nil)
	profileRepo.On("AddExperience", mock.Anything, mock.MatchedBy(func(e *models.Experience) bool {
		return e.ProfileID == 5 &&
			e.From.Year() == 2020 &&
			e.To != nil && e.To.Year() == 2022
	})).Return(nil)

	_, err := svc.AddExperience(context.Background(), 1, validation.ExperienceRequest{
		Title: "Dev", Company: "Acme", Location: "Berlin",
		From: "2020-01-01", To: "2022-06-30",
	})
	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestRemoveEducation_UsesOwnProfileScope(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProfileService(profileRepo)

	profile := &models.Profile{ID: 5, UserID: 1}
	profileRepo.On("GetByUserID", mock.Anything, uint(1)).Return(profile, nil)
	profileRepo.On("RemoveEducation", mock.Anything, uint(5), uint(9)).Return(nil)

	_, err := svc.RemoveEducation(context.Background(), 1, 9)
	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}
