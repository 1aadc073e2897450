package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// ProfileService handles the profile document and its experience and
// education lists.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetOwn returns the acting user's profile.
func (s *ProfileService) GetOwn(ctx context.Context, principal uint) (*models.Profile, error) {
	return s.getByUser(ctx, principal)
}

// GetByUser returns the profile owned by the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUser(ctx, userID)
}

func (s *ProfileService) getByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile")
		}
		return nil, models.NewInternalError(err)
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// Upsert creates the acting user's profile or merges the submitted fields
// into the existing one. Omitted optional fields stay as they are; the
// experience and education lists are never touched here.
func (s *ProfileService) Upsert(ctx context.Context, principal uint, in validation.ProfileRequest) (*models.Profile, error) {
	skills := models.StringList(in.SkillList())

	profile := &models.Profile{
		UserID: principal,
		Status: in.Status,
		Skills: skills,
	}
	updates := map[string]any{
		"status":     in.Status,
		"skills":     skills,
		"updated_at": time.Now(),
	}

	assign := func(column string, dst *string, src *string) {
		if src == nil {
			return
		}
		*dst = *src
		updates[column] = *src
	}
	assign("company", &profile.Company, in.Company)
	assign("website", &profile.Website, in.Website)
	assign("location", &profile.Location, in.Location)
	assign("bio", &profile.Bio, in.Bio)
	assign("github_username", &profile.GithubUsername, in.GithubUsername)
	assign("social_youtube", &profile.Social.Youtube, in.Youtube)
	assign("social_twitter", &profile.Social.Twitter, in.Twitter)
	assign("social_facebook", &profile.Social.Facebook, in.Facebook)
	assign("social_linkedin", &profile.Social.Linkedin, in.Linkedin)
	assign("social_instagram", &profile.Social.Instagram, in.Instagram)

	saved, err := s.profileRepo.Upsert(ctx, profile, updates)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return saved, nil
}

// AddExperience prepends a new experience entry to the acting user's profile.
func (s *ProfileService) AddExperience(ctx context.Context, principal uint, in validation.ExperienceRequest) (*models.Profile, error) {
	profile, err := s.getByUser(ctx, principal)
	if err != nil {
		return nil, err
	}

	from, err := validation.ParseDate(in.From)
	if err != nil {
		return nil, models.NewFieldErrors([]models.FieldError{{Field: "from", Message: "From date is required"}})
	}
	entry := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		Current:     in.Current,
		Description: in.Description,
	}
	if in.To != "" {
		to, err := validation.ParseDate(in.To)
		if err != nil {
			return nil, models.NewFieldErrors([]models.FieldError{{Field: "to", Message: "To date is invalid"}})
		}
		entry.To = &to
	}

	if err := s.profileRepo.AddExperience(ctx, entry); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.getByUser(ctx, principal)
}

// RemoveExperience deletes an experience entry from the acting user's
// profile. Removing an entry that is already gone is a no-op.
func (s *ProfileService) RemoveExperience(ctx context.Context, principal, entryID uint) (*models.Profile, error) {
	profile, err := s.getByUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, entryID); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.getByUser(ctx, principal)
}

// AddEducation prepends a new education entry to the acting user's profile.
func (s *ProfileService) AddEducation(ctx context.Context, principal uint, in validation.EducationRequest) (*models.Profile, error) {
	profile, err := s.getByUser(ctx, principal)
	if err != nil {
		return nil, err
	}

	from, err := validation.ParseDate(in.From)
	if err != nil {
		return nil, models.NewFieldErrors([]models.FieldError{{Field: "from", Message: "From date is required"}})
	}
	entry := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		Current:      in.Current,
		Description:  in.Description,
	}
	if in.To != "" {
		to, err := validation.ParseDate(in.To)
		if err != nil {
			return nil, models.NewFieldErrors([]models.FieldError{{Field: "to", Message: "To date is invalid"}})
		}
		entry.To = &to
	}

	if err := s.profileRepo.AddEducation(ctx, entry); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.getByUser(ctx, principal)
}

// RemoveEducation deletes an education entry from the acting user's profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, principal, entryID uint) (*models.Profile, error) {
	profile, err := s.getByUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, entryID); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.getByUser(ctx, principal)
}
