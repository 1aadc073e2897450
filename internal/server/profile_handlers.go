package server

import (
	"github.com/gofiber/fiber/v2"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/validation"
)

// GetMyProfile returns the authenticated user's profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOwn(c.Context(), middleware.Principal(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetProfiles returns all profiles with their owners.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

// GetProfileByUser returns the profile owned by the user in the route.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "user_id", "Profile")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	profile, err := s.profileService.GetByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpsertProfile creates or updates the authenticated user's profile.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req validation.ProfileRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	profile, err := s.profileService.Upsert(c.Context(), middleware.Principal(c), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddExperience adds an experience entry to the authenticated user's profile.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req validation.ExperienceRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	profile, err := s.profileService.AddExperience(c.Context(), middleware.Principal(c), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveExperience removes an experience entry. Removing an entry that does
// not exist leaves the profile unchanged.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	entryID := paramEntryID(c, "exp_id")
	profile, err := s.profileService.RemoveExperience(c.Context(), middleware.Principal(c), entryID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddEducation adds an education entry to the authenticated user's profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req validation.EducationRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	profile, err := s.profileService.AddEducation(c.Context(), middleware.Principal(c), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveEducation removes an education entry. Removing an entry that does
// not exist leaves the profile unchanged.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	entryID := paramEntryID(c, "edu_id")
	profile, err := s.profileService.RemoveEducation(c.Context(), middleware.Principal(c), entryID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetGithubRepos relays a user's public GitHub repositories.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")
	repos, err := s.github.Repos(c.Context(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(repos)
}

// DeleteAccount removes the authenticated user's posts, profile and account.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	if err := s.accountService.DeleteAccount(c.Context(), principal); err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	observability.Logger.Info("account deletion requested", "user_id", principal)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted"})
}
