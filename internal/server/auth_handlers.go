package server

import (
	"github.com/gofiber/fiber/v2"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/service"
	"devconnect/internal/validation"
)

// Register handles new user registration and returns a signed token.
func (s *Server) Register(c *fiber.Ctx) error {
	var req validation.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	observability.Logger.Info("user registered", "user_id", user.ID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// Login authenticates an email/password pair and returns a signed token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req validation.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	user, err := s.userService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// CurrentUser returns the authenticated user's record.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetByID(c.Context(), middleware.Principal(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
