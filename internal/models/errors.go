package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error kinds returned to clients. Every failure carries exactly one kind so
// callers can branch without parsing messages.
const (
	KindValidation      = "VALIDATION_ERROR"
	KindNotFound        = "NOT_FOUND"
	KindConflict        = "CONFLICT"
	KindForbidden       = "FORBIDDEN"
	KindUnauthenticated = "UNAUTHENTICATED"
	KindUpstream        = "UPSTREAM_ERROR"
	KindInternal        = "INTERNAL_ERROR"
)

// FieldError is a single validation violation for one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// AppError is the application error type. Validation errors additionally
// carry the ordered list of field violations; upstream errors carry the
// status relayed from the external service.
type AppError struct {
	Kind       string
	Message    string
	Violations []FieldError
	Status     int // upstream status, when Kind == KindUpstream
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its response status.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindForbidden:
		return fiber.StatusForbidden
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindUpstream:
		if e.Status == fiber.StatusNotFound {
			return fiber.StatusNotFound
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Predefined error constructors

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewFieldErrors wraps an ordered violation list produced by the validation layer.
func NewFieldErrors(violations []FieldError) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    "Validation failed",
		Violations: violations,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewUpstreamError(status int, message string) *AppError {
	return &AppError{Kind: KindUpstream, Status: status, Message: message}
}

func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// RespondWithError writes a standardized error response. Internal errors
// never leak their cause; everything else is returned with structured detail.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	resp := ErrorResponse{
		Error:  appErr.Message,
		Code:   appErr.Kind,
		Errors: appErr.Violations,
	}
	return c.Status(appErr.HTTPStatus()).JSON(resp)
}
