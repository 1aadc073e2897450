// Package validation defines the per-operation field requirements for inbound
// payloads. Each payload type carries an ordered rule list; violations are
// reported one per failing rule, in rule-declaration order, before any
// storage access happens.
package validation

import (
	"net/mail"
	"strings"
	"time"

	"devconnect/internal/models"
)

// DateLayout is the wire format accepted for from/to dates.
const DateLayout = "2006-01-02"

// rule is one field requirement. check returns true when the payload satisfies it.
type rule struct {
	field   string
	message string
	check   func() bool
}

func run(rules []rule) []models.FieldError {
	var violations []models.FieldError
	for _, r := range rules {
		if !r.check() {
			violations = append(violations, models.FieldError{Field: r.field, Message: r.message})
		}
	}
	return violations
}

func notEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func validDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a wire date, accepting both the plain date layout and RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() []models.FieldError {
	return run([]rule{
		{"name", "Name is required", func() bool { return notEmpty(r.Name) }},
		{"email", "Please provide a valid email", func() bool { return validEmail(r.Email) }},
		{"password", "Please enter a password with 6 or more characters", func() bool { return len(r.Password) >= 6 }},
	})
}

// LoginRequest is the payload for credential authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []models.FieldError {
	return run([]rule{
		{"email", "Please provide a valid email", func() bool { return validEmail(r.Email) }},
		{"password", "Password is required", func() bool { return notEmpty(r.Password) }},
	})
}

// ProfileRequest is the payload for profile upsert. Omitted optional fields
// (nil pointers) leave the stored value unchanged.
type ProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

func (r ProfileRequest) Validate() []models.FieldError {
	return run([]rule{
		{"status", "Status is required", func() bool { return notEmpty(r.Status) }},
		{"skills", "Skills is required", func() bool { return notEmpty(r.Skills) }},
	})
}

// SkillList splits the comma-separated skills field into trimmed entries.
func (r ProfileRequest) SkillList() []string {
	parts := strings.Split(r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ExperienceRequest is the payload for adding a work-experience entry.
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (r ExperienceRequest) Validate() []models.FieldError {
	return run([]rule{
		{"title", "Title is required", func() bool { return notEmpty(r.Title) }},
		{"company", "Company is required", func() bool { return notEmpty(r.Company) }},
		{"location", "Location is required", func() bool { return notEmpty(r.Location) }},
		{"from", "From date is required", func() bool { return validDate(r.From) }},
	})
}

// EducationRequest is the payload for adding an education entry.
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (r EducationRequest) Validate() []models.FieldError {
	return run([]rule{
		{"school", "School is required", func() bool { return notEmpty(r.School) }},
		{"degree", "Degree is required", func() bool { return notEmpty(r.Degree) }},
		{"fieldofstudy", "Field of study is required", func() bool { return notEmpty(r.FieldOfStudy) }},
		{"from", "From date is required", func() bool { return validDate(r.From) }},
	})
}

// PostRequest is the payload for creating a post.
type PostRequest struct {
	Text string `json:"text"`
}

func (r PostRequest) Validate() []models.FieldError {
	return run([]rule{
		{"text", "Text is required", func() bool { return notEmpty(r.Text) }},
	})
}

// CommentRequest is the payload for commenting on a post.
type CommentRequest struct {
	Text string `json:"text"`
}

func (r CommentRequest) Validate() []models.FieldError {
	return run([]rule{
		{"text", "Text is required", func() bool { return notEmpty(r.Text) }},
	})
}
