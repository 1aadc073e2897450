package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_ViolationsInDeclarationOrder(t *testing.T) {
	violations := RegisterRequest{}.Validate()
	assert.Len(t, violations, 3)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, "email", violations[1].Field)
	assert.Equal(t, "password", violations[2].Field)
	assert.Equal(t, "Please enter a password with 6 or more characters", violations[2].Message)
}

func TestRegisterRequest_EmailFormats(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co.uk", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"jane@", false},
		{"", false},
	}
	for _, tt := range tests {
		req := RegisterRequest{Name: "Jane", Email: tt.email, Password: "secret123"}
		violations := req.Validate()
		if tt.valid {
			assert.Empty(t, violations, "email %q", tt.email)
		} else {
			assert.Len(t, violations, 1, "email %q", tt.email)
			assert.Equal(t, "email", violations[0].Field)
		}
	}
}

func TestRegisterRequest_PasswordLength(t *testing.T) {
	assert.NotEmpty(t, RegisterRequest{Name: "J", Email: "j@e.com", Password: "12345"}.Validate())
	assert.Empty(t, RegisterRequest{Name: "J", Email: "j@e.com", Password: "123456"}.Validate())
}

func TestProfileRequest_RequiresStatusAndSkills(t *testing.T) {
	violations := ProfileRequest{}.Validate()
	assert.Len(t, violations, 2)
	assert.Equal(t, "status", violations[0].Field)
	assert.Equal(t, "Status is required", violations[0].Message)
	assert.Equal(t, "skills", violations[1].Field)
	assert.Equal(t, "Skills is required", violations[1].Message)

	assert.Empty(t, ProfileRequest{Status: "Developer", Skills: "Go"}.Validate())
}

func TestProfileRequest_SkillList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Go, SQL, Docker", []string{"Go", "SQL", "Docker"}},
		{"  Go ,SQL ", []string{"Go", "SQL"}},
		{"Go,,SQL", []string{"Go", "SQL"}},
		{"Go", []string{"Go"}},
	}
	for _, tt := range tests {
		req := ProfileRequest{Skills: tt.raw}
		assert.Equal(t, tt.want, req.SkillList(), "raw %q", tt.raw)
	}
}

func TestExperienceRequest_ViolationsInDeclarationOrder(t *testing.T) {
	violations := ExperienceRequest{}.Validate()
	assert.Len(t, violations, 4)
	assert.Equal(t, "title", violations[0].Field)
	assert.Equal(t, "company", violations[1].Field)
	assert.Equal(t, "location", violations[2].Field)
	assert.Equal(t, "from", violations[3].Field)
}

func TestEducationRequest_FromDateFormats(t *testing.T) {
	base := EducationRequest{School: "MIT", Degree: "BSc", FieldOfStudy: "CS"}

	ok := base
	ok.From = "2019-09-01"
	assert.Empty(t, ok.Validate())

	rfc := base
	rfc.From = "2019-09-01T00:00:00Z"
	assert.Empty(t, rfc.Validate())

	bad := base
	bad.From = "September 2019"
	violations := bad.Validate()
	assert.Len(t, violations, 1)
	assert.Equal(t, "from", violations[0].Field)
	assert.Equal(t, "From date is required", violations[0].Message)
}

func TestPostAndCommentRequests_RequireText(t *testing.T) {
	assert.Len(t, PostRequest{}.Validate(), 1)
	assert.Len(t, PostRequest{Text: "   "}.Validate(), 1)
	assert.Empty(t, PostRequest{Text: "hello"}.Validate())

	violations := CommentRequest{}.Validate()
	assert.Len(t, violations, 1)
	assert.Equal(t, "Text is required", violations[0].Message)
}
