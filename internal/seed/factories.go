// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devconnect/internal/models"
)

// DefaultPassword is the plaintext password shared by every seeded user.
const DefaultPassword = "password123"

var developerStatuses = []string{
	"Developer",
	"Junior Developer",
	"Senior Developer",
	"Manager",
	"Student or Learning",
	"Instructor",
	"Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "React", "Node.js",
	"PostgreSQL", "Redis", "Docker", "Kubernetes", "GraphQL", "HTML", "CSS",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a user with a realistic name and a shared password.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(gofakeit.Email())
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hash),
		Avatar:   models.GravatarURL(email),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateProfile persists a profile for the user, with a few experience and
// education entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Status:         developerStatuses[f.r.Intn(len(developerStatuses))],
		Skills:         f.skills(),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", gofakeit.Username()),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", gofakeit.Username()),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	for i := 0; i < 1+f.r.Intn(3); i++ {
		if err := f.addExperience(profile); err != nil {
			return nil, err
		}
	}
	for i := 0; i < 1+f.r.Intn(2); i++ {
		if err := f.addEducation(profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (f *Factory) skills() models.StringList {
	n := 3 + f.r.Intn(4)
	picked := make(models.StringList, 0, n)
	for _, i := range f.r.Perm(len(skillPool))[:n] {
		picked = append(picked, skillPool[i])
	}
	return picked
}

func (f *Factory) addExperience(profile *models.Profile) error {
	from := gofakeit.DateRange(time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-1, 0, 0))
	entry := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Current:     f.r.Intn(3) == 0,
		Description: gofakeit.Sentence(10),
	}
	if !entry.Current {
		to := gofakeit.DateRange(from, time.Now())
		entry.To = &to
	}
	if err := f.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}

func (f *Factory) addEducation(profile *models.Profile) error {
	from := gofakeit.DateRange(time.Now().AddDate(-12, 0, 0), time.Now().AddDate(-4, 0, 0))
	to := from.AddDate(4, 0, 0)
	entry := &models.Education{
		ProfileID:    profile.ID,
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(8),
	}
	if err := f.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create education: %w", err)
	}
	return nil
}

// CreatePost persists a post authored by the user, carrying the author's
// name and avatar snapshot and a created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID: user.ID,
		Text:   gofakeit.Paragraph(1, 3, 8, " "),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(f.r.Intn(90*24)) * time.Hour).
		Add(-time.Duration(f.r.Intn(60)) * time.Minute)

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// CreateLike records that the user likes the post, skipping duplicates.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{PostID: post.ID, UserID: user.ID}
	err := f.db.Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		FirstOrCreate(like).Error
	if err != nil {
		return fmt.Errorf("create like: %w", err)
	}
	return nil
}

// CreateComment adds a comment by the user to the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) error {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(10),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}
