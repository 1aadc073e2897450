package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"devconnect/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func TestFactory_CreateUser(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Name)
	assert.Contains(t, user.Avatar, "gravatar.com")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DefaultPassword)))
}

func TestFactory_CreateProfileWithEntries(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	assert.NoError(t, err)
	profile, err := f.CreateProfile(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, profile.Status)
	assert.NotEmpty(t, profile.Skills)

	var expCount int64
	db.Model(&models.Experience{}).Where("profile_id = ?", profile.ID).Count(&expCount)
	assert.GreaterOrEqual(t, expCount, int64(1))
}

func TestSeeder_RunAndClear(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	assert.NoError(t, s.Run(5, 10))

	var userCount, postCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Post{}).Count(&postCount)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(10), postCount)

	// Likes never duplicate a (user, post) pair.
	type pair struct {
		PostID uint
		UserID uint
	}
	var likes []pair
	db.Model(&models.Like{}).Select("post_id, user_id").Find(&likes)
	seen := make(map[pair]bool)
	for _, l := range likes {
		assert.False(t, seen[l], "duplicate like %v", l)
		seen[l] = true
	}

	assert.NoError(t, s.ClearAll())
	db.Model(&models.User{}).Unscoped().Count(&userCount)
	assert.Zero(t, userCount)
}
