package repository

import (
	"context"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines the interface for profile data operations,
// including the embedded experience/education lists.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile, updates map[string]any) (*models.Profile, error)
	AddExperience(ctx context.Context, entry *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, entryID uint) error
	AddEducation(ctx context.Context, entry *models.Education) error
	RemoveEducation(ctx context.Context, profileID, entryID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withLists preloads the owning user and the embedded lists, newest first.
// Ties on created_at fall back to the insertion sequence to keep the order
// deterministic.
func (r *profileRepository) withLists(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.withLists(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := cache.Aside(ctx, cache.ProfileListKey, &profiles, cache.ProfileListTTL, func() error {
		return r.withLists(r.db.WithContext(ctx)).
			Order("created_at DESC, id DESC").
			Find(&profiles).Error
	})
	return profiles, err
}

// Upsert inserts the profile or, when one already exists for the user, applies
// only the supplied column assignments. The unique user_id index plus the ON
// CONFLICT clause make concurrent create attempts converge on one row.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile, updates map[string]any) (*models.Profile, error) {
	defer observability.TrackQuery("upsert", "profiles")()

	err := r.db.WithContext(ctx).
		Omit("Experience", "Education").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(profile).Error
	if err != nil {
		return nil, err
	}

	cache.InvalidateProfile(ctx, profile.UserID)
	return r.GetByUserID(ctx, profile.UserID)
}

func (r *profileRepository) AddExperience(ctx context.Context, entry *models.Experience) error {
	defer observability.TrackQuery("create", "experiences")()
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProfileListKey)
	return nil
}

// RemoveExperience deletes the entry when present. A missing entry is a
// no-op, not an error; removal never touches sibling entries.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, entryID uint) error {
	defer observability.TrackQuery("delete", "experiences")()
	if err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, entryID).
		Delete(&models.Experience{}).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProfileListKey)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, entry *models.Education) error {
	defer observability.TrackQuery("create", "educations")()
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProfileListKey)
	return nil
}

func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, entryID uint) error {
	defer observability.TrackQuery("delete", "educations")()
	if err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, entryID).
		Delete(&models.Education{}).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProfileListKey)
	return nil
}

// DeleteByUserID removes the user's profile and, through the cascade
// constraint, its embedded lists. Deleting an absent profile is a no-op.
func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	defer observability.TrackQuery("delete", "profiles")()

	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	// Child rows first so the delete also works on stores without enforced
	// foreign-key cascades (the sqlite test setup).
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Profile{}, profile.ID).Error; err != nil {
		return err
	}

	cache.InvalidateProfile(ctx, userID)
	return nil
}
