package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"devconnect/internal/models"
)

// Seeder populates the database with a connected set of users, profiles and
// posts so the API has something realistic to serve in development.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	r       *rand.Rand
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		r:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Children go first so foreign keys never
// block the sweep.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Comment{},
		&models.Like{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// Run creates numUsers users (most with a profile) and numPosts posts with a
// spread of likes and comments across users.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)

		// Roughly one in five users has not filled in a profile yet.
		if s.r.Intn(5) != 0 {
			if _, err := s.factory.CreateProfile(user); err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded %d users", len(users))

	for i := 0; i < numPosts; i++ {
		author := users[s.r.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return err
		}

		for _, j := range s.r.Perm(len(users))[:s.r.Intn(min(len(users), 8))] {
			if err := s.factory.CreateLike(users[j], post); err != nil {
				return err
			}
		}
		for k := 0; k < s.r.Intn(4); k++ {
			commenter := users[s.r.Intn(len(users))]
			if err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded %d posts", numPosts)
	return nil
}
