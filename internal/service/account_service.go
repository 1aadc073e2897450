package service

import (
	"context"
	"fmt"

	"devconnect/internal/observability"
	"devconnect/internal/repository"
)

// AccountService owns full account removal.
type AccountService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewAccountService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *AccountService {
	return &AccountService{postRepo: postRepo, profileRepo: profileRepo, userRepo: userRepo}
}

// DeleteAccount removes everything the user owns: their posts, their
// profile with its experience and education lists, and finally the user
// record itself. Every step is idempotent, so a failed deletion can be
// retried from the start without harm.
func (s *AccountService) DeleteAccount(ctx context.Context, principal uint) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"posts", func() error { return s.postRepo.DeleteByUserID(ctx, principal) }},
		{"profile", func() error { return s.profileRepo.DeleteByUserID(ctx, principal) }},
		{"user", func() error { return s.userRepo.Delete(ctx, principal) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			observability.AccountDeletionSteps.WithLabelValues(step.name, "error").Inc()
			observability.Logger.Error("account deletion step failed",
				"step", step.name, "user_id", principal, "error", err)
			return fmt.Errorf("delete account step %s: %w", step.name, err)
		}
		observability.AccountDeletionSteps.WithLabelValues(step.name, "ok").Inc()
	}

	observability.Logger.Info("account deleted", "user_id", principal)
	return nil
}
