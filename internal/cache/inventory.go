package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileKeyPrefix     = "profile:%d"
	ProfileListKey       = "profiles:all"
	GithubReposKeyPrefix = "github:repos:%s"
)

const (
	ProfileTTL     = 10 * time.Minute
	ProfileListTTL = 2 * time.Minute
	GithubReposTTL = 5 * time.Minute
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func GithubReposKey(username string) string {
	return fmt.Sprintf(GithubReposKeyPrefix, username)
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
	Invalidate(ctx, ProfileListKey)
}
