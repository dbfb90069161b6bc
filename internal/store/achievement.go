package store

import (
	"context"

	"github.com/quizbuster/quizbuster-api/internal/domain"
)

// AchievementStore defines the interface for achievement persistence.
type AchievementStore interface {
	// ListAll returns every achievement defined in the system.
	ListAll(ctx context.Context) ([]domain.Achievement, error)

	// ListForUser returns the achievements the given user has unlocked.
	ListForUser(ctx context.Context, username string) ([]domain.Achievement, error)

	// Unlock records that the user has earned the given achievement.
	// Returns ErrAchievementUnlocked if the user already holds it and
	// ErrAchievementNotFound if no such achievement exists.
	Unlock(ctx context.Context, username string, achievementID int64) error
}
