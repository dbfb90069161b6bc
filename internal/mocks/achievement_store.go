package mocks

import (
	"context"

	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// MockAchievementStore implements store.AchievementStore for testing
type MockAchievementStore struct {
	// Function fields for customizable behavior
	ListAllFn     func(ctx context.Context) ([]domain.Achievement, error)
	ListForUserFn func(ctx context.Context, username string) ([]domain.Achievement, error)
	UnlockFn      func(ctx context.Context, username string, achievementID int64) error

	// Data for default implementation
	Achievements []domain.Achievement
	Unlocked     map[string][]int64
}

// Ensure MockAchievementStore implements store.AchievementStore interface
var _ store.AchievementStore = (*MockAchievementStore)(nil)

// NewMockAchievementStore creates a new mock store with initialized defaults
func NewMockAchievementStore() *MockAchievementStore {
	return &MockAchievementStore{
		Unlocked: make(map[string][]int64),
	}
}

// ListAll implements the AchievementStore interface
func (m *MockAchievementStore) ListAll(ctx context.Context) ([]domain.Achievement, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return m.Achievements, nil
}

// ListForUser implements the AchievementStore interface
func (m *MockAchievementStore) ListForUser(ctx context.Context, username string) ([]domain.Achievement, error) {
	if m.ListForUserFn != nil {
		return m.ListForUserFn(ctx, username)
	}

	var unlocked []domain.Achievement
	for _, id := range m.Unlocked[username] {
		for _, a := range m.Achievements {
			if a.ID == id {
				unlocked = append(unlocked, a)
			}
		}
	}
	return unlocked, nil
}

// Unlock implements the AchievementStore interface
func (m *MockAchievementStore) Unlock(ctx context.Context, username string, achievementID int64) error {
	if m.UnlockFn != nil {
		return m.UnlockFn(ctx, username, achievementID)
	}

	found := false
	for _, a := range m.Achievements {
		if a.ID == achievementID {
			found = true
			break
		}
	}
	if !found {
		return store.ErrAchievementNotFound
	}

	for _, id := range m.Unlocked[username] {
		if id == achievementID {
			return store.ErrAchievementUnlocked
		}
	}
	m.Unlocked[username] = append(m.Unlocked[username], achievementID)
	return nil
}
