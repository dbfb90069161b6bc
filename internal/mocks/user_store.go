package mocks

import (
	"context"
	"database/sql"

	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	ExistsFn        func(ctx context.Context, username string) (bool, error)
	AddPointsFn     func(ctx context.Context, username string, points int) (int, error)
	LeaderboardFn   func(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// Data for default implementation
	Users map[string]*domain.User
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	m.Users[user.Username] = user
	return nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Exists implements the UserStore interface
func (m *MockUserStore) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, username)
	}

	_, exists := m.Users[username]
	return exists, nil
}

// AddPoints implements the UserStore interface
func (m *MockUserStore) AddPoints(ctx context.Context, username string, points int) (int, error) {
	if m.AddPointsFn != nil {
		return m.AddPointsFn(ctx, username, points)
	}

	user, exists := m.Users[username]
	if !exists {
		return 0, store.ErrUserNotFound
	}

	current := 0
	if user.Score != nil {
		current = *user.Score
	}
	total := current + points
	user.Score = &total
	return total, nil
}

// Leaderboard implements the UserStore interface
func (m *MockUserStore) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if m.LeaderboardFn != nil {
		return m.LeaderboardFn(ctx, limit)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(m.Users))
	for _, user := range m.Users {
		if user.Score == nil {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{
			Username: user.Username,
			Score:    *user.Score,
		})
	}
	// Sort by score descending.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Score > entries[j-1].Score; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// WithTx implements the UserStore interface; the mock has no transaction
// semantics, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
