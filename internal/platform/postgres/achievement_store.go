package postgres

import (
	"context"
	"fmt"

	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// PostgresAchievementStore implements the store.AchievementStore
// interface using a PostgreSQL database as the storage backend.
type PostgresAchievementStore struct {
	db store.DBTX
}

// NewPostgresAchievementStore creates a new PostgreSQL implementation of
// the AchievementStore interface.
func NewPostgresAchievementStore(db store.DBTX) *PostgresAchievementStore {
	return &PostgresAchievementStore{db: db}
}

// Ensure PostgresAchievementStore implements store.AchievementStore interface
var _ store.AchievementStore = (*PostgresAchievementStore)(nil)

// ListAll implements store.AchievementStore.ListAll
func (s *PostgresAchievementStore) ListAll(ctx context.Context) ([]domain.Achievement, error) {
	query := `SELECT id, name, description FROM "Achievement" ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
			return nil, fmt.Errorf("failed to scan achievement row: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate achievement rows: %w", err)
	}
	return achievements, nil
}

// ListForUser implements store.AchievementStore.ListForUser
func (s *PostgresAchievementStore) ListForUser(ctx context.Context, username string) ([]domain.Achievement, error) {
	query := `SELECT a.id, a.name, a.description
		FROM "Achievement" a
		JOIN "User_Achievement" ua ON a.id = ua.achievement_id
		WHERE ua.username = $1
		ORDER BY a.id`

	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements for user %q: %w", username, err)
	}
	defer func() { _ = rows.Close() }()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
			return nil, fmt.Errorf("failed to scan user achievement row: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user achievement rows: %w", err)
	}
	return achievements, nil
}

// Unlock implements store.AchievementStore.Unlock
func (s *PostgresAchievementStore) Unlock(ctx context.Context, username string, achievementID int64) error {
	query := `INSERT INTO "User_Achievement" (username, achievement_id) VALUES ($1, $2)`

	_, err := s.db.ExecContext(ctx, query, username, achievementID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAchievementUnlocked
		}
		if isForeignKeyViolation(err) {
			return store.ErrAchievementNotFound
		}
		return fmt.Errorf("failed to unlock achievement %d for user %q: %w", achievementID, username, err)
	}
	return nil
}
