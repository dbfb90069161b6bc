package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx}
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO "User" (username, password, score) VALUES ($1, $2, $3)`
	_, err := s.db.ExecContext(ctx, query, user.Username, user.HashedPassword, user.Score)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT username, password, score FROM "User" WHERE username = $1`

	var user domain.User
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx, query, username).
		Scan(&user.Username, &user.HashedPassword, &score)
	if err != nil {
		if isNoRows(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}

	if score.Valid {
		v := int(score.Int64)
		user.Score = &v
	}
	return &user, nil
}

// Exists implements store.UserStore.Exists
func (s *PostgresUserStore) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT 1 FROM "User" WHERE username = $1`

	var one int
	err := s.db.QueryRowContext(ctx, query, username).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user existence for %q: %w", username, err)
	}
	return true, nil
}

// AddPoints implements store.UserStore.AddPoints.
// The current score is read with a row lock so concurrent updates to the
// same user cannot lose points.
func (s *PostgresUserStore) AddPoints(ctx context.Context, username string, points int) (int, error) {
	if points < 0 {
		return 0, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrNegativePoints)
	}

	var newTotal int
	run := func(ctx context.Context, db store.DBTX) error {
		var score sql.NullInt64
		selectQuery := `SELECT score FROM "User" WHERE username = $1 FOR UPDATE`
		if err := db.QueryRowContext(ctx, selectQuery, username).Scan(&score); err != nil {
			if isNoRows(err) {
				return store.ErrUserNotFound
			}
			return fmt.Errorf("failed to read score for %q: %w", username, err)
		}

		// A NULL score counts as zero.
		newTotal = int(score.Int64) + points

		updateQuery := `UPDATE "User" SET score = $1 WHERE username = $2`
		if _, err := db.ExecContext(ctx, updateQuery, newTotal, username); err != nil {
			return fmt.Errorf("failed to update score for %q: %w", username, err)
		}
		return nil
	}

	// When the store already wraps a transaction, reuse it; otherwise
	// open one so the read and write stay atomic.
	if sqlDB, ok := s.db.(*sql.DB); ok {
		err := store.RunInTransaction(ctx, sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return run(ctx, tx)
		})
		if err != nil {
			return 0, err
		}
		return newTotal, nil
	}

	if err := run(ctx, s.db); err != nil {
		return 0, err
	}
	return newTotal, nil
}

// Leaderboard implements store.UserStore.Leaderboard
func (s *PostgresUserStore) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `SELECT username, score
		FROM "User"
		WHERE score IS NOT NULL
		ORDER BY score DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.Username, &entry.Score); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard rows: %w", err)
	}
	return entries, nil
}
