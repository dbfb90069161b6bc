package store

import (
	"context"
	"database/sql"

	"github.com/quizbuster/quizbuster-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must carry an
	// already hashed password.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Exists reports whether a user with the given username exists.
	Exists(ctx context.Context, username string) (bool, error)

	// AddPoints adds points to the user's score and returns the new
	// total. A NULL score counts as zero. The read and the write happen
	// in the same transaction.
	// Returns ErrUserNotFound if the user does not exist.
	AddPoints(ctx context.Context, username string, points int) (int, error)

	// Leaderboard returns up to limit entries ordered by score
	// descending. Users without a score are excluded.
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
