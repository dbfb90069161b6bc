package domain

import (
	"errors"
)

// Username and password length limits. MaxUsernameLen matches the
// VARCHAR(100) column, MaxHashedPasswordLen the VARCHAR(255) column.
const (
	MaxUsernameLen       = 100
	MaxHashedPasswordLen = 255
	MinPasswordLen       = 8
	MaxPasswordLen       = 72 // bcrypt's practical input limit
)

// Common validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 100 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrNegativePoints      = errors.New("points cannot be negative")
)

// User represents a registered player. The username is the primary key;
// Score is nil for users who have never finished a game.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
	Score          *int   `json:"score,omitempty"`
}

// NewUser creates a User with the given username and an already hashed
// password. Returns an error if validation fails.
func NewUser(username, hashedPassword string) (*User, error) {
	user := &User{
		Username:       username,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// ValidatePlaintextPassword checks a registration password before it is
// hashed. Hashes themselves are not subject to these limits.
func ValidatePlaintextPassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) < MinPasswordLen:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLen:
		return ErrPasswordTooLong
	}
	return nil
}

// LeaderboardEntry is one row of the score ranking: a username together
// with its non-NULL score.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
