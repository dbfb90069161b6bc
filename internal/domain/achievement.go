package domain

import "errors"

// Achievement validation errors
var (
	ErrInvalidAchievementID = errors.New("achievement ID must be positive")
	ErrEmptyAchievementName = errors.New("achievement name cannot be empty")
)

// Achievement is a badge a user can unlock, such as finishing a first
// game or reaching a score threshold.
type Achievement struct {
	ID          int64  `json:"achievement_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks if the Achievement has valid data.
func (a *Achievement) Validate() error {
	if a.ID <= 0 {
		return ErrInvalidAchievementID
	}
	if a.Name == "" {
		return ErrEmptyAchievementName
	}
	return nil
}
