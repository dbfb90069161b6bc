package domain

import "errors"

// Question validation errors
var (
	ErrEmptyQuestionText    = errors.New("question text cannot be empty")
	ErrEmptyCorrectAnswer   = errors.New("correct answer cannot be empty")
	ErrNoIncorrectAnswers   = errors.New("question needs at least one incorrect answer")
	ErrInvalidCategoryID    = errors.New("category ID must be positive")
	ErrEmptyCategoryName    = errors.New("category name cannot be empty")
	ErrNotEnoughGameContent = errors.New("not enough entries to sample from")
	ErrInvalidSampleCount   = errors.New("sample count must be positive")
)

// Category is a quiz question category.
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"name"`
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

// Question is a single quiz question with one correct and several
// incorrect answers, belonging to exactly one category.
type Question struct {
	ID               int64    `json:"question_id"`
	CategoryID       int64    `json:"category_id"`
	CategoryName     string   `json:"category"`
	Text             string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.CategoryID <= 0 {
		return ErrInvalidCategoryID
	}
	if q.Text == "" {
		return ErrEmptyQuestionText
	}
	if q.CorrectAnswer == "" {
		return ErrEmptyCorrectAnswer
	}
	if len(q.IncorrectAnswers) == 0 {
		return ErrNoIncorrectAnswers
	}
	return nil
}
