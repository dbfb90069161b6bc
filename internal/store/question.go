package store

import (
	"context"

	"github.com/quizbuster/quizbuster-api/internal/domain"
)

// QuestionStore defines the interface for quiz content persistence:
// categories and the questions that belong to them.
type QuestionStore interface {
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListByCategory returns all questions of the given category.
	// Returns ErrCategoryNotFound if the category does not exist.
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error)

	// CreateQuestion saves a new question and fills in its generated ID.
	// Returns ErrCategoryNotFound if the referenced category does not exist.
	CreateQuestion(ctx context.Context, question *domain.Question) error

	// UpdateQuestion replaces the stored question with the given ID.
	// Returns ErrQuestionNotFound if no such question exists.
	UpdateQuestion(ctx context.Context, question *domain.Question) error

	// DeleteQuestion removes the question with the given ID.
	// Returns ErrQuestionNotFound if no such question exists.
	DeleteQuestion(ctx context.Context, id int64) error
}
