package mocks

import (
	"context"

	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// MockQuestionStore implements store.QuestionStore for testing
type MockQuestionStore struct {
	// Function fields for customizable behavior
	ListCategoriesFn func(ctx context.Context) ([]domain.Category, error)
	ListByCategoryFn func(ctx context.Context, categoryID int64) ([]domain.Question, error)
	CreateQuestionFn func(ctx context.Context, question *domain.Question) error
	UpdateQuestionFn func(ctx context.Context, question *domain.Question) error
	DeleteQuestionFn func(ctx context.Context, id int64) error

	// Data for default implementation
	Categories []domain.Category
	Questions  map[int64]*domain.Question
	nextID     int64
}

// Ensure MockQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*MockQuestionStore)(nil)

// NewMockQuestionStore creates a new mock store with initialized defaults
func NewMockQuestionStore() *MockQuestionStore {
	return &MockQuestionStore{
		Questions: make(map[int64]*domain.Question),
	}
}

// ListCategories implements the QuestionStore interface
func (m *MockQuestionStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return m.Categories, nil
}

// ListByCategory implements the QuestionStore interface
func (m *MockQuestionStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, categoryID)
	}

	if !m.hasCategory(categoryID) {
		return nil, store.ErrCategoryNotFound
	}

	var questions []domain.Question
	for _, q := range m.Questions {
		if q.CategoryID == categoryID {
			questions = append(questions, *q)
		}
	}
	return questions, nil
}

// CreateQuestion implements the QuestionStore interface
func (m *MockQuestionStore) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if m.CreateQuestionFn != nil {
		return m.CreateQuestionFn(ctx, question)
	}

	if !m.hasCategory(question.CategoryID) {
		return store.ErrCategoryNotFound
	}

	m.nextID++
	question.ID = m.nextID
	stored := *question
	m.Questions[question.ID] = &stored
	return nil
}

// UpdateQuestion implements the QuestionStore interface
func (m *MockQuestionStore) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	if m.UpdateQuestionFn != nil {
		return m.UpdateQuestionFn(ctx, question)
	}

	if _, exists := m.Questions[question.ID]; !exists {
		return store.ErrQuestionNotFound
	}
	stored := *question
	m.Questions[question.ID] = &stored
	return nil
}

// DeleteQuestion implements the QuestionStore interface
func (m *MockQuestionStore) DeleteQuestion(ctx context.Context, id int64) error {
	if m.DeleteQuestionFn != nil {
		return m.DeleteQuestionFn(ctx, id)
	}

	if _, exists := m.Questions[id]; !exists {
		return store.ErrQuestionNotFound
	}
	delete(m.Questions, id)
	return nil
}

func (m *MockQuestionStore) hasCategory(categoryID int64) bool {
	for _, c := range m.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
