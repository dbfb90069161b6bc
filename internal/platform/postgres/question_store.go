package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
// Incorrect answers are stored as a JSONB column.
type PostgresQuestionStore struct {
	db store.DBTX
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface.
func NewPostgresQuestionStore(db store.DBTX) *PostgresQuestionStore {
	return &PostgresQuestionStore{db: db}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// ListCategories implements store.QuestionStore.ListCategories
func (s *PostgresQuestionStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM "Category" ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category rows: %w", err)
	}
	return categories, nil
}

// ListByCategory implements store.QuestionStore.ListByCategory
func (s *PostgresQuestionStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	exists, err := s.categoryExists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, store.ErrCategoryNotFound
	}

	query := `SELECT q.id, q.category_id, c.name, q.question, q.correct_answer, q.incorrect_answers
		FROM "Question" q
		JOIN "Category" c ON c.id = q.category_id
		WHERE q.category_id = $1
		ORDER BY q.id`

	rows, err := s.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions for category %d: %w", categoryID, err)
	}
	defer func() { _ = rows.Close() }()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var incorrect []byte
		err := rows.Scan(&q.ID, &q.CategoryID, &q.CategoryName, &q.Text, &q.CorrectAnswer, &incorrect)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		if err := json.Unmarshal(incorrect, &q.IncorrectAnswers); err != nil {
			return nil, fmt.Errorf("failed to decode incorrect answers for question %d: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate question rows: %w", err)
	}
	return questions, nil
}

// CreateQuestion implements store.QuestionStore.CreateQuestion
func (s *PostgresQuestionStore) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	incorrect, err := json.Marshal(question.IncorrectAnswers)
	if err != nil {
		return fmt.Errorf("failed to encode incorrect answers: %w", err)
	}

	query := `INSERT INTO "Question" (category_id, question, correct_answer, incorrect_answers)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err = s.db.QueryRowContext(ctx, query,
		question.CategoryID, question.Text, question.CorrectAnswer, incorrect).
		Scan(&question.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// UpdateQuestion implements store.QuestionStore.UpdateQuestion
func (s *PostgresQuestionStore) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	incorrect, err := json.Marshal(question.IncorrectAnswers)
	if err != nil {
		return fmt.Errorf("failed to encode incorrect answers: %w", err)
	}

	query := `UPDATE "Question"
		SET category_id = $1, question = $2, correct_answer = $3, incorrect_answers = $4
		WHERE id = $5`
	result, err := s.db.ExecContext(ctx, query,
		question.CategoryID, question.Text, question.CorrectAnswer, incorrect, question.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update question %d: %w", question.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result for question %d: %w", question.ID, err)
	}
	if affected == 0 {
		return store.ErrQuestionNotFound
	}
	return nil
}

// DeleteQuestion implements store.QuestionStore.DeleteQuestion
func (s *PostgresQuestionStore) DeleteQuestion(ctx context.Context, id int64) error {
	query := `DELETE FROM "Question" WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result for question %d: %w", id, err)
	}
	if affected == 0 {
		return store.ErrQuestionNotFound
	}
	return nil
}

func (s *PostgresQuestionStore) categoryExists(ctx context.Context, categoryID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM "Category" WHERE id = $1`, categoryID).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check category existence for %d: %w", categoryID, err)
	}
	return true, nil
}
