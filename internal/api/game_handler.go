package api

import (
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/quizbuster/quizbuster-api/internal/api/shared"
	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// GameHandler handles quiz content API requests: categories and questions.
type GameHandler struct {
	questionStore store.QuestionStore
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewGameHandler creates a new GameHandler with the given dependencies.
func NewGameHandler(questionStore store.QuestionStore, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		questionStore: questionStore,
		validator:     validator.New(),
		logger:        logger,
	}
}

// ListCategories handles the GET /api/categories endpoint. With a "count"
// query parameter a random sample of that size is returned instead of the
// full list.
func (h *GameHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.questionStore.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load categories")
		return
	}

	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid count parameter")
			return
		}
		categories, err = sample(categories, count)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// ListQuestions handles the GET /api/questions endpoint. The "category"
// query parameter is required; with a "count" parameter a random sample
// of that size is returned instead of all questions of the category.
func (h *GameHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	rawCategory := r.URL.Query().Get("category")
	if rawCategory == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing category parameter")
		return
	}
	categoryID, err := strconv.ParseInt(rawCategory, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category parameter")
		return
	}

	questions, err := h.questionStore.ListByCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return
		}
		h.logger.Error("failed to list questions", "error", err, "category_id", categoryID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load questions")
		return
	}

	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid count parameter")
			return
		}
		questions, err = sample(questions, count)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// CreateQuestion handles the POST /api/questions endpoint.
func (h *GameHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeQuestion(w, r)
	if !ok {
		return
	}

	question := &domain.Question{
		CategoryID:       req.CategoryID,
		Text:             req.Question,
		CorrectAnswer:    req.CorrectAnswer,
		IncorrectAnswers: req.IncorrectAnswers,
	}
	if err := h.questionStore.CreateQuestion(r.Context(), question); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return
		}
		h.logger.Error("failed to create question", "error", err, "category_id", req.CategoryID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create question")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, question)
}

// UpdateQuestion handles the PUT /api/questions/{id} endpoint.
func (h *GameHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid question ID")
		return
	}

	req, ok := h.decodeQuestion(w, r)
	if !ok {
		return
	}

	question := &domain.Question{
		ID:               id,
		CategoryID:       req.CategoryID,
		Text:             req.Question,
		CorrectAnswer:    req.CorrectAnswer,
		IncorrectAnswers: req.IncorrectAnswers,
	}
	if err := h.questionStore.UpdateQuestion(r.Context(), question); err != nil {
		switch {
		case errors.Is(err, store.ErrQuestionNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Question not found")
		case errors.Is(err, store.ErrCategoryNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		default:
			h.logger.Error("failed to update question", "error", err, "question_id", id)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update question")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// DeleteQuestion handles the DELETE /api/questions/{id} endpoint.
func (h *GameHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid question ID")
		return
	}

	if err := h.questionStore.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Question not found")
			return
		}
		h.logger.Error("failed to delete question", "error", err, "question_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Question deleted."})
}

func (h *GameHandler) decodeQuestion(w http.ResponseWriter, r *http.Request) (QuestionRequest, bool) {
	var req QuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return req, false
	}
	return req, true
}

// pathID extracts the {id} path parameter as an int64.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// sample returns count elements of items picked uniformly at random
// without replacement, in random order.
func sample[T any](items []T, count int) ([]T, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidSampleCount
	}
	if count > len(items) {
		return nil, domain.ErrNotEnoughGameContent
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count], nil
}
