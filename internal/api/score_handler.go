package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/quizbuster/quizbuster-api/internal/api/shared"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// Leaderboard size bounds for the public ranking endpoint.
const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// ScoreHandler handles score-related API requests: per-user score updates
// and the public leaderboard.
type ScoreHandler struct {
	userStore store.UserStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewScoreHandler creates a new ScoreHandler with the given dependencies.
func NewScoreHandler(userStore store.UserStore, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{
		userStore: userStore,
		validator: validator.New(),
		logger:    logger,
	}
}

// UpdateScore handles the PATCH /api/users/score endpoint. The submitted
// points are added to the authenticated user's total and the new total is
// returned.
func (h *ScoreHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	username, ok := shared.UsernameFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ScoreUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	newTotal, err := h.userStore.AddPoints(r.Context(), username, req.Points)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Token subject no longer exists; treat like a bad credential.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("failed to update score", "error", err, "username", username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update score")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ScoreResponse{Points: newTotal})
}

// Leaderboard handles the GET /api/leaderboard endpoint. The optional
// "limit" query parameter bounds the number of entries (default 10).
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := h.userStore.Leaderboard(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to query leaderboard", "error", err, "limit", limit)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}
