package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quizbuster/quizbuster-api/internal/api/shared"
	"github.com/quizbuster/quizbuster-api/internal/store"
)

// AchievementHandler handles achievement-related API requests.
type AchievementHandler struct {
	achievementStore store.AchievementStore
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewAchievementHandler creates a new AchievementHandler with the given
// dependencies.
func NewAchievementHandler(achievementStore store.AchievementStore, logger *slog.Logger) *AchievementHandler {
	return &AchievementHandler{
		achievementStore: achievementStore,
		validator:        validator.New(),
		logger:           logger,
	}
}

// ListAll handles the GET /api/achievements endpoint.
func (h *AchievementHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementStore.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list achievements", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load achievements")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, achievements)
}

// ListForUser handles the GET /api/users/achievements endpoint.
func (h *AchievementHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	username, ok := shared.UsernameFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	achievements, err := h.achievementStore.ListForUser(r.Context(), username)
	if err != nil {
		h.logger.Error("failed to list user achievements", "error", err, "username", username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load achievements")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, achievements)
}

// Unlock handles the POST /api/users/achievements endpoint. Unlocking an
// achievement the user already holds is reported as success, matching the
// idempotent behavior clients expect when replaying game results.
func (h *AchievementHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	username, ok := shared.UsernameFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UnlockAchievementRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.achievementStore.Unlock(r.Context(), username, req.AchievementID)
	switch {
	case err == nil:
		shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{Message: "User achievement added."})
	case errors.Is(err, store.ErrAchievementUnlocked):
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "User achievement already exists."})
	case errors.Is(err, store.ErrAchievementNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, "Achievement not found")
	default:
		h.logger.Error("failed to unlock achievement",
			"error", err,
			"username", username,
			"achievement_id", req.AchievementID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to unlock achievement")
	}
}
