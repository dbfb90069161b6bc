package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizbuster/quizbuster-api/internal/api"
	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/mocks"
)

func newAchievementStore() *mocks.MockAchievementStore {
	achievementStore := mocks.NewMockAchievementStore()
	achievementStore.Achievements = []domain.Achievement{
		{ID: 1, Name: "First Game", Description: "Finish your first game"},
		{ID: 2, Name: "Perfect Round", Description: "Answer every question correctly"},
	}
	return achievementStore
}

func TestListAllAchievements(t *testing.T) {
	t.Parallel()

	handler := api.NewAchievementHandler(newAchievementStore(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/achievements", nil)
	rr := httptest.NewRecorder()
	handler.ListAll(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	achievements := decodeBody[[]domain.Achievement](t, rr)
	assert.Len(t, achievements, 2)
}

func TestListAchievementsForUser(t *testing.T) {
	t.Parallel()

	t.Run("only unlocked achievements", func(t *testing.T) {
		t.Parallel()

		achievementStore := newAchievementStore()
		achievementStore.Unlocked["alice"] = []int64{2}
		handler := api.NewAchievementHandler(achievementStore, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/users/achievements", nil)
		rr := httptest.NewRecorder()
		handler.ListForUser(rr, authenticated(req, "alice"))

		require.Equal(t, http.StatusOK, rr.Code)
		achievements := decodeBody[[]domain.Achievement](t, rr)
		require.Len(t, achievements, 1)
		assert.Equal(t, "Perfect Round", achievements[0].Name)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAchievementHandler(newAchievementStore(), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/users/achievements", nil)
		rr := httptest.NewRecorder()
		handler.ListForUser(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUnlockAchievement(t *testing.T) {
	t.Parallel()

	t.Run("first unlock", func(t *testing.T) {
		t.Parallel()

		achievementStore := newAchievementStore()
		handler := api.NewAchievementHandler(achievementStore, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/users/achievements", api.UnlockAchievementRequest{AchievementID: 1})
		rr := httptest.NewRecorder()
		handler.Unlock(rr, authenticated(req, "alice"))

		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeBody[api.MessageResponse](t, rr)
		assert.Equal(t, "User achievement added.", resp.Message)
		assert.Contains(t, achievementStore.Unlocked["alice"], int64(1))
	})

	t.Run("already unlocked", func(t *testing.T) {
		t.Parallel()

		achievementStore := newAchievementStore()
		achievementStore.Unlocked["alice"] = []int64{1}
		handler := api.NewAchievementHandler(achievementStore, testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/users/achievements", api.UnlockAchievementRequest{AchievementID: 1})
		rr := httptest.NewRecorder()
		handler.Unlock(rr, authenticated(req, "alice"))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[api.MessageResponse](t, rr)
		assert.Equal(t, "User achievement already exists.", resp.Message)
	})

	t.Run("unknown achievement", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAchievementHandler(newAchievementStore(), testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/users/achievements", api.UnlockAchievementRequest{AchievementID: 42})
		rr := httptest.NewRecorder()
		handler.Unlock(rr, authenticated(req, "alice"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAchievementHandler(newAchievementStore(), testLogger())

		req := jsonRequest(t, http.MethodPost, "/api/users/achievements", api.UnlockAchievementRequest{AchievementID: 1})
		rr := httptest.NewRecorder()
		handler.Unlock(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
