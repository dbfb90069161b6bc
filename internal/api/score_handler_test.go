package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizbuster/quizbuster-api/internal/api"
	"github.com/quizbuster/quizbuster-api/internal/api/shared"
	"github.com/quizbuster/quizbuster-api/internal/domain"
	"github.com/quizbuster/quizbuster-api/internal/mocks"
)

func intPtr(v int) *int { return &v }

func authenticated(req *http.Request, username string) *http.Request {
	return req.WithContext(shared.WithUsername(req.Context(), username))
}

func TestUpdateScore(t *testing.T) {
	t.Parallel()

	t.Run("adds points to existing score", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users["alice"] = &domain.User{Username: "alice", HashedPassword: "hash", Score: intPtr(10)}
		handler := api.NewScoreHandler(userStore, testLogger())

		req := jsonRequest(t, http.MethodPatch, "/api/users/score", api.ScoreUpdateRequest{Points: 5})
		rr := httptest.NewRecorder()
		handler.UpdateScore(rr, authenticated(req, "alice"))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[api.ScoreResponse](t, rr)
		assert.Equal(t, 15, resp.Points)
	})

	t.Run("first score starts from zero", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users["alice"] = &domain.User{Username: "alice", HashedPassword: "hash"}
		handler := api.NewScoreHandler(userStore, testLogger())

		req := jsonRequest(t, http.MethodPatch, "/api/users/score", api.ScoreUpdateRequest{Points: 7})
		rr := httptest.NewRecorder()
		handler.UpdateScore(rr, authenticated(req, "alice"))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[api.ScoreResponse](t, rr)
		assert.Equal(t, 7, resp.Points)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		handler := api.NewScoreHandler(mocks.NewMockUserStore(), testLogger())

		req := jsonRequest(t, http.MethodPatch, "/api/users/score", api.ScoreUpdateRequest{Points: 5})
		rr := httptest.NewRecorder()
		handler.UpdateScore(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		t.Parallel()

		handler := api.NewScoreHandler(mocks.NewMockUserStore(), testLogger())

		req := jsonRequest(t, http.MethodPatch, "/api/users/score", api.ScoreUpdateRequest{Points: 5})
		rr := httptest.NewRecorder()
		handler.UpdateScore(rr, authenticated(req, "ghost"))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("negative points rejected", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users["alice"] = &domain.User{Username: "alice", HashedPassword: "hash"}
		handler := api.NewScoreHandler(userStore, testLogger())

		req := jsonRequest(t, http.MethodPatch, "/api/users/score", api.ScoreUpdateRequest{Points: -5})
		rr := httptest.NewRecorder()
		handler.UpdateScore(rr, authenticated(req, "alice"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLeaderboard(t *testing.T) {
	t.Parallel()

	newStore := func() *mocks.MockUserStore {
		userStore := mocks.NewMockUserStore()
		userStore.Users["alice"] = &domain.User{Username: "alice", HashedPassword: "h", Score: intPtr(30)}
		userStore.Users["bob"] = &domain.User{Username: "bob", HashedPassword: "h", Score: intPtr(50)}
		userStore.Users["carol"] = &domain.User{Username: "carol", HashedPassword: "h"}
		return userStore
	}

	t.Run("ranked by score descending", func(t *testing.T) {
		t.Parallel()

		handler := api.NewScoreHandler(newStore(), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
		rr := httptest.NewRecorder()
		handler.Leaderboard(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		entries := decodeBody[[]domain.LeaderboardEntry](t, rr)
		// Carol has never scored, so she is absent.
		require.Len(t, entries, 2)
		assert.Equal(t, "bob", entries[0].Username)
		assert.Equal(t, 50, entries[0].Score)
		assert.Equal(t, "alice", entries[1].Username)
	})

	t.Run("limit applies", func(t *testing.T) {
		t.Parallel()

		handler := api.NewScoreHandler(newStore(), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=1", nil)
		rr := httptest.NewRecorder()
		handler.Leaderboard(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		entries := decodeBody[[]domain.LeaderboardEntry](t, rr)
		require.Len(t, entries, 1)
		assert.Equal(t, "bob", entries[0].Username)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()

		handler := api.NewScoreHandler(newStore(), testLogger())

		for _, raw := range []string{"abc", "0", "-3"} {
			req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit="+raw, nil)
			rr := httptest.NewRecorder()
			handler.Leaderboard(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "limit=%s", raw)
		}
	})
}
