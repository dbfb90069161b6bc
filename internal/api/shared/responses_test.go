package shared_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizbuster/quizbuster-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	shared.RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	shared.RespondWithError(rr, req, http.StatusNotFound, "not here")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"not here"}`, rr.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"name":"alice"}`))
		var dst payload
		require.NoError(t, shared.DecodeJSON(req, &dst))
		assert.Equal(t, "alice", dst.Name)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{"name":"alice","extra":1}`))
		var dst payload
		assert.Error(t, shared.DecodeJSON(req, &dst))
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(`{broken`))
		var dst payload
		assert.Error(t, shared.DecodeJSON(req, &dst))
	})
}

func TestUsernameContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	_, ok := shared.UsernameFromContext(req.Context())
	assert.False(t, ok)

	ctx := shared.WithUsername(req.Context(), "alice")
	username, ok := shared.UsernameFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", username)
}
