package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/repository/memory"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/service"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/testutil"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/validation"
)

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

type allowAllVerifier struct{}

func (allowAllVerifier) IsDeliverable(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func newTestRouter() http.Handler {
	lg := testutil.MakeNoopLogger()
	svc := service.NewUser(memory.NewUserRepository(), allowAllVerifier{}, validation.New(), lg)
	return New(svc, okPinger{}, lg).Register()
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	h := newTestRouter()
	require.NotNil(t, h)
}

// Drives the registered routes end to end against the in-memory store.
func TestRouter_UserRoutes(t *testing.T) {
	t.Parallel()

	h := newTestRouter()

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(http.MethodPost, "/users", `{"name":"Alice","email":"alice@example.com","age":30}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		User model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.User.ID.String()

	rec = do(http.MethodGet, "/users/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPatch, "/users/"+id, `{"age":31}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/users/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(http.MethodDelete, "/users/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/users/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(http.MethodDelete, "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted_count":0`)
}
