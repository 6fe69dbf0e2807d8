package user_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlane/newswire/internal/core/user"
	"github.com/dmlane/newswire/internal/platform/apperr"
)

type fakeRepo struct {
	users map[string]*user.User
}

func (repo *fakeRepo) List(_ context.Context) ([]*user.User, error) {
	all := make([]*user.User, 0, len(repo.users))
	for _, u := range repo.users {
		all = append(all, u)
	}
	return all, nil
}

func (repo *fakeRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := repo.users[username]
	if !ok {
		return nil, apperr.NotFound("Resource")
	}
	return u, nil
}

type fakeChecker struct {
	users map[string]bool
}

func (checker *fakeChecker) User(_ context.Context, username string) error {
	if !checker.users[username] {
		return apperr.NotFound("Resource")
	}
	return nil
}

func newTestRouter(repo *fakeRepo, checker *fakeChecker) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := user.NewHandler(user.NewService(repo, checker, logger))

	router := chi.NewRouter()
	router.Route("/api/users", handler.RegisterRoutes)
	return router
}

func TestListUsers(t *testing.T) {
	repo := &fakeRepo{users: map[string]*user.User{
		"amy": {Username: "amy", Name: "Amy", AvatarURL: "https://example.com/amy.png"},
	}}
	router := newTestRouter(repo, &fakeChecker{users: map[string]bool{"amy": true}})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"users":[
		{"username":"amy","name":"Amy","avatar_url":"https://example.com/amy.png"}
	]}`, recorder.Body.String())
}

func TestGetUser(t *testing.T) {
	repo := &fakeRepo{users: map[string]*user.User{
		"amy": {Username: "amy", Name: "Amy", AvatarURL: "https://example.com/amy.png"},
	}}
	router := newTestRouter(repo, &fakeChecker{users: map[string]bool{"amy": true}})

	t.Run("existing_user", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/amy", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"user":
			{"username":"amy","name":"Amy","avatar_url":"https://example.com/amy.png"}
		}`, recorder.Body.String())
	})

	t.Run("missing_user", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
