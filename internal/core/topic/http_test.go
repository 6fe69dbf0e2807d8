package topic_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlane/newswire/internal/core/topic"
	"github.com/dmlane/newswire/internal/platform/apperr"
)

type fakeRepo struct {
	topics    []*topic.Topic
	insertErr error
}

func (repo *fakeRepo) List(_ context.Context) ([]*topic.Topic, error) {
	return repo.topics, nil
}

func (repo *fakeRepo) Insert(_ context.Context, t *topic.Topic) error {
	if repo.insertErr != nil {
		return repo.insertErr
	}
	repo.topics = append(repo.topics, t)
	return nil
}

func newTestRouter(repo *fakeRepo) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := topic.NewHandler(topic.NewService(repo, logger))

	router := chi.NewRouter()
	router.Route("/api/topics", handler.RegisterRoutes)
	return router
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestListTopics(t *testing.T) {
	repo := &fakeRepo{topics: []*topic.Topic{
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "coding", Description: "Code is love, code is life"},
	}}
	router := newTestRouter(repo)

	recorder := doRequest(t, router, http.MethodGet, "/api/topics", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"topics":[
		{"slug":"cats","description":"Not dogs"},
		{"slug":"coding","description":"Code is love, code is life"}
	]}`, recorder.Body.String())
}

func TestCreateTopic(t *testing.T) {
	t.Run("missing_description", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		recorder := doRequest(t, router, http.MethodPost, "/api/topics", map[string]any{
			"slug": "cats",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("slug_normalized_before_storage", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)

		recorder := doRequest(t, router, http.MethodPost, "/api/topics", map[string]any{
			"slug": "Café Culture", "description": "Espresso and opinions",
		})

		require.Equal(t, http.StatusCreated, recorder.Code)
		require.Len(t, repo.topics, 1)
		assert.Equal(t, "cafe-culture", repo.topics[0].Slug)
		assert.Contains(t, recorder.Body.String(), `"slug":"cafe-culture"`)
	})

	t.Run("slug_with_no_usable_characters", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		recorder := doRequest(t, router, http.MethodPost, "/api/topics", map[string]any{
			"slug": "!!!", "description": "Punctuation only",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("duplicate_slug_is_conflict", func(t *testing.T) {
		repo := &fakeRepo{insertErr: apperr.Conflict("Topic already exists")}
		router := newTestRouter(repo)

		recorder := doRequest(t, router, http.MethodPost, "/api/topics", map[string]any{
			"slug": "cats", "description": "Not dogs",
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}
