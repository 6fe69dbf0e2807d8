package article_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlane/newswire/internal/core/article"
	"github.com/dmlane/newswire/internal/platform/apperr"
)

// fakeRepo is an in-memory stand-in for the postgres store. It records the
// arguments of the last List call so tests can pin the query shape.
type fakeRepo struct {
	articles map[int]*article.Article
	nextID   int

	listResult []*article.Article
	listTotal  int

	lastFilter article.Filter
	lastSort   article.Sort
	lastLimit  int
	lastOffset int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		articles:   map[int]*article.Article{},
		nextID:     1,
		listResult: []*article.Article{},
	}
}

func (repo *fakeRepo) GetByID(_ context.Context, articleID int) (*article.Article, error) {
	a, ok := repo.articles[articleID]
	if !ok {
		return nil, apperr.NotFound("Resource")
	}
	found := *a
	return &found, nil
}

func (repo *fakeRepo) List(_ context.Context, filter article.Filter, sort article.Sort, limit, offset int) ([]*article.Article, int, error) {
	repo.lastFilter = filter
	repo.lastSort = sort
	repo.lastLimit = limit
	repo.lastOffset = offset
	return repo.listResult, repo.listTotal, nil
}

func (repo *fakeRepo) Insert(_ context.Context, a *article.Article) error {
	a.ArticleID = repo.nextID
	repo.nextID++
	a.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a.Votes = 0
	stored := *a
	repo.articles[a.ArticleID] = &stored
	return nil
}

func (repo *fakeRepo) UpdateVotes(_ context.Context, articleID, delta int) (*article.Article, error) {
	a, ok := repo.articles[articleID]
	if !ok {
		return nil, apperr.NotFound("Resource")
	}
	a.Votes += delta
	updated := *a
	return &updated, nil
}

func (repo *fakeRepo) Delete(_ context.Context, articleID int) error {
	if _, ok := repo.articles[articleID]; !ok {
		return apperr.NotFound("Resource")
	}
	delete(repo.articles, articleID)
	return nil
}

// fakeChecker resolves existence against fixed sets and records the order of
// every check, which the ordering-contract tests assert against.
type fakeChecker struct {
	articles map[int]bool
	topics   map[string]bool
	users    map[string]bool
	calls    []string
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{
		articles: map[int]bool{},
		topics:   map[string]bool{},
		users:    map[string]bool{},
	}
}

func (checker *fakeChecker) Article(_ context.Context, articleID int) error {
	checker.calls = append(checker.calls, fmt.Sprintf("article:%d", articleID))
	if !checker.articles[articleID] {
		return apperr.NotFound("Resource")
	}
	return nil
}

func (checker *fakeChecker) Topic(_ context.Context, slug string) error {
	checker.calls = append(checker.calls, "topic:"+slug)
	if !checker.topics[slug] {
		return apperr.NotFound("Resource")
	}
	return nil
}

func (checker *fakeChecker) User(_ context.Context, username string) error {
	checker.calls = append(checker.calls, "user:"+username)
	if !checker.users[username] {
		return apperr.NotFound("Resource")
	}
	return nil
}

func newTestRouter(repo *fakeRepo, checker *fakeChecker) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := article.NewHandler(article.NewService(repo, checker, logger))

	router := chi.NewRouter()
	router.Route("/api/articles", handler.RegisterRoutes)
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

func TestListArticles_Defaults(t *testing.T) {
	repo := newFakeRepo()
	repo.listResult = []*article.Article{
		{ArticleID: 1, Title: "A", Topic: "cats", Author: "amy", CommentCount: 2},
	}
	repo.listTotal = 1
	router := newTestRouter(repo, newFakeChecker())

	recorder := doRequest(t, router, http.MethodGet, "/api/articles", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, article.Sort{Column: "created_at", Direction: "DESC"}, repo.lastSort)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)

	var body struct {
		Articles   []map[string]any `json:"articles"`
		TotalCount int              `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 1, body.TotalCount)
	require.Len(t, body.Articles, 1)
	// Summaries never include the body field.
	assert.NotContains(t, body.Articles[0], "body")
	assert.EqualValues(t, 2, body.Articles[0]["comment_count"])
}

func TestListArticles_SortAndOrder(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSort   article.Sort
	}{
		{"custom_sort_asc", "?sort_by=title&order=asc", http.StatusOK, article.Sort{Column: "title", Direction: "ASC"}},
		{"order_case_insensitive", "?order=ASC", http.StatusOK, article.Sort{Column: "created_at", Direction: "ASC"}},
		{"comment_count_sort", "?sort_by=comment_count", http.StatusOK, article.Sort{Column: "comment_count", Direction: "DESC"}},
		{"sort_outside_allow_list", "?sort_by=password", http.StatusBadRequest, article.Sort{}},
		{"order_outside_allow_list", "?order=sideways", http.StatusBadRequest, article.Sort{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			router := newTestRouter(repo, newFakeChecker())

			recorder := doRequest(t, router, http.MethodGet, "/api/articles"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantSort, repo.lastSort)
			}
		})
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	t.Run("unknown_topic_is_bad_request", func(t *testing.T) {
		// Policy: a filter value that fails its reference check is malformed
		// input, not a missing resource.
		repo := newFakeRepo()
		checker := newFakeChecker()
		router := newTestRouter(repo, checker)

		recorder := doRequest(t, router, http.MethodGet, "/api/articles?topic=doesnotexist", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []string{"topic:doesnotexist"}, checker.calls)
	})

	t.Run("existing_empty_topic_is_empty_list", func(t *testing.T) {
		repo := newFakeRepo()
		checker := newFakeChecker()
		checker.topics["cats"] = true
		router := newTestRouter(repo, checker)

		recorder := doRequest(t, router, http.MethodGet, "/api/articles?topic=cats", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, article.Filter{Topic: "cats"}, repo.lastFilter)
		assert.JSONEq(t, `{"articles":[],"total_count":0}`, recorder.Body.String())
	})
}

func TestListArticles_Pagination(t *testing.T) {
	t.Run("limit_and_page_map_to_offset", func(t *testing.T) {
		repo := newFakeRepo()
		router := newTestRouter(repo, newFakeChecker())

		recorder := doRequest(t, router, http.MethodGet, "/api/articles?limit=5&page=2", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 5, repo.lastLimit)
		assert.Equal(t, 5, repo.lastOffset)
	})

	t.Run("limit_outside_allow_list", func(t *testing.T) {
		router := newTestRouter(newFakeRepo(), newFakeChecker())

		recorder := doRequest(t, router, http.MethodGet, "/api/articles?limit=15", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetArticle(t *testing.T) {
	repo := newFakeRepo()
	repo.articles[1] = &article.Article{
		ArticleID: 1, Title: "A", Topic: "cats", Author: "amy",
		Body: "text", ImageURL: article.DefaultImageURL, CommentCount: 0,
	}
	checker := newFakeChecker()
	checker.articles[1] = true
	router := newTestRouter(repo, checker)

	t.Run("malformed_id", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/articles/notanid", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing_article", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/articles/999", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("found_with_zero_comment_count", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/articles/1", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Article map[string]any `json:"article"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.EqualValues(t, 1, body.Article["article_id"])
		assert.EqualValues(t, 0, body.Article["comment_count"])
		assert.Equal(t, "text", body.Article["body"])
	})
}

func TestCreateArticle(t *testing.T) {
	t.Run("missing_required_field", func(t *testing.T) {
		router := newTestRouter(newFakeRepo(), newFakeChecker())

		recorder := doRequest(t, router, http.MethodPost, "/api/articles", map[string]any{
			"author": "amy", "title": "A", "topic": "cats",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("topic_checked_before_author", func(t *testing.T) {
		// Both references are invalid; the topic failure must win.
		checker := newFakeChecker()
		router := newTestRouter(newFakeRepo(), checker)

		recorder := doRequest(t, router, http.MethodPost, "/api/articles", map[string]any{
			"author": "ghost", "title": "A", "body": "text", "topic": "void",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, []string{"topic:void"}, checker.calls)
	})

	t.Run("default_image_url_substituted", func(t *testing.T) {
		repo := newFakeRepo()
		checker := newFakeChecker()
		checker.topics["cats"] = true
		checker.users["amy"] = true
		router := newTestRouter(repo, checker)

		recorder := doRequest(t, router, http.MethodPost, "/api/articles", map[string]any{
			"author": "amy", "title": "A", "body": "text", "topic": "cats",
		})

		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Article map[string]any `json:"article"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, article.DefaultImageURL, body.Article["article_img_url"])
		assert.EqualValues(t, 0, body.Article["comment_count"])
		assert.EqualValues(t, 0, body.Article["votes"])
	})

	t.Run("supplied_image_url_kept", func(t *testing.T) {
		repo := newFakeRepo()
		checker := newFakeChecker()
		checker.topics["cats"] = true
		checker.users["amy"] = true
		router := newTestRouter(repo, checker)

		recorder := doRequest(t, router, http.MethodPost, "/api/articles", map[string]any{
			"author": "amy", "title": "A", "body": "text", "topic": "cats",
			"article_img_url": "https://example.com/cat.png",
		})

		require.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "https://example.com/cat.png")
	})
}

func TestUpdateArticleVotes(t *testing.T) {
	newRouterWithArticle := func() (*fakeRepo, http.Handler) {
		repo := newFakeRepo()
		repo.articles[1] = &article.Article{ArticleID: 1, Votes: 0}
		checker := newFakeChecker()
		checker.articles[1] = true
		return repo, newTestRouter(repo, checker)
	}

	t.Run("missing_delta", func(t *testing.T) {
		_, router := newRouterWithArticle()

		recorder := doRequest(t, router, http.MethodPatch, "/api/articles/1", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("non_numeric_delta", func(t *testing.T) {
		_, router := newRouterWithArticle()

		recorder := doRequest(t, router, http.MethodPatch, "/api/articles/1", map[string]any{
			"inc_votes": "many",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing_article", func(t *testing.T) {
		_, router := newRouterWithArticle()

		recorder := doRequest(t, router, http.MethodPatch, "/api/articles/999", map[string]any{
			"inc_votes": 1,
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("deltas_accumulate_below_zero", func(t *testing.T) {
		repo, router := newRouterWithArticle()

		first := doRequest(t, router, http.MethodPatch, "/api/articles/1", map[string]any{"inc_votes": 1})
		require.Equal(t, http.StatusOK, first.Code)

		second := doRequest(t, router, http.MethodPatch, "/api/articles/1", map[string]any{"inc_votes": -100})
		require.Equal(t, http.StatusOK, second.Code)

		assert.Equal(t, -99, repo.articles[1].Votes)

		var body struct {
			Article map[string]any `json:"article"`
		}
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
		assert.EqualValues(t, -99, body.Article["votes"])
	})
}

func TestDeleteArticle(t *testing.T) {
	repo := newFakeRepo()
	repo.articles[1] = &article.Article{ArticleID: 1}
	checker := newFakeChecker()
	checker.articles[1] = true
	router := newTestRouter(repo, checker)

	t.Run("existing_article", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodDelete, "/api/articles/1", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
		assert.NotContains(t, repo.articles, 1)
	})

	t.Run("missing_article", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodDelete, "/api/articles/42", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
