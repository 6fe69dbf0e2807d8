// Copyright (c) 2026 Newswire. All rights reserved.

package check_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlane/newswire/internal/platform/apperr"
	"github.com/dmlane/newswire/internal/platform/database/check"
)

// fakeRow satisfies pgx.Row and scans a fixed boolean.
type fakeRow struct {
	found bool
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if target, ok := dest[0].(*bool); ok {
		*target = r.found
	}
	return nil
}

// fakeDB records the query text and returns a canned row.
type fakeDB struct {
	lastQuery string
	lastArgs  []any
	row       fakeRow
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.lastQuery = sql
	db.lastArgs = args
	return db.row
}

func TestExists_RowPresent(t *testing.T) {
	db := &fakeDB{row: fakeRow{found: true}}

	err := check.Exists(context.Background(), db, check.ArticleByID, 1)

	assert.NoError(t, err)
	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, db.lastQuery)
	assert.Equal(t, []any{1}, db.lastArgs)
}

func TestExists_RowAbsent(t *testing.T) {
	db := &fakeDB{row: fakeRow{found: false}}

	err := check.Exists(context.Background(), db, check.UserByUsername, "ghost")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	// The message never names the entity that was missing.
	assert.Equal(t, "Resource not found", ae.Message)
}

func TestExists_QueryFailure(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("boom")}}

	err := check.Exists(context.Background(), db, check.CommentByID, 7)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
}

func TestChecker_RoutesToEnumeratedRefs(t *testing.T) {
	tests := []struct {
		name      string
		run       func(c *check.Checker, ctx context.Context) error
		wantQuery string
	}{
		{
			"article",
			func(c *check.Checker, ctx context.Context) error { return c.Article(ctx, 3) },
			`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`,
		},
		{
			"comment",
			func(c *check.Checker, ctx context.Context) error { return c.Comment(ctx, 3) },
			`SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = $1)`,
		},
		{
			"topic",
			func(c *check.Checker, ctx context.Context) error { return c.Topic(ctx, "cats") },
			`SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`,
		},
		{
			"user",
			func(c *check.Checker, ctx context.Context) error { return c.User(ctx, "icellusedkars") },
			`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{row: fakeRow{found: true}}
			checker := check.NewChecker(db)

			require.NoError(t, tt.run(checker, context.Background()))
			assert.Equal(t, tt.wantQuery, db.lastQuery)
		})
	}
}
