// Copyright (c) 2026 Newswire. All rights reserved.

/*
Package check implements the generic existence predicate that gates every
read-by-id and reference-carrying write in the API.

# Injection Safety

The predicate interpolates a table and column name into its SQL. Those
identifiers are never taken from a request: they come exclusively from the
closed set of [Ref] values defined below, which in turn are built from the
schema enumeration. A free-form string cannot reach the query text.
*/
package check

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmlane/newswire/internal/platform/apperr"
	"github.com/dmlane/newswire/internal/platform/database/schema"
)

// Ref identifies an entity collection and the key column used for lookups.
//
// The zero value is not usable; only the package-level variants below are
// ever passed to [Exists].
type Ref struct {
	Table  string
	Column string
}

// The closed enumeration of existence checks this system performs.
var (
	ArticleByID    = Ref{Table: schema.RefArticles.Table, Column: schema.RefArticles.ArticleID}
	CommentByID    = Ref{Table: schema.RefComments.Table, Column: schema.RefComments.CommentID}
	TopicBySlug    = Ref{Table: schema.RefTopics.Table, Column: schema.RefTopics.Slug}
	UserByUsername = Ref{Table: schema.RefUsers.Table, Column: schema.RefUsers.Username}
)

// Querier is the slice of pgxpool.Pool the predicate needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Exists resolves with nil iff at least one row in ref's table has the given
// key value. A missing row fails with a generic 404; the message deliberately
// does not name the entity, matching the API's terse error contract.
func Exists(ctx context.Context, db Querier, ref Ref, value any) error {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, ref.Table, ref.Column)

	var found bool
	if err := db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return apperr.Internal(err)
	}

	if !found {
		return apperr.NotFound("Resource")
	}

	return nil
}

// Checker bundles the enumerated predicates behind one dependency so services
// can declare exactly the checks they need as small interfaces.
type Checker struct {
	db Querier
}

// NewChecker wraps a database handle (usually the shared pgxpool.Pool).
func NewChecker(db Querier) *Checker {
	return &Checker{db: db}
}

// Article reports whether an article row with the given id exists.
func (checker *Checker) Article(ctx context.Context, articleID int) error {
	return Exists(ctx, checker.db, ArticleByID, articleID)
}

// Comment reports whether a comment row with the given id exists.
func (checker *Checker) Comment(ctx context.Context, commentID int) error {
	return Exists(ctx, checker.db, CommentByID, commentID)
}

// Topic reports whether a topic row with the given slug exists.
func (checker *Checker) Topic(ctx context.Context, slug string) error {
	return Exists(ctx, checker.db, TopicBySlug, slug)
}

// User reports whether a user row with the given username exists.
func (checker *Checker) User(ctx context.Context, username string) error {
	return Exists(ctx, checker.db, UserByUsername, username)
}
