package article

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmlane/newswire/internal/platform/database/schema"
	"github.com/dmlane/newswire/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetByID(context context.Context, articleID int) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		       COUNT(c.%s)::int AS comment_count
		FROM %s a
		LEFT JOIN %s c ON a.%s = c.%s
		WHERE a.%s = $1
		GROUP BY a.%s
	`,
		schema.RefArticles.ArticleID, schema.RefArticles.Title, schema.RefArticles.Topic, schema.RefArticles.Author,
		schema.RefArticles.Body, schema.RefArticles.CreatedAt, schema.RefArticles.Votes, schema.RefArticles.ArticleImgURL,
		schema.RefComments.CommentID,
		schema.RefArticles.Table, schema.RefComments.Table,
		schema.RefArticles.ArticleID, schema.RefComments.ArticleID,
		schema.RefArticles.ArticleID, schema.RefArticles.ArticleID,
	)
	a := &Article{}

	err := repository.db.QueryRow(context, query, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ImageURL,
		&a.CommentCount,
	)

	return a, dberr.Wrap(err, "get_article_by_id")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, sort Sort, limit, offset int) ([]*Article, int, error) {
	// Summaries exclude the body column on purpose.
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		       COUNT(c.%s)::int AS comment_count
		FROM %s a
		LEFT JOIN %s c ON a.%s = c.%s
	`,
		schema.RefArticles.ArticleID, schema.RefArticles.Title, schema.RefArticles.Topic, schema.RefArticles.Author,
		schema.RefArticles.CreatedAt, schema.RefArticles.Votes, schema.RefArticles.ArticleImgURL,
		schema.RefComments.CommentID,
		schema.RefArticles.Table, schema.RefComments.Table,
		schema.RefArticles.ArticleID, schema.RefComments.ArticleID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefArticles.Table)

	args := []any{}
	countArgs := []any{}

	if filter.Topic != "" {
		query += fmt.Sprintf(" WHERE a.%s = $1", schema.RefArticles.Topic)
		countQuery += fmt.Sprintf(" WHERE %s = $1", schema.RefArticles.Topic)
		args = append(args, filter.Topic)
		countArgs = append(countArgs, filter.Topic)
	}

	// Sort is a validated value: its column comes from the allow-list and its
	// direction is ASC or DESC. Ties keep storage order, no secondary key.
	query += fmt.Sprintf(" GROUP BY a.%s", schema.RefArticles.ArticleID)
	query += fmt.Sprintf(" ORDER BY %s %s", sort.Column, sort.Direction)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		a := &Article{}
		if err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ImageURL,
			&a.CommentCount,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, total, nil
}

func (repository *PostgresRepository) Insert(context context.Context, a *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		schema.RefArticles.Table,
		schema.RefArticles.Author, schema.RefArticles.Title, schema.RefArticles.Body,
		schema.RefArticles.Topic, schema.RefArticles.ArticleImgURL,
		schema.RefArticles.ArticleID, schema.RefArticles.CreatedAt, schema.RefArticles.Votes,
	)

	err := repository.db.QueryRow(context, query,
		a.Author, a.Title, a.Body, a.Topic, a.ImageURL,
	).Scan(&a.ArticleID, &a.CreatedAt, &a.Votes)

	return dberr.Wrap(err, "insert_article")
}

func (repository *PostgresRepository) UpdateVotes(context context.Context, articleID, delta int) (*Article, error) {
	// Single atomic increment; two concurrent deltas both land instead of one
	// overwriting the other. The comment count is recomputed in the same
	// statement so the returned record matches what a re-read would show.
	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s,
		          (SELECT COUNT(*)::int FROM %s c WHERE c.%s = %s.%s) AS comment_count
	`,
		schema.RefArticles.Table, schema.RefArticles.Votes, schema.RefArticles.Votes,
		schema.RefArticles.ArticleID,
		schema.RefArticles.ArticleID, schema.RefArticles.Title, schema.RefArticles.Topic, schema.RefArticles.Author,
		schema.RefArticles.Body, schema.RefArticles.CreatedAt, schema.RefArticles.Votes, schema.RefArticles.ArticleImgURL,
		schema.RefComments.Table, schema.RefComments.ArticleID,
		schema.RefArticles.Table, schema.RefArticles.ArticleID,
	)
	a := &Article{}

	err := repository.db.QueryRow(context, query, delta, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ImageURL,
		&a.CommentCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_article_votes")
	}

	return a, nil
}

func (repository *PostgresRepository) Delete(context context.Context, articleID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefArticles.Table, schema.RefArticles.ArticleID)

	tag, err := repository.db.Exec(context, query, articleID)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
