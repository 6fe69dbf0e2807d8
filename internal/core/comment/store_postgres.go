package comment

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

func (repository *PostgresRepository) ListForArticle(context context.Context, articleID, limit, offset int) ([]*Comment, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.RefComments.CommentID, schema.RefComments.ArticleID, schema.RefComments.Author,
		schema.RefComments.Body, schema.RefComments.Votes, schema.RefComments.CreatedAt,
		schema.RefComments.Table,
		schema.RefComments.ArticleID,
		schema.RefComments.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.RefComments.Table, schema.RefComments.ArticleID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, articleID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	rows, err := repository.db.Query(context, query, articleID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, total, nil
}

func (repository *PostgresRepository) Insert(context context.Context, c *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`,
		schema.RefComments.Table,
		schema.RefComments.ArticleID, schema.RefComments.Author, schema.RefComments.Body,
		schema.RefComments.CommentID, schema.RefComments.Votes, schema.RefComments.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ArticleID, c.Author, c.Body,
	).Scan(&c.CommentID, &c.Votes, &c.CreatedAt)

	return dberr.Wrap(err, "insert_comment")
}

func (repository *PostgresRepository) UpdateVotes(context context.Context, commentID, delta int) (*Comment, error) {
	// Single atomic increment, see the article store for rationale.
	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s, %s, %s, %s, %s, %s
	`,
		schema.RefComments.Table, schema.RefComments.Votes, schema.RefComments.Votes,
		schema.RefComments.CommentID,
		schema.RefComments.CommentID, schema.RefComments.ArticleID, schema.RefComments.Author,
		schema.RefComments.Body, schema.RefComments.Votes, schema.RefComments.CreatedAt,
	)
	c := &Comment{}

	err := repository.db.QueryRow(context, query, delta, commentID).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_comment_votes")
	}

	return c, nil
}

func (repository *PostgresRepository) Delete(context context.Context, commentID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefComments.Table, schema.RefComments.CommentID)

	tag, err := repository.db.Exec(context, query, commentID)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
