package topic

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

func (repository *PostgresRepository) List(context context.Context) ([]*Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefTopics.Slug, schema.RefTopics.Description,
		schema.RefTopics.Table, schema.RefTopics.Slug)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		t := &Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, t)
	}

	return topics, nil
}

func (repository *PostgresRepository) Insert(context context.Context, t *Topic) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.RefTopics.Table, schema.RefTopics.Slug, schema.RefTopics.Description)

	_, err := repository.db.Exec(context, query, t.Slug, t.Description)
	return dberr.Wrap(err, "insert_topic")
}
