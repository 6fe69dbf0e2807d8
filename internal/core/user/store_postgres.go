package user

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

func (repository *PostgresRepository) List(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefUsers.Username, schema.RefUsers.Name, schema.RefUsers.AvatarURL,
		schema.RefUsers.Table, schema.RefUsers.Username)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, nil
}

func (repository *PostgresRepository) GetByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefUsers.Username, schema.RefUsers.Name, schema.RefUsers.AvatarURL,
		schema.RefUsers.Table, schema.RefUsers.Username)
	u := &User{}

	err := repository.db.QueryRow(context, query, username).Scan(&u.Username, &u.Name, &u.AvatarURL)

	return u, dberr.Wrap(err, "get_user_by_username")
}
