package user

import "context"

type Repository interface {
	List(context context.Context) ([]*User, error)
	GetByUsername(context context.Context, username string) (*User, error)
}
