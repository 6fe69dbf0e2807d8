package topic

import "context"

type Repository interface {
	List(context context.Context) ([]*Topic, error)
	Insert(context context.Context, topic *Topic) error
}
