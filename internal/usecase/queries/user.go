package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}
