package queries

import (
	"context"

	"estate-booking/internal/domain/task"
	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type TaskReadStore interface {
	ListByAssignee(ctx context.Context, assigneeID uuid.UUID, status *string) ([]*TaskView, error)
}

type TaskQueries interface {
	ListMyTasks(ctx context.Context, assigneeID uuid.UUID, status string) ([]*TaskView, error)
}

type taskQueriesImpl struct {
	store TaskReadStore
}

func NewTaskQueries(store TaskReadStore) TaskQueries {
	return &taskQueriesImpl{store: store}
}

func (q *taskQueriesImpl) ListMyTasks(ctx context.Context, assigneeID uuid.UUID, status string) ([]*TaskView, error) {
	if assigneeID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	var filter *string
	switch task.Status(status) {
	case "":
	case task.StatusPending, task.StatusCompleted:
		filter = &status
	default:
		return nil, ErrInvalidFilter.WithDetail("status", status)
	}
	tasks, err := q.store.ListByAssignee(ctx, assigneeID, filter)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return tasks, nil
}
