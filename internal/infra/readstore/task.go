package readstore

import (
	"context"

	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TaskReadQueries interface {
	ListTasksByAssignee(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTasksByAssigneeParams) ([]sqlc.Tasks, error)
}

type TaskReadStore struct {
	queries TaskReadQueries
	db      sqlc.DBTX
}

func NewTaskReadStore(queries TaskReadQueries, db sqlc.DBTX) *TaskReadStore {
	return &TaskReadStore{queries: queries, db: db}
}

func (r *TaskReadStore) ListByAssignee(ctx context.Context, assigneeID uuid.UUID, status *string) ([]*queries.TaskView, error) {
	rows, err := r.queries.ListTasksByAssignee(ctx, r.db, sqlc.ListTasksByAssigneeParams{
		AssigneeID: assigneeID,
		Status:     pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, readErr("failed to list tasks", err)
	}
	views := make([]*queries.TaskView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.TaskView{
			ID:         row.ID,
			Type:       row.Type,
			BookingID:  row.BookingID,
			ProjectID:  row.ProjectID,
			PlotID:     row.PlotID,
			AssigneeID: row.AssigneeID,
			Status:     row.Status,
			Priority:   row.Priority,
			DueAt:      pgconv.TimeFromPgtype(row.DueAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
