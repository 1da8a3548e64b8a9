package repository

import (
	"context"

	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/task"
	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"
)

type TaskWriteQueries interface {
	CreateTask(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTaskParams) error
}

type TaskRepository struct {
	queries TaskWriteQueries
	db      sqlc.DBTX
}

func NewTaskRepository(queries TaskWriteQueries, db sqlc.DBTX) *TaskRepository {
	return &TaskRepository{queries: queries, db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	if err := r.queries.CreateTask(ctx, r.db, converter.TaskToCreateParams(t)); err != nil {
		return repoErr("failed to create task", err)
	}
	return nil
}

type ActivityWriteQueries interface {
	CreateActivityLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityLogParams) error
}

type ActivityRepository struct {
	queries ActivityWriteQueries
	db      sqlc.DBTX
}

func NewActivityRepository(queries ActivityWriteQueries, db sqlc.DBTX) *ActivityRepository {
	return &ActivityRepository{queries: queries, db: db}
}

func (r *ActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	if err := r.queries.CreateActivityLog(ctx, r.db, converter.ActivityToCreateParams(e)); err != nil {
		return repoErr("failed to append activity", err)
	}
	return nil
}
