package converter

import (
	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/task"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
)

func TaskToCreateParams(t *task.Task) sqlc.CreateTaskParams {
	return sqlc.CreateTaskParams{
		ID:         t.ID,
		Type:       string(t.Type),
		BookingID:  t.BookingID,
		ProjectID:  t.ProjectID,
		PlotID:     t.PlotID,
		AssigneeID: t.AssigneeID,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		DueAt:      pgconv.TimeToPgtype(t.DueAt),
		CreatedAt:  pgconv.TimeToPgtype(t.CreatedAt),
	}
}

func ActivityToCreateParams(e *activity.Entry) sqlc.CreateActivityLogParams {
	return sqlc.CreateActivityLogParams{
		ID:        e.ID,
		ActorID:   e.ActorID,
		Action:    string(e.Action),
		ProjectID: e.ProjectID,
		PlotID:    e.PlotID,
		BookingID: pgconv.UUIDPtrToPgtype(e.BookingID),
		Message:   e.Message,
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt),
	}
}
