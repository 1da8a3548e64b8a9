package response

import (
	"time"

	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TaskResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"bookingId"`
	ProjectID  uuid.UUID `json:"projectId"`
	PlotID     uuid.UUID `json:"plotId"`
	AssigneeID uuid.UUID `json:"assigneeId"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	DueAt      time.Time `json:"dueAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromTaskViews(vs []*queries.TaskView) ([]TaskResponse, error) {
	res := make([]TaskResponse, 0, len(vs))
	if err := copyInto(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}
