package task

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const TypeBookingFollowUp Type = "booking_followup"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	}
	return PriorityHigh
}

type Task struct {
	ID         uuid.UUID
	Type       Type
	BookingID  uuid.UUID
	ProjectID  uuid.UUID
	PlotID     uuid.UUID
	AssigneeID uuid.UUID
	Status     Status
	Priority   Priority
	DueAt      time.Time
	CreatedAt  time.Time
}

// NewBookingFollowUp creates the pending task a project manager gets for a new booking.
func NewBookingFollowUp(bookingID, projectID, plotID, assigneeID uuid.UUID, now time.Time, dueAfter time.Duration, priority Priority) *Task {
	return &Task{
		ID:         uuid.New(),
		Type:       TypeBookingFollowUp,
		BookingID:  bookingID,
		ProjectID:  projectID,
		PlotID:     plotID,
		AssigneeID: assigneeID,
		Status:     StatusPending,
		Priority:   priority,
		DueAt:      now.Add(dueAfter),
		CreatedAt:  now,
	}
}
