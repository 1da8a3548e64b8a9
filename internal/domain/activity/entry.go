package activity

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionBookingCreated    Action = "booking_created"
	ActionPlotCreated       Action = "plot_created"
	ActionPlotStatusChanged Action = "plot_status_changed"
	ActionPlotDeleted       Action = "plot_deleted"
	ActionBookingCancelled  Action = "booking_cancelled"
)

// Entry is an append-only audit record. Entries are never updated or deleted.
type Entry struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	Action    Action
	ProjectID uuid.UUID
	PlotID    uuid.UUID
	BookingID *uuid.UUID
	Message   string
	CreatedAt time.Time
}

func NewBookingCreated(actorID, projectID, plotID, bookingID uuid.UUID, at time.Time) *Entry {
	return &Entry{
		ID:        uuid.New(),
		ActorID:   actorID,
		Action:    ActionBookingCreated,
		ProjectID: projectID,
		PlotID:    plotID,
		BookingID: &bookingID,
		Message:   "plot booked",
		CreatedAt: at,
	}
}

func NewPlotEntry(actorID uuid.UUID, action Action, projectID, plotID uuid.UUID, message string, at time.Time) *Entry {
	return &Entry{
		ID:        uuid.New(),
		ActorID:   actorID,
		Action:    action,
		ProjectID: projectID,
		PlotID:    plotID,
		Message:   message,
		CreatedAt: at,
	}
}

func NewBookingCancelled(actorID, projectID, plotID, bookingID uuid.UUID, at time.Time) *Entry {
	e := NewPlotEntry(actorID, ActionBookingCancelled, projectID, plotID, "booking cancelled with plot release", at)
	e.BookingID = &bookingID
	return e
}
