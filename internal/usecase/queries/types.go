package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProjectView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	TotalPlots     int32     `json:"total_plots"`
	AvailablePlots int32     `json:"available_plots"`
	SoldPlots      int32     `json:"sold_plots"`
	ReservedPlots  int32     `json:"reserved_plots"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PlotView struct {
	ID         uuid.UUID        `json:"id"`
	ProjectID  uuid.UUID        `json:"project_id"`
	PlotNumber string           `json:"plot_number"`
	Status     string           `json:"status"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	SizeSqm    *decimal.Decimal `json:"size_sqm,omitempty"`
	OwnerID    *uuid.UUID       `json:"owner_id,omitempty"`
	BookedBy   *uuid.UUID       `json:"booked_by,omitempty"`
	BookedAt   *time.Time       `json:"booked_at,omitempty"`
	BookingID  *uuid.UUID       `json:"booking_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type BookingView struct {
	ID         uuid.UUID         `json:"id"`
	PlotID     uuid.UUID         `json:"plot_id"`
	ProjectID  uuid.UUID         `json:"project_id"`
	ClientID   uuid.UUID         `json:"client_id"`
	ClientName string            `json:"client_name"`
	Status     string            `json:"status"`
	Details    map[string]string `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type TaskView struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	ProjectID  uuid.UUID `json:"project_id"`
	PlotID     uuid.UUID `json:"plot_id"`
	AssigneeID uuid.UUID `json:"assignee_id"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	DueAt      time.Time `json:"due_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityView is a read-only projection of the append-only activity log.
type ActivityView struct {
	ID        uuid.UUID  `json:"id"`
	ActorID   uuid.UUID  `json:"actor_id"`
	Action    string     `json:"action"`
	ProjectID uuid.UUID  `json:"project_id"`
	PlotID    uuid.UUID  `json:"plot_id"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

type UserView struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	DisplayName          string    `json:"display_name"`
	Role                 string    `json:"role"`
	HasNotificationToken bool      `json:"has_notification_token"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}
