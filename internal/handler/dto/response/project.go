package response

import (
	"time"

	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	TotalPlots     int32     `json:"totalPlots"`
	AvailablePlots int32     `json:"availablePlots"`
	SoldPlots      int32     `json:"soldPlots"`
	ReservedPlots  int32     `json:"reservedPlots"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromProjectView(v *queries.ProjectView) (*ProjectResponse, error) {
	var res ProjectResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type PlotResponse struct {
	ID         uuid.UUID        `json:"id"`
	ProjectID  uuid.UUID        `json:"projectId"`
	PlotNumber string           `json:"plotNumber"`
	Status     string           `json:"status"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	SizeSqm    *decimal.Decimal `json:"sizeSqm,omitempty"`
	OwnerID    *uuid.UUID       `json:"ownerId,omitempty"`
	BookedBy   *uuid.UUID       `json:"bookedBy,omitempty"`
	BookedAt   *time.Time       `json:"bookedAt,omitempty"`
	BookingID  *uuid.UUID       `json:"bookingId,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func FromPlotViews(vs []*queries.PlotView) ([]PlotResponse, error) {
	res := make([]PlotResponse, 0, len(vs))
	if err := copyInto(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type ActivityResponse struct {
	ID        uuid.UUID  `json:"id"`
	ActorID   uuid.UUID  `json:"actorId"`
	Action    string     `json:"action"`
	ProjectID uuid.UUID  `json:"projectId"`
	PlotID    uuid.UUID  `json:"plotId"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromActivityViews(vs []*queries.ActivityView) ([]ActivityResponse, error) {
	res := make([]ActivityResponse, 0, len(vs))
	if err := copyInto(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type PlotStatusResponse struct {
	ID               uuid.UUID  `json:"id"`
	Status           string     `json:"status"`
	CancelledBooking *uuid.UUID `json:"cancelledBookingId,omitempty"`
}
