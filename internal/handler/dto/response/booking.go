package response

import (
	"time"

	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookPlotResponse struct {
	Success       bool      `json:"success"`
	BookingID     uuid.UUID `json:"bookingId"`
	Message       string    `json:"message"`
	IgnoredFields []string  `json:"ignoredFields,omitempty"`
}

func FromBookPlotResult(r *commands.BookPlotResult) *BookPlotResponse {
	return &BookPlotResponse{
		Success:       r.Success,
		BookingID:     r.BookingID,
		Message:       r.Message,
		IgnoredFields: r.IgnoredFields,
	}
}

type BookingResponse struct {
	ID         uuid.UUID         `json:"id"`
	PlotID     uuid.UUID         `json:"plotId"`
	ProjectID  uuid.UUID         `json:"projectId"`
	ClientID   uuid.UUID         `json:"clientId"`
	ClientName string            `json:"clientName"`
	Status     string            `json:"status"`
	Details    map[string]string `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromBookingList(vs []*queries.BookingView, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]BookingResponse, 0, len(vs))}
	if err := copyInto(&res.Items, vs); err != nil {
		return nil, err
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
