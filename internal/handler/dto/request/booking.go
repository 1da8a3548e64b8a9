package request

import (
	"strings"

	"estate-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// BookPlotRequest keeps ids as strings so that a missing id reaches the
// usecase and is reported with the field that is missing.
type BookPlotRequest struct {
	PlotID         string         `json:"plotId"`
	ProjectID      string         `json:"projectId"`
	BookingDetails map[string]any `json:"bookingDetails,omitempty"`
}

func (r *BookPlotRequest) ToCommand() (commands.BookPlotRequest, error) {
	plotID, err := optionalUUID(r.PlotID)
	if err != nil {
		return commands.BookPlotRequest{}, err
	}
	projectID, err := optionalUUID(r.ProjectID)
	if err != nil {
		return commands.BookPlotRequest{}, err
	}
	return commands.BookPlotRequest{
		PlotID:    plotID,
		ProjectID: projectID,
		Details:   r.BookingDetails,
	}, nil
}

func optionalUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}
