package converter

import (
	"encoding/json"

	"estate-booking/internal/domain/booking"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
)

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	details, err := DecodeDetails(row.Details)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		row.ID,
		row.PlotID,
		row.ProjectID,
		row.ClientID,
		row.ClientName,
		booking.Status(row.Status),
		details,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	details, err := json.Marshal(b.Details())
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		PlotID:     b.PlotID(),
		ProjectID:  b.ProjectID(),
		ClientID:   b.ClientID(),
		ClientName: b.ClientName(),
		Status:     string(b.Status()),
		Details:    details,
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func DecodeDetails(raw []byte) (booking.Details, error) {
	details := booking.Details{}
	if len(raw) == 0 {
		return details, nil
	}
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return details, nil
}
