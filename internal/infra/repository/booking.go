package repository

import (
	"context"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return repoErr("failed to encode booking details", err)
	}
	if err := r.queries.CreateBooking(ctx, r.db, params); err != nil {
		return repoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, repoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, repoErr("failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    string(b.Status()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	return affected(rows, err, "failed to update booking status")
}
