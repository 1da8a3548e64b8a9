package readstore

import (
	"context"
	"time"

	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsByClientFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByClientFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByClientKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByClientKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, readErr("failed to find booking", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) ListByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByClientFirstPage(ctx, r.db, sqlc.ListBookingsByClientFirstPageParams{
		ClientID: clientID,
		Limit:    limit,
	})
	if err != nil {
		return nil, readErr("failed to list bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListByClientKeyset(ctx context.Context, clientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByClientKeyset(ctx, r.db, sqlc.ListBookingsByClientKeysetParams{
		ClientID:      clientID,
		Limit:         limit,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
	})
	if err != nil {
		return nil, readErr("failed to list bookings", err)
	}
	return toBookingViews(rows)
}

func toBookingViews(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toBookingView(row sqlc.Bookings) (*queries.BookingView, error) {
	details, err := converter.DecodeDetails(row.Details)
	if err != nil {
		return nil, readErr("failed to decode booking details", err)
	}
	return &queries.BookingView{
		ID:         row.ID,
		PlotID:     row.PlotID,
		ProjectID:  row.ProjectID,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		Status:     row.Status,
		Details:    details,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
