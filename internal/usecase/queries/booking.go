package queries

import (
	"context"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int32) ([]*BookingView, error)
	ListByClientKeyset(ctx context.Context, clientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	ListMyBookings(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetBooking is visible to the booking client and to managers and above.
func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if v.ClientID != actorID && !actorRole.AtLeast(user.RoleManager) {
		return nil, ErrBookingAccess
	}
	return v, nil
}

// ListMyBookings pages newest first. The returned cursor is nil on the last page.
func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if clientID == uuid.Nil {
		return nil, nil, errs.ErrUnauthenticated
	}
	limit = ValidateLimit(limit)
	// fetch one extra row to learn whether another page exists
	// #nosec G115 -- ValidateLimit caps the value at MaxListLimit
	fetch := int32(limit + 1)

	var (
		items []*BookingView
		err   error
	)
	if cursor == nil || cursor.After == "" {
		items, err = q.store.ListByClientFirstPage(ctx, clientID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor.WithCause(derr)
		}
		items, err = q.store.ListByClientKeyset(ctx, clientID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, errs.Internal(err)
	}

	if len(items) <= limit {
		return items, nil, nil
	}
	items = items[:limit]
	last := items[len(items)-1]
	return items, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
