//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra"
	"estate-booking/internal/infra/repository"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
	repositorymock "estate-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	email, err := user.NewEmail("buyer@example.com")
	require.NoError(t, err)
	client := user.NewUser(uuid.New(), email, "Ana Buyer", user.RoleClient, now)
	details, _, err := booking.NewDetails(map[string]any{"notes": "corner plot please"})
	require.NoError(t, err)
	b := booking.New(uuid.New(), uuid.New(), client, details, now)

	t.Run("success: details stored as json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		db := mockDBTX{}

		mockQueries.EXPECT().CreateBooking(ctx, db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
				var got map[string]string
				require.NoError(t, json.Unmarshal(arg.Details, &got))
				assert.Equal(t, "corner plot please", got["notes"])
				assert.Equal(t, "Ana Buyer", arg.ClientName)
				assert.Equal(t, "pending", arg.Status)
				return nil
			})

		require.NoError(t, repository.NewBookingRepository(mockQueries, db).Create(ctx, b))
	})

	t.Run("error: second pending booking for plot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		db := mockDBTX{}
		mockQueries.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		err := repository.NewBookingRepository(mockQueries, db).Create(ctx, b)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestBookingRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	db := mockDBTX{}
	id := uuid.New()
	now := time.Now().UTC()

	mockQueries.EXPECT().GetBookingForUpdate(ctx, db, id).Return(sqlc.Bookings{
		ID:         id,
		PlotID:     uuid.New(),
		ProjectID:  uuid.New(),
		ClientID:   uuid.New(),
		ClientName: "Unknown Client",
		Status:     "pending",
		Details:    []byte(`{"paymentPlan":"monthly"}`),
		CreatedAt:  pgconv.TimeToPgtype(now),
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}, nil)

	b, err := repository.NewBookingRepository(mockQueries, db).GetForUpdate(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, "monthly", b.Details()["paymentPlan"])
}
