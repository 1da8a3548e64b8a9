//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra/memstore"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/commands"
	"estate-booking/internal/usecase/queries"
	"estate-booking/internal/usecase/shared"
	"estate-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	clock *clock.MockClock

	admin  commands.Actor
	client commands.Actor
	users  commands.UserCommands
	plots  commands.PlotCommands
	books  commands.BookingCommands

	projectID uuid.UUID
	bookings  []uuid.UUID
}

func (s *QueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	cfg := config.NewTestConfig()
	s.store = memstore.NewStore()
	uow := memstore.NewUoW(s.store, cfg)
	s.clock = clock.NewMockClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))

	s.users = commands.NewUserUseCase(uow, s.clock)
	s.plots = commands.NewPlotUseCase(uow, s.clock)
	s.books = commands.NewBookingUseCase(uow, commands.NewFanoutDispatcher(uow, noopNotifier{}, s.clock, cfg.Booking), s.clock)
	projects := commands.NewProjectUseCase(uow, s.clock)

	s.admin = s.syncUser(user.RoleAdmin, "admin@example.com")
	s.client = s.syncUser(user.RoleClient, "client@example.com")

	var err error
	s.projectID, err = projects.CreateProject(s.ctx, s.admin, builder.NewProjectBuilder().BuildCreateRequest())
	s.Require().NoError(err)

	s.bookings = nil
	for i := 0; i < 5; i++ {
		plotID, err := s.plots.CreatePlot(s.ctx, s.admin, builder.NewPlotBuilder(s.projectID).Numbered("Q", i).BuildCreateRequest())
		s.Require().NoError(err)
		s.clock.Add(time.Minute)
		res, err := s.books.BookPlot(s.ctx, s.client.ID, commands.BookPlotRequest{PlotID: plotID, ProjectID: s.projectID})
		s.Require().NoError(err)
		s.bookings = append(s.bookings, res.BookingID)
	}
	// one plot stays available
	_, err = s.plots.CreatePlot(s.ctx, s.admin, builder.NewPlotBuilder(s.projectID).WithNumber("Q-free").BuildCreateRequest())
	s.Require().NoError(err)
}

func (s *QueriesTestSuite) syncUser(role user.Role, email string) commands.Actor {
	b := builder.NewUserBuilder().WithRole(role).WithEmail(email)
	_, err := s.users.SyncProfile(s.ctx, b.BuildActor(), b.BuildSyncRequest())
	s.Require().NoError(err)
	return b.BuildActor()
}

func (s *QueriesTestSuite) TestListMyBookings_PagesNewestFirst() {
	q := queries.NewBookingQueries(memstore.NewBookingReadStore(s.store))

	var (
		seen   []uuid.UUID
		cursor *queries.Cursor
		pages  int
	)
	for {
		items, next, err := q.ListMyBookings(s.ctx, s.client.ID, cursor, 2)
		s.Require().NoError(err)
		pages++
		for _, it := range items {
			seen = append(seen, it.ID)
		}
		if next == nil {
			break
		}
		cursor = next
	}

	s.Equal(3, pages)
	want := make([]uuid.UUID, 0, len(s.bookings))
	for i := len(s.bookings) - 1; i >= 0; i-- {
		want = append(want, s.bookings[i])
	}
	s.Equal(want, seen)
}

func (s *QueriesTestSuite) TestListMyBookings_InvalidCursor() {
	q := queries.NewBookingQueries(memstore.NewBookingReadStore(s.store))
	_, _, err := q.ListMyBookings(s.ctx, s.client.ID, &queries.Cursor{After: "%%%"}, 2)
	s.ErrorIs(err, queries.ErrInvalidCursor)
}

func (s *QueriesTestSuite) TestGetBooking_Access() {
	q := queries.NewBookingQueries(memstore.NewBookingReadStore(s.store))

	v, err := q.GetBooking(s.ctx, s.bookings[0], s.client.ID, user.RoleClient)
	s.Require().NoError(err)
	s.Equal(s.projectID, v.ProjectID)

	_, err = q.GetBooking(s.ctx, s.bookings[0], uuid.New(), user.RoleClient)
	s.ErrorIs(err, queries.ErrBookingAccess)

	_, err = q.GetBooking(s.ctx, s.bookings[0], uuid.New(), user.RoleManager)
	s.NoError(err)

	_, err = q.GetBooking(s.ctx, uuid.New(), s.client.ID, user.RoleClient)
	s.ErrorIs(err, queries.ErrBookingNotFound)
}

func (s *QueriesTestSuite) TestListProjectPlots_StatusFilter() {
	q := queries.NewProjectQueries(memstore.NewProjectReadStore(s.store))

	all, err := q.ListProjectPlots(s.ctx, s.projectID, "")
	s.Require().NoError(err)
	s.Len(all, 6)

	booked, err := q.ListProjectPlots(s.ctx, s.projectID, "booked")
	s.Require().NoError(err)
	s.Len(booked, 5)

	available, err := q.ListProjectPlots(s.ctx, s.projectID, "available")
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("Q-free", available[0].PlotNumber)

	_, err = q.ListProjectPlots(s.ctx, s.projectID, "gone")
	s.Equal(errs.CodeInvalidArgument, errs.CodeOf(err))

	_, err = q.ListProjectPlots(s.ctx, uuid.New(), "")
	s.ErrorIs(err, queries.ErrProjectNotFound)
}

func (s *QueriesTestSuite) TestGetProject_Counters() {
	q := queries.NewProjectQueries(memstore.NewProjectReadStore(s.store))
	v, err := q.GetProject(s.ctx, s.projectID)
	s.Require().NoError(err)
	s.Equal(int32(6), v.TotalPlots)
	s.Equal(int32(1), v.AvailablePlots)
	s.Equal(int32(5), v.ReservedPlots)
	s.Equal(int32(0), v.SoldPlots)
}

func (s *QueriesTestSuite) TestListProjectActivity_RequiresManager() {
	q := queries.NewProjectQueries(memstore.NewProjectReadStore(s.store))

	_, err := q.ListProjectActivity(s.ctx, s.projectID, user.RoleClient, 10)
	s.ErrorIs(err, queries.ErrPermissionDenied)

	entries, err := q.ListProjectActivity(s.ctx, s.projectID, user.RoleManager, 3)
	s.Require().NoError(err)
	s.Len(entries, 3)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func TestValidateLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, queries.DefaultListLimit},
		{-3, queries.DefaultListLimit},
		{7, 7},
		{queries.MaxListLimit + 1, queries.MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, queries.ValidateLimit(tt.in))
		})
	}
}

func TestAfterCursor_RoundTrip(t *testing.T) {
	at := time.Date(2026, 4, 1, 12, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)

	_, _, err = queries.DecodeAfterCursor("")
	assert.Error(t, err)
}

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, shared.Notification) error { return nil }
