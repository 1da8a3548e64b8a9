//go:build unit

package commands_test

import (
	"context"
	"sync"
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
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// recordingNotifier records every send and fails for tokens listed in failFor.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []shared.Notification
	failFor map[string]bool
}

func (n *recordingNotifier) Send(_ context.Context, msg shared.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failFor[msg.Token] {
		return errs.New("push gateway unavailable")
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) tokens() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Token)
	}
	return out
}

type harness struct {
	t        *testing.T
	ctx      context.Context
	cfg      config.Config
	store    *memstore.Store
	uow      shared.UnitOfWork
	clock    *clock.MockClock
	notifier *recordingNotifier

	bookings commands.BookingCommands
	projects commands.ProjectCommands
	plots    commands.PlotCommands
	users    commands.UserCommands

	projectReads queries.ProjectQueries
	bookingReads queries.BookingQueries
	taskReads    queries.TaskQueries

	admin commands.Actor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Store.MaxTxRetries = 64
	store := memstore.NewStore()
	return newHarnessWithUoW(t, cfg, store, memstore.NewUoW(store, cfg))
}

func newHarnessWithUoW(t *testing.T, cfg config.Config, store *memstore.Store, uow shared.UnitOfWork) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		ctx:      context.Background(),
		cfg:      cfg,
		store:    store,
		uow:      uow,
		clock:    clock.NewMockClock(testNow),
		notifier: &recordingNotifier{failFor: map[string]bool{}},
	}
	fanout := commands.NewFanoutDispatcher(uow, h.notifier, h.clock, cfg.Booking)
	h.bookings = commands.NewBookingUseCase(uow, fanout, h.clock)
	h.projects = commands.NewProjectUseCase(uow, h.clock)
	h.plots = commands.NewPlotUseCase(uow, h.clock)
	h.users = commands.NewUserUseCase(uow, h.clock)
	h.projectReads = queries.NewProjectQueries(memstore.NewProjectReadStore(store))
	h.bookingReads = queries.NewBookingQueries(memstore.NewBookingReadStore(store))
	h.taskReads = queries.NewTaskQueries(memstore.NewTaskReadStore(store))

	h.admin = h.newUser(user.RoleAdmin, "")
	return h
}

// newUser syncs a profile for a fresh identity and optionally registers a push token.
func (h *harness) newUser(role user.Role, token string) commands.Actor {
	h.t.Helper()
	b := builder.NewUserBuilder().WithRole(role).WithEmail(uuid.NewString()[:8] + "@example.com")
	actor := b.BuildActor()
	created, err := h.users.SyncProfile(h.ctx, actor, b.BuildSyncRequest())
	require.NoError(h.t, err)
	require.True(h.t, created)
	if token != "" {
		require.NoError(h.t, h.users.RegisterNotificationToken(h.ctx, actor.ID, token))
	}
	return actor
}

func (h *harness) newProject(managers ...commands.Actor) uuid.UUID {
	h.t.Helper()
	id, err := h.projects.CreateProject(h.ctx, h.admin, builder.NewProjectBuilder().BuildCreateRequest())
	require.NoError(h.t, err)
	for _, m := range managers {
		require.NoError(h.t, h.projects.AssignManager(h.ctx, h.admin, id, m.ID))
	}
	return id
}

func (h *harness) newPlot(projectID uuid.UUID, number string) uuid.UUID {
	h.t.Helper()
	req := builder.NewPlotBuilder(projectID).WithNumber(number).BuildCreateRequest()
	id, err := h.plots.CreatePlot(h.ctx, h.admin, req)
	require.NoError(h.t, err)
	return id
}

func (h *harness) project(id uuid.UUID) *queries.ProjectView {
	h.t.Helper()
	v, err := h.projectReads.GetProject(h.ctx, id)
	require.NoError(h.t, err)
	return v
}

func (h *harness) plot(projectID, plotID uuid.UUID) *queries.PlotView {
	h.t.Helper()
	plots, err := h.projectReads.ListProjectPlots(h.ctx, projectID, "")
	require.NoError(h.t, err)
	for _, p := range plots {
		if p.ID == plotID {
			return p
		}
	}
	h.t.Fatalf("plot %s not found in project %s", plotID, projectID)
	return nil
}

func (h *harness) activity(projectID uuid.UUID) []*queries.ActivityView {
	h.t.Helper()
	entries, err := h.projectReads.ListProjectActivity(h.ctx, projectID, user.RoleAdmin, 100)
	require.NoError(h.t, err)
	return entries
}

func countAction(entries []*queries.ActivityView, action string) int {
	n := 0
	for _, e := range entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// requireCountersConsistent checks the project counters against its plots.
func (h *harness) requireCountersConsistent(projectID uuid.UUID) {
	h.t.Helper()
	proj := h.project(projectID)
	plots, err := h.projectReads.ListProjectPlots(h.ctx, projectID, "")
	require.NoError(h.t, err)

	var available, sold, reserved int32
	for _, p := range plots {
		switch p.Status {
		case "available":
			available++
		case "sold":
			sold++
		case "booked", "reserved":
			reserved++
		}
	}
	require.Equal(h.t, int32(len(plots)), proj.TotalPlots, "total")
	require.Equal(h.t, available, proj.AvailablePlots, "available")
	require.Equal(h.t, sold, proj.SoldPlots, "sold")
	require.Equal(h.t, reserved, proj.ReservedPlots, "reserved")
}
