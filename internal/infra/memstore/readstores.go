package memstore

import (
	"context"
	"sort"
	"time"

	"estate-booking/internal/domain/activity"
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/task"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/usecase/queries"
	"estate-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProjectReadStore struct{ store *Store }

func NewProjectReadStore(store *Store) *ProjectReadStore { return &ProjectReadStore{store: store} }

func (r *ProjectReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ProjectView, error) {
	v, version := r.store.read(idKey(collProjects, id))
	if version == 0 {
		return nil, notFound("project not found")
	}
	rec := v.(projectRecord)
	return &queries.ProjectView{
		ID:             rec.ID,
		Name:           rec.Name,
		Location:       rec.Location,
		Status:         string(rec.Status),
		TotalPlots:     int32(rec.Counters.Total),
		AvailablePlots: int32(rec.Counters.Available),
		SoldPlots:      int32(rec.Counters.Sold),
		ReservedPlots:  int32(rec.Counters.Reserved),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}, nil
}

func (r *ProjectReadStore) ListPlots(_ context.Context, projectID uuid.UUID, status *string) ([]*queries.PlotView, error) {
	views := []*queries.PlotView{}
	r.store.scan(collPlots, func(v any) {
		s := v.(plot.Snapshot)
		if s.ProjectID != projectID || (status != nil && string(s.Status) != *status) {
			return
		}
		views = append(views, &queries.PlotView{
			ID:         s.ID,
			ProjectID:  s.ProjectID,
			PlotNumber: s.PlotNumber,
			Status:     string(s.Status),
			Price:      s.Price,
			SizeSqm:    s.SizeSqm,
			OwnerID:    s.OwnerID,
			BookedBy:   s.BookedBy,
			BookedAt:   s.BookedAt,
			BookingID:  s.BookingID,
			CreatedAt:  s.CreatedAt,
			UpdatedAt:  s.UpdatedAt,
		})
	})
	sort.Slice(views, func(i, j int) bool { return views[i].PlotNumber < views[j].PlotNumber })
	return views, nil
}

func (r *ProjectReadStore) ListActivity(_ context.Context, projectID uuid.UUID, limit int32) ([]*queries.ActivityView, error) {
	views := []*queries.ActivityView{}
	r.store.scan(collActivity, func(v any) {
		e := v.(activity.Entry)
		if e.ProjectID != projectID {
			return
		}
		views = append(views, &queries.ActivityView{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Action:    string(e.Action),
			ProjectID: e.ProjectID,
			PlotID:    e.PlotID,
			BookingID: e.BookingID,
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		})
	})
	sort.Slice(views, func(i, j int) bool {
		return newerFirst(views[i].CreatedAt, views[i].ID, views[j].CreatedAt, views[j].ID)
	})
	if limit >= 0 && len(views) > int(limit) {
		views = views[:limit]
	}
	return views, nil
}

type BookingReadStore struct{ store *Store }

func NewBookingReadStore(store *Store) *BookingReadStore { return &BookingReadStore{store: store} }

func (r *BookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, version := r.store.read(idKey(collBookings, id))
	if version == 0 {
		return nil, notFound("booking not found")
	}
	return toBookingView(v.(bookingRecord)), nil
}

func (r *BookingReadStore) ListByClientFirstPage(_ context.Context, clientID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.listByClient(clientID, limit, func(*queries.BookingView) bool { return true }), nil
}

func (r *BookingReadStore) ListByClientKeyset(_ context.Context, clientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.listByClient(clientID, limit, func(v *queries.BookingView) bool {
		return newerFirst(lastCreatedAt, lastID, v.CreatedAt, v.ID)
	}), nil
}

func (r *BookingReadStore) listByClient(clientID uuid.UUID, limit int32, after func(*queries.BookingView) bool) []*queries.BookingView {
	views := []*queries.BookingView{}
	r.store.scan(collBookings, func(v any) {
		rec := v.(bookingRecord)
		if rec.ClientID != clientID {
			return
		}
		view := toBookingView(rec)
		if after(view) {
			views = append(views, view)
		}
	})
	sort.Slice(views, func(i, j int) bool {
		return newerFirst(views[i].CreatedAt, views[i].ID, views[j].CreatedAt, views[j].ID)
	})
	if limit >= 0 && len(views) > int(limit) {
		views = views[:limit]
	}
	return views
}

func toBookingView(rec bookingRecord) *queries.BookingView {
	return &queries.BookingView{
		ID:         rec.ID,
		PlotID:     rec.PlotID,
		ProjectID:  rec.ProjectID,
		ClientID:   rec.ClientID,
		ClientName: rec.ClientName,
		Status:     string(rec.Status),
		Details:    rec.Details.Clone(),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}

// newerFirst orders by (created_at DESC, id DESC).
func newerFirst(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID.String() > bID.String()
}

type TaskReadStore struct{ store *Store }

func NewTaskReadStore(store *Store) *TaskReadStore { return &TaskReadStore{store: store} }

func (r *TaskReadStore) ListByAssignee(_ context.Context, assigneeID uuid.UUID, status *string) ([]*queries.TaskView, error) {
	views := []*queries.TaskView{}
	r.store.scan(collTasks, func(v any) {
		tk := v.(task.Task)
		if tk.AssigneeID != assigneeID || (status != nil && string(tk.Status) != *status) {
			return
		}
		views = append(views, &queries.TaskView{
			ID:         tk.ID,
			Type:       string(tk.Type),
			BookingID:  tk.BookingID,
			ProjectID:  tk.ProjectID,
			PlotID:     tk.PlotID,
			AssigneeID: tk.AssigneeID,
			Status:     string(tk.Status),
			Priority:   string(tk.Priority),
			DueAt:      tk.DueAt,
			CreatedAt:  tk.CreatedAt,
		})
	})
	sort.Slice(views, func(i, j int) bool {
		if !views[i].DueAt.Equal(views[j].DueAt) {
			return views[i].DueAt.Before(views[j].DueAt)
		}
		return views[i].ID.String() < views[j].ID.String()
	})
	return views, nil
}

type UserReadStore struct{ store *Store }

func NewUserReadStore(store *Store) *UserReadStore { return &UserReadStore{store: store} }

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	v, version := r.store.read(idKey(collUsers, id))
	if version == 0 {
		return nil, notFound("user not found")
	}
	rec := v.(userRecord)
	return &queries.UserView{
		ID:                   rec.ID,
		Email:                rec.Email,
		DisplayName:          rec.DisplayName,
		Role:                 rec.Role.String(),
		HasNotificationToken: rec.NotificationToken != "",
		IsActive:             rec.IsActive,
		CreatedAt:            rec.CreatedAt,
	}, nil
}

type CommandReads struct{ store *Store }

func (r *CommandReads) NotificationToken(_ context.Context, userID uuid.UUID) (string, error) {
	v, version := r.store.read(idKey(collUsers, userID))
	if version == 0 || !v.(userRecord).IsActive {
		return "", notFound("user not found")
	}
	return v.(userRecord).NotificationToken, nil
}

func (r *CommandReads) ActiveProjectManagers(_ context.Context, projectID uuid.UUID) ([]shared.ManagerSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var assignments []project.ManagerAssignment
	for _, d := range r.store.docs[collProjectManagers] {
		a := d.value.(project.ManagerAssignment)
		if a.ProjectID == projectID {
			assignments = append(assignments, a)
		}
	}
	sort.Slice(assignments, func(i, j int) bool {
		if !assignments[i].AssignedAt.Equal(assignments[j].AssignedAt) {
			return assignments[i].AssignedAt.Before(assignments[j].AssignedAt)
		}
		return assignments[i].ManagerID.String() < assignments[j].ManagerID.String()
	})

	out := make([]shared.ManagerSnapshot, 0, len(assignments))
	for _, a := range assignments {
		d, ok := r.store.docs[collUsers][a.ManagerID.String()]
		if !ok {
			continue
		}
		rec := d.value.(userRecord)
		if !rec.IsActive || rec.Role != user.RoleManager {
			continue
		}
		out = append(out, shared.ManagerSnapshot{
			ID:                rec.ID,
			Email:             rec.Email,
			DisplayName:       rec.DisplayName,
			NotificationToken: rec.NotificationToken,
		})
	}
	return out, nil
}
