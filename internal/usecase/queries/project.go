package queries

import (
	"context"

	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProjectReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectView, error)
	ListPlots(ctx context.Context, projectID uuid.UUID, status *string) ([]*PlotView, error)
	ListActivity(ctx context.Context, projectID uuid.UUID, limit int32) ([]*ActivityView, error)
}

type ProjectQueries interface {
	GetProject(ctx context.Context, id uuid.UUID) (*ProjectView, error)
	ListProjectPlots(ctx context.Context, projectID uuid.UUID, status string) ([]*PlotView, error)
	ListProjectActivity(ctx context.Context, projectID uuid.UUID, actorRole user.Role, limit int) ([]*ActivityView, error)
}

type projectQueriesImpl struct {
	store ProjectReadStore
}

func NewProjectQueries(store ProjectReadStore) ProjectQueries {
	return &projectQueriesImpl{store: store}
}

func (q *projectQueriesImpl) GetProject(ctx context.Context, id uuid.UUID) (*ProjectView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrProjectNotFound)
	}
	return v, nil
}

// ListProjectPlots lists plots ordered by plot number. An empty status lists all.
func (q *projectQueriesImpl) ListProjectPlots(ctx context.Context, projectID uuid.UUID, status string) ([]*PlotView, error) {
	var filter *string
	if status != "" {
		st, err := plot.ParseStatus(status)
		if err != nil {
			return nil, ErrInvalidFilter.WithDetail("status", status)
		}
		s := st.String()
		filter = &s
	}
	if _, err := q.store.FindByID(ctx, projectID); err != nil {
		return nil, notFoundAs(err, ErrProjectNotFound)
	}
	plots, err := q.store.ListPlots(ctx, projectID, filter)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return plots, nil
}

func (q *projectQueriesImpl) ListProjectActivity(ctx context.Context, projectID uuid.UUID, actorRole user.Role, limit int) ([]*ActivityView, error) {
	if !actorRole.AtLeast(user.RoleManager) {
		return nil, ErrPermissionDenied
	}
	if _, err := q.store.FindByID(ctx, projectID); err != nil {
		return nil, notFoundAs(err, ErrProjectNotFound)
	}
	// #nosec G115 -- ValidateLimit caps the value at MaxListLimit
	entries, err := q.store.ListActivity(ctx, projectID, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, errs.Internal(err)
	}
	return entries, nil
}
