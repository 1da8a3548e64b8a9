package repository

import (
	"context"
	"log/slog"

	"estate-booking/internal/domain/project"
	"estate-booking/internal/infra"
	"estate-booking/internal/infra/repository/converter"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProjectWriteQueries interface {
	CreateProject(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProjectParams) error
	GetProjectForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Projects, error)
	UpdateProjectCounters(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProjectCountersParams) (int64, error)
	AssignProjectManager(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignProjectManagerParams) (int64, error)
}

type ProjectRepository struct {
	queries ProjectWriteQueries
	db      sqlc.DBTX
}

func NewProjectRepository(queries ProjectWriteQueries, db sqlc.DBTX) *ProjectRepository {
	return &ProjectRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if err := r.queries.CreateProject(ctx, r.db, converter.ProjectToCreateParams(p)); err != nil {
		return repoErr("failed to create project", err)
	}
	return nil
}

func (r *ProjectRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	row, err := r.queries.GetProjectForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, repoErr("failed to lock project", err)
	}
	return converter.ProjectFromRow(row), nil
}

func (r *ProjectRepository) SaveCounters(ctx context.Context, p *project.Project) error {
	rows, err := r.queries.UpdateProjectCounters(ctx, r.db, converter.ProjectToCounterParams(p))
	return affected(rows, err, "failed to update project counters")
}

func (r *ProjectRepository) AssignManager(ctx context.Context, a project.ManagerAssignment) error {
	rows, err := r.queries.AssignProjectManager(ctx, r.db, sqlc.AssignProjectManagerParams{
		ProjectID:  a.ProjectID,
		ManagerID:  a.ManagerID,
		AssignedAt: pgconv.TimeToPgtype(a.AssignedAt),
	})
	if err != nil {
		return repoErr("failed to assign project manager", err)
	}
	// ON CONFLICT DO NOTHING
	if rows == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "manager already assigned", nil)
	}
	return nil
}
