//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/infra"
	"estate-booking/internal/infra/repository"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/pgconv"
	repositorymock "estate-booking/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProjectRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        sqlc.Projects
		dbErr      error
		want       project.Counters
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: counters mapped",
			row: sqlc.Projects{
				ID: id, Name: "Lakeside", Location: "North", Status: "active",
				TotalPlots: 10, AvailablePlots: 6, SoldPlots: 1, ReservedPlots: 3,
				CreatedAt: pgconv.TimeToPgtype(now), UpdatedAt: pgconv.TimeToPgtype(now),
			},
			want: project.Counters{Total: 10, Available: 6, Sold: 1, Reserved: 3},
		},
		{
			name:       "error: not found",
			dbErr:      pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			dbErr:      errors.New("timeout"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockProjectWriteQueries(ctrl)
			db := mockDBTX{}
			mockQueries.EXPECT().GetProjectForUpdate(ctx, db, id).Return(tc.row, tc.dbErr)

			p, err := repository.NewProjectRepository(mockQueries, db).GetForUpdate(ctx, id)

			if tc.expectKind != "" {
				assert.Nil(t, p)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, p.Counters()); diff != "" {
				t.Errorf("counters mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, "Lakeside", p.Name())
		})
	}
}

func TestProjectRepository_SaveCounters(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockProjectWriteQueries(ctrl)
	db := mockDBTX{}

	now := time.Now().UTC()
	p, err := project.New("Hillview", "East", now)
	require.NoError(t, err)
	require.NoError(t, p.ApplyPlotEvent(project.Created(plot.StatusAvailable), now))
	require.NoError(t, p.ApplyPlotEvent(project.Changed(plot.StatusAvailable, plot.StatusBooked), now))

	mockQueries.EXPECT().UpdateProjectCounters(ctx, db, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateProjectCountersParams) (int64, error) {
			assert.Equal(t, p.ID(), arg.ID)
			assert.Equal(t, int32(1), arg.TotalPlots)
			assert.Equal(t, int32(0), arg.AvailablePlots)
			assert.Equal(t, int32(1), arg.ReservedPlots)
			return 1, nil
		})

	require.NoError(t, repository.NewProjectRepository(mockQueries, db).SaveCounters(ctx, p))
}

func TestProjectRepository_AssignManager(t *testing.T) {
	ctx := context.Background()
	a := project.ManagerAssignment{ProjectID: uuid.New(), ManagerID: uuid.New(), AssignedAt: time.Now().UTC()}

	testCases := []struct {
		name       string
		rows       int64
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "error: already assigned", rows: 0, expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockProjectWriteQueries(ctrl)
			db := mockDBTX{}
			mockQueries.EXPECT().AssignProjectManager(ctx, db, gomock.Any()).Return(tc.rows, nil)

			err := repository.NewProjectRepository(mockQueries, db).AssignManager(ctx, a)

			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
