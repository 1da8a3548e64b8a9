//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts an active user. An empty token leaves the push token unset.
func CreateTestUser(t *testing.T, db DBLike, email, role, token string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	var tok *string
	if token != "" {
		tok = &token
	}
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO users (id, email, display_name, role, notification_token, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		userID, email, strings.SplitN(email, "@", 2)[0], role, tok)
	require.NoError(t, err)
	return userID
}

func CreateTestProject(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	projectID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO projects (id, name, location) VALUES ($1, $2, 'Test Location')", projectID, name)
	require.NoError(t, err)
	return projectID
}

func AssignTestManager(t *testing.T, db DBLike, projectID, managerID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO project_managers (project_id, manager_id) VALUES ($1, $2)", projectID, managerID)
	require.NoError(t, err)
}

// CountRows counts rows of table matching where (a SQL predicate using $1).
func CountRows(t *testing.T, db DBLike, table, where string, arg any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, arg).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return errs.New("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
