package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"estate-booking/internal/infra/readstore"
	"estate-booking/internal/infra/repository"
	sqlc "estate-booking/internal/infra/sqlc/generated"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/pkg/metrics"
	"estate-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *PostgresUoW {
	maxRetries := cfg.Store.MaxTxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		base:       50 * time.Millisecond,
	}
}

// Within runs fn in a SERIALIZABLE transaction. Rows read through GetForUpdate
// stay locked until commit.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		metrics.RecordTxRetry("postgres")
		waitTime := calculateBackoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	projectRepo  shared.ProjectRepository
	plotRepo     shared.PlotRepository
	bookingRepo  shared.BookingRepository
	userRepo     shared.UserRepository
	taskRepo     shared.TaskRepository
	activityRepo shared.ActivityRepository
}

func (t *pgTx) Projects() shared.ProjectRepository {
	if t.projectRepo == nil {
		t.projectRepo = repository.NewProjectRepository(t.q, t.dbtx)
	}
	return t.projectRepo
}

func (t *pgTx) Plots() shared.PlotRepository {
	if t.plotRepo == nil {
		t.plotRepo = repository.NewPlotRepository(t.q, t.dbtx)
	}
	return t.plotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Tasks() shared.TaskRepository {
	if t.taskRepo == nil {
		t.taskRepo = repository.NewTaskRepository(t.q, t.dbtx)
	}
	return t.taskRepo
}

func (t *pgTx) Activity() shared.ActivityRepository {
	if t.activityRepo == nil {
		t.activityRepo = repository.NewActivityRepository(t.q, t.dbtx)
	}
	return t.activityRepo
}
