//go:build unit

package uow

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"estate-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped in repository error", err: infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed", &pgconn.PgError{Code: "40001"}), want: true},
		{name: "wrapped with fmt", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
