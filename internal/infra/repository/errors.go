package repository

import (
	"log/slog"

	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/pgconv"
)

func repoErr(msg string, err error) error {
	kind := infra.KindDBFailure
	switch {
	case pgconv.IsNoRows(err):
		kind = infra.KindNotFound
	case pgconv.IsUniqueViolation(err):
		kind = infra.KindDuplicateKey
	case pgconv.IsForeignKeyViolation(err):
		kind = infra.KindForeignKeyViolated
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}

// affected turns a zero row count into a not-found error.
func affected(rows int64, err error, msg string) error {
	if err != nil {
		return repoErr(msg, err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
	}
	return nil
}
