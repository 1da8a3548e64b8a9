package readstore

import (
	"log/slog"

	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/pgconv"
)

func readErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, msg, err)
}
