package queries

import (
	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/errs"
)

var (
	ErrProjectNotFound  = errs.Coded(errs.CodeNotFound, "project not found")
	ErrBookingNotFound  = errs.Coded(errs.CodeNotFound, "booking not found")
	ErrUserNotFound     = errs.Coded(errs.CodeNotFound, "user not found")
	ErrBookingAccess    = errs.Coded(errs.CodePermissionDenied, "booking belongs to another client")
	ErrPermissionDenied = errs.Coded(errs.CodePermissionDenied, "insufficient role")
	ErrInvalidCursor    = errs.Coded(errs.CodeInvalidArgument, "invalid cursor")
	ErrInvalidFilter    = errs.Coded(errs.CodeInvalidArgument, "invalid filter")
)

func notFoundAs(err error, coded *errs.Error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return coded.WithCause(err)
	}
	return errs.Internal(err)
}
