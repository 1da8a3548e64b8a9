package commands

import (
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/domain/project"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra"
	"estate-booking/internal/pkg/errs"
)

var (
	ErrMissingPlotID    = errs.Coded(errs.CodeInvalidArgument, "plotId is required")
	ErrMissingProjectID = errs.Coded(errs.CodeInvalidArgument, "projectId is required")
	ErrInvalidInput     = errs.Coded(errs.CodeInvalidArgument, "invalid input")

	ErrPlotNotFound    = errs.Coded(errs.CodeNotFound, "plot not found")
	ErrProjectNotFound = errs.Coded(errs.CodeNotFound, "project not found")
	ErrUserNotFound    = errs.Coded(errs.CodeNotFound, "user not found")
	ErrBookingNotFound = errs.Coded(errs.CodeNotFound, "booking not found")

	ErrPlotNotAvailable = errs.Coded(errs.CodeFailedPrecondition, "plot is not available")
	ErrProjectClosed    = errs.Coded(errs.CodeFailedPrecondition, "project does not accept new plots")
	ErrNotAManager      = errs.Coded(errs.CodeFailedPrecondition, "user is not an active manager")
	ErrCounterDrift     = errs.Coded(errs.CodeFailedPrecondition, "project counters are inconsistent")

	ErrPlotNumberTaken = errs.Coded(errs.CodeAlreadyExists, "plot number already exists in project")
	ErrAlreadyAssigned = errs.Coded(errs.CodeAlreadyExists, "manager already assigned to project")

	ErrPermissionDenied = errs.Coded(errs.CodePermissionDenied, "insufficient role")
)

// notFoundAs turns a repository NOT_FOUND into the given coded error.
func notFoundAs(err error, coded *errs.Error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return coded.WithCause(err)
	}
	return err
}

// invalid turns domain validation failures into INVALID_ARGUMENT.
func invalid(err error) error {
	if isValidationErr(err) {
		return ErrInvalidInput.WithCause(err)
	}
	return err
}

func notAvailable(status plot.Status) error {
	return ErrPlotNotAvailable.
		WithDetail("status", status.String()).
		WithCause(&plot.NotAvailableError{Status: status})
}

func isValidationErr(err error) bool {
	for _, ref := range []error{
		plot.ErrInvalidStatus, plot.ErrEmptyPlotNumber, plot.ErrPlotNumberTooLong,
		plot.ErrNegativePrice, plot.ErrNonPositiveSize, plot.ErrBookedByWorkflow,
		plot.ErrMissingProjectID, project.ErrEmptyName, project.ErrNameTooLong,
		project.ErrLocationTooLong, booking.ErrDetailTooLong, user.ErrInvalidToken,
		user.ErrInvalidEmail, user.ErrInvalidRole,
	} {
		if errs.Is(err, ref) {
			return true
		}
	}
	return false
}

func counterErr(err error) error {
	if errs.Is(err, project.ErrCounterUnderflow) || errs.Is(err, project.ErrCounterInvariant) {
		return ErrCounterDrift.WithCause(err)
	}
	return err
}
