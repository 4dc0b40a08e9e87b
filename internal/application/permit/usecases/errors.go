package usecases

import (
	stderrors "errors"

	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
)

// mapPermitError translates domain sentinel errors into application errors
// with the proper HTTP semantics. Unknown errors pass through untouched so
// storage failures keep their original cause.
func mapPermitError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, permit.ErrPermitNotFound):
		return errors.NewNotFoundError("entry permission not found")
	case stderrors.Is(err, permit.ErrQRNotRecognized):
		return errors.NewNotFoundError("QR not recognized")
	case stderrors.Is(err, permit.ErrEntryAlreadyRegistered):
		return errors.NewConflictError("entry already registered")
	case stderrors.Is(err, permit.ErrExitAlreadyRegistered):
		return errors.NewConflictError("exit already registered")
	case stderrors.Is(err, permit.ErrCheckOutBeforeCheckIn):
		return errors.NewConflictError("cannot check out before check-in")
	case stderrors.Is(err, permit.ErrDepartureBeforeEntry):
		return errors.NewValidationError("departure must be after entry")
	case stderrors.Is(err, permit.ErrInvalidValidityWindow):
		return errors.NewValidationError("valid-until must be after valid-from")
	case stderrors.Is(err, permit.ErrPermitDeactivated):
		return errors.NewConflictError("entry permission is deactivated")
	case stderrors.Is(err, permit.ErrQRExpired):
		return errors.NewConflictError("QR expired")
	case stderrors.Is(err, permit.ErrPermitNotYetValid):
		return errors.NewConflictError("entry permission is not yet valid")
	case stderrors.Is(err, permit.ErrPermitConsumed):
		return errors.NewConflictError("visitor already completed entry and exit")
	case stderrors.Is(err, permit.ErrVersionConflict):
		return errors.NewConflictError("entry permission was modified concurrently, retry the operation")
	case stderrors.Is(err, permit.ErrInvalidStatusTransition):
		return errors.NewConflictError(err.Error())
	case stderrors.Is(err, identity.ErrMissingActor):
		return errors.NewUnauthorizedError("acting user identity is missing")
	default:
		return err
	}
}
