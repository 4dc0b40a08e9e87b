package permit

import (
	"errors"
	"fmt"
)

var (
	ErrPermitNotFound          = errors.New("entry permission not found")
	ErrQRNotRecognized         = errors.New("QR code not recognized")
	ErrQRExpired               = errors.New("QR code expired")
	ErrPermitNotYetValid       = errors.New("entry permission is not yet valid")
	ErrPermitDeactivated       = errors.New("entry permission is deactivated")
	ErrPermitConsumed          = errors.New("visitor already completed entry and exit")
	ErrEntryAlreadyRegistered  = errors.New("entry already registered")
	ErrExitAlreadyRegistered   = errors.New("exit already registered")
	ErrCheckOutBeforeCheckIn   = errors.New("cannot check out before check-in")
	ErrDepartureBeforeEntry    = errors.New("departure must be after entry")
	ErrInvalidValidityWindow   = errors.New("valid-until must be after valid-from")
	ErrQRTokenImmutable        = errors.New("QR token cannot be changed after creation")
	ErrInvalidStatusTransition = errors.New("invalid permit status transition")
	ErrVersionConflict         = errors.New("entry permission was modified concurrently")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
