package valueobjects

import "fmt"

// PermitStatus is the functional workflow state of an entry permission.
// It is orthogonal to the administrative lifecycle state.
type PermitStatus string

const (
	StatusPending   PermitStatus = "pending"
	StatusCompleted PermitStatus = "completed"
	StatusExpired   PermitStatus = "expired"
	StatusCancelled PermitStatus = "cancelled"
)

var validPermitStatuses = map[PermitStatus]bool{
	StatusPending:   true,
	StatusCompleted: true,
	StatusExpired:   true,
	StatusCancelled: true,
}

// permitStatusTransitions encodes the workflow. Completed and expired are
// terminal except for the administrative cancel/restore toggle, which may
// move any state to cancelled and cancelled back to pending.
var permitStatusTransitions = map[PermitStatus][]PermitStatus{
	StatusPending: {
		StatusCompleted,
		StatusExpired,
		StatusCancelled,
	},
	StatusCompleted: {
		StatusCancelled,
	},
	StatusExpired: {
		StatusCancelled,
	},
	StatusCancelled: {
		StatusPending,
	},
}

func (ps PermitStatus) String() string {
	return string(ps)
}

func (ps PermitStatus) IsValid() bool {
	return validPermitStatuses[ps]
}

func (ps PermitStatus) CanTransitionTo(newStatus PermitStatus) bool {
	allowedTransitions, ok := permitStatusTransitions[ps]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ps PermitStatus) IsPending() bool {
	return ps == StatusPending
}

func (ps PermitStatus) IsCompleted() bool {
	return ps == StatusCompleted
}

func (ps PermitStatus) IsExpired() bool {
	return ps == StatusExpired
}

func (ps PermitStatus) IsCancelled() bool {
	return ps == StatusCancelled
}

func NewPermitStatus(s string) (PermitStatus, error) {
	ps := PermitStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid permit status: %s", s)
	}
	return ps, nil
}
