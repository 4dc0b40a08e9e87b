package valueobjects

import "fmt"

// LifecycleState is the administrative active/inactive flag on a permit.
// It is a soft-delete toggle, independent of the functional PermitStatus.
type LifecycleState string

const (
	LifecycleActive   LifecycleState = "active"
	LifecycleInactive LifecycleState = "inactive"
)

func (ls LifecycleState) String() string {
	return string(ls)
}

func (ls LifecycleState) IsValid() bool {
	return ls == LifecycleActive || ls == LifecycleInactive
}

func (ls LifecycleState) IsActive() bool {
	return ls == LifecycleActive
}

// Toggled returns the opposite state.
func (ls LifecycleState) Toggled() LifecycleState {
	if ls == LifecycleActive {
		return LifecycleInactive
	}
	return LifecycleActive
}

func NewLifecycleState(s string) (LifecycleState, error) {
	ls := LifecycleState(s)
	if !ls.IsValid() {
		return "", fmt.Errorf("invalid lifecycle state: %s", s)
	}
	return ls, nil
}
