package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermitStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    PermitStatus
		to      PermitStatus
		allowed bool
	}{
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to expired", StatusPending, StatusExpired, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"completed to cancelled", StatusCompleted, StatusCancelled, true},
		{"expired to cancelled", StatusExpired, StatusCancelled, true},
		{"cancelled to pending", StatusCancelled, StatusPending, true},
		{"completed to pending", StatusCompleted, StatusPending, false},
		{"completed to expired", StatusCompleted, StatusExpired, false},
		{"expired to pending", StatusExpired, StatusPending, false},
		{"expired to completed", StatusExpired, StatusCompleted, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"cancelled to expired", StatusCancelled, StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewPermitStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "completed", "expired", "cancelled"} {
			status, err := NewPermitStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewPermitStatus("archived")
		assert.Error(t, err)
	})
}

func TestLifecycleState_Toggled(t *testing.T) {
	assert.Equal(t, LifecycleInactive, LifecycleActive.Toggled())
	assert.Equal(t, LifecycleActive, LifecycleInactive.Toggled())
}

func TestNewLifecycleState(t *testing.T) {
	state, err := NewLifecycleState("active")
	assert.NoError(t, err)
	assert.True(t, state.IsActive())

	_, err = NewLifecycleState("deleted")
	assert.Error(t, err)
}

func TestNewPermissionType(t *testing.T) {
	pt, err := NewPermissionType("visit")
	assert.NoError(t, err)
	assert.Equal(t, TypeVisit, pt)

	pt, err = NewPermissionType("maintenance")
	assert.NoError(t, err)
	assert.Equal(t, TypeMaintenance, pt)

	_, err = NewPermissionType("delivery")
	assert.Error(t, err)
}
