package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portico/internal/shared/identity"
)

func TestGetPermitUseCase_Execute(t *testing.T) {
	actor := mustActor(t, 7, identity.RoleResident)

	t.Run("returns the joined view", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		d := buildDetails(t, buildPermit(t, 1))
		permitRepo.On("FindDetailsByID", mock.Anything, uint(1)).Return(d, nil)

		uc := NewGetPermitUseCase(permitRepo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetPermitQuery{PermitID: 1, Actor: actor})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, "Jane Visitor", result.VisitorName)
		assert.Equal(t, "John Resident", result.ResidentName)
		permitRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("expires a pending permit past its window and persists", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		now := time.Now().UTC()
		p := buildPermit(t, 1, withWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour)))
		d := buildDetails(t, p)
		permitRepo.On("FindDetailsByID", mock.Anything, uint(1)).Return(d, nil)
		permitRepo.On("Update", mock.Anything, p).Return(nil)

		uc := NewGetPermitUseCase(permitRepo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetPermitQuery{PermitID: 1, Actor: actor})

		require.NoError(t, err)
		assert.Equal(t, "expired", result.Status)
		permitRepo.AssertExpectations(t)
	})

	t.Run("requires permit ID and actor", func(t *testing.T) {
		uc := NewGetPermitUseCase(new(mockPermitRepository), nopLogger{})

		_, err := uc.Execute(context.Background(), GetPermitQuery{Actor: actor})
		assert.Error(t, err)

		_, err = uc.Execute(context.Background(), GetPermitQuery{PermitID: 1})
		assert.Error(t, err)
	})
}
