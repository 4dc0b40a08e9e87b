package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
)

func TestCheckInUseCase_Execute(t *testing.T) {
	guard := mustActor(t, 3, identity.RoleGuard)

	t.Run("registers entry and persists", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		p := buildPermit(t, 1)
		permitRepo.On("FindByID", mock.Anything, uint(1)).Return(p, nil)
		permitRepo.On("Update", mock.Anything, p).Return(nil)

		uc := NewCheckInUseCase(permitRepo, nopLogger{})

		result, err := uc.Execute(context.Background(), CheckInCommand{PermitID: 1, Guard: guard})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.PermitID)
		assert.Equal(t, "completed", result.Status)
		assert.NotNil(t, result.EntryTime)
		assert.Nil(t, result.DepartureTime)
		assert.Equal(t, 2, result.Version)
		permitRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate entry without persisting", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		entered := time.Now().UTC().Add(-10 * time.Minute)
		p := buildPermit(t, 1, withStatus("completed"), withEntry(entered))
		permitRepo.On("FindByID", mock.Anything, uint(1)).Return(p, nil)

		uc := NewCheckInUseCase(permitRepo, nopLogger{})

		_, err := uc.Execute(context.Background(), CheckInCommand{PermitID: 1, Guard: guard})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		permitRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("maps missing permit to not found", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		permitRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, permit.ErrPermitNotFound)

		uc := NewCheckInUseCase(permitRepo, nopLogger{})

		_, err := uc.Execute(context.Background(), CheckInCommand{PermitID: 404, Guard: guard})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("surfaces version conflict as conflict", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		p := buildPermit(t, 1)
		permitRepo.On("FindByID", mock.Anything, uint(1)).Return(p, nil)
		permitRepo.On("Update", mock.Anything, p).Return(permit.ErrVersionConflict)

		uc := NewCheckInUseCase(permitRepo, nopLogger{})

		_, err := uc.Execute(context.Background(), CheckInCommand{PermitID: 1, Guard: guard})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("requires guard identity", func(t *testing.T) {
		uc := NewCheckInUseCase(new(mockPermitRepository), nopLogger{})

		_, err := uc.Execute(context.Background(), CheckInCommand{PermitID: 1})

		assert.Error(t, err)
	})
}
