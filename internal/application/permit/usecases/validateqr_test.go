package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portico/internal/domain/permit"
	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/shared/errors"
)

func TestGateCheckUseCase_Execute(t *testing.T) {
	now := time.Now().UTC()
	clock := func() time.Time { return now }

	t.Run("valid permit yields may-enter verdict", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		d := buildDetails(t, buildPermit(t, 1))
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_good").Return(d, nil)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		verdict, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_good"})

		require.NoError(t, err)
		assert.Equal(t, "valid_unconsumed", verdict.Result)
		assert.Equal(t, "Jane Visitor", verdict.VisitorName)
		assert.Equal(t, "John Resident", verdict.ResidentName)
	})

	t.Run("unknown token maps to not found", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_missing").Return(nil, permit.ErrPermitNotFound)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		_, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_missing"})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("expired window is a conflict", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		d := buildDetails(t, buildPermit(t, 1, withWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour))))
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_old").Return(d, nil)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		_, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_old"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("early arrival is a conflict", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		d := buildDetails(t, buildPermit(t, 1, withWindow(now.Add(time.Hour), now.Add(25*time.Hour))))
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_early").Return(d, nil)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		_, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_early"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("deactivated permit is a conflict", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		d := buildDetails(t, buildPermit(t, 1, withLifecycle(vo.LifecycleInactive), withStatus(vo.StatusCancelled)))
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_off").Return(d, nil)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		_, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_off"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("visitor inside yields informational verdict", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		entered := now.Add(-time.Hour)
		d := buildDetails(t, buildPermit(t, 1, withStatus(vo.StatusCompleted), withEntry(entered)))
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_inside").Return(d, nil)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		verdict, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_inside"})

		require.NoError(t, err)
		assert.Equal(t, "valid_consumed", verdict.Result)
	})

	t.Run("never mutates and stays deterministic", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		d := buildDetails(t, buildPermit(t, 1))
		permitRepo.On("FindDetailsByQRToken", mock.Anything, "qr_good").Return(d, nil)

		uc := NewGateCheckUseCase(permitRepo, nopLogger{}).WithClock(clock)

		first, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_good"})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), GateCheckQuery{Code: "qr_good"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, d.Permit.Version())
		permitRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty code is a validation error", func(t *testing.T) {
		uc := NewGateCheckUseCase(new(mockPermitRepository), nopLogger{})

		_, err := uc.Execute(context.Background(), GateCheckQuery{})

		assert.True(t, errors.IsValidationError(err))
	})
}
