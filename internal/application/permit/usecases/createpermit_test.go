package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
)

func newCreateUseCase(permitRepo *mockPermitRepository, visitRepo *mockVisitRepository, residentRepo *mockResidentRepository, orderRepo *mockOrderRepository) *CreatePermitUseCase {
	return NewCreatePermitUseCase(permitRepo, visitRepo, residentRepo, orderRepo, 24*time.Hour, 24, nopLogger{})
}

func TestCreatePermitUseCase_Execute_Success(t *testing.T) {
	permitRepo := new(mockPermitRepository)
	visitRepo := new(mockVisitRepository)
	residentRepo := new(mockResidentRepository)
	orderRepo := new(mockOrderRepository)

	visitRepo.On("Exists", mock.Anything, uint(10)).Return(true, nil)
	residentRepo.On("Exists", mock.Anything, uint(7)).Return(true, nil)

	var savedToken string
	permitRepo.On("Save", mock.Anything, mock.AnythingOfType("*permit.Permit")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*permit.Permit)
			savedToken = p.QRToken()
			require.NoError(t, p.SetID(1))
		}).
		Return(nil)
	permitRepo.On("FindDetailsByID", mock.Anything, uint(1)).
		Return(buildDetails(t, buildPermit(t, 1)), nil)

	uc := newCreateUseCase(permitRepo, visitRepo, residentRepo, orderRepo)

	result, err := uc.Execute(context.Background(), CreatePermitCommand{
		PermissionType: "visit",
		Description:    "family visit",
		VisitID:        10,
		ResidentID:     7,
		Actor:          mustActor(t, 7, identity.RoleResident),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, strings.HasPrefix(savedToken, "qr_"))
	permitRepo.AssertExpectations(t)
	visitRepo.AssertExpectations(t)
	residentRepo.AssertExpectations(t)
}

func TestCreatePermitUseCase_Execute_ValidationErrors(t *testing.T) {
	actor := mustActor(t, 7, identity.RoleResident)

	tests := []struct {
		name string
		cmd  CreatePermitCommand
	}{
		{
			name: "missing actor",
			cmd:  CreatePermitCommand{PermissionType: "visit", VisitID: 10, ResidentID: 7},
		},
		{
			name: "unknown permission type",
			cmd:  CreatePermitCommand{PermissionType: "delivery", VisitID: 10, ResidentID: 7, Actor: actor},
		},
		{
			name: "missing visit",
			cmd:  CreatePermitCommand{PermissionType: "visit", ResidentID: 7, Actor: actor},
		},
		{
			name: "missing resident",
			cmd:  CreatePermitCommand{PermissionType: "visit", VisitID: 10, Actor: actor},
		},
		{
			name: "inverted validity window",
			cmd: CreatePermitCommand{
				PermissionType: "visit",
				VisitID:        10,
				ResidentID:     7,
				ValidFrom:      time.Now().UTC().Add(time.Hour),
				ValidUntil:     time.Now().UTC(),
				Actor:          actor,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newCreateUseCase(new(mockPermitRepository), new(mockVisitRepository), new(mockResidentRepository), new(mockOrderRepository))

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestCreatePermitUseCase_Execute_MissingReferences(t *testing.T) {
	actor := mustActor(t, 7, identity.RoleResident)

	t.Run("unknown visit", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		visitRepo := new(mockVisitRepository)
		visitRepo.On("Exists", mock.Anything, uint(99)).Return(false, nil)

		uc := newCreateUseCase(permitRepo, visitRepo, new(mockResidentRepository), new(mockOrderRepository))

		_, err := uc.Execute(context.Background(), CreatePermitCommand{
			PermissionType: "visit", VisitID: 99, ResidentID: 7, Actor: actor,
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		permitRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		permitRepo := new(mockPermitRepository)
		visitRepo := new(mockVisitRepository)
		residentRepo := new(mockResidentRepository)
		orderRepo := new(mockOrderRepository)
		visitRepo.On("Exists", mock.Anything, uint(10)).Return(true, nil)
		residentRepo.On("Exists", mock.Anything, uint(7)).Return(true, nil)
		orderRepo.On("Exists", mock.Anything, uint(5)).Return(false, nil)

		orderID := uint(5)
		uc := newCreateUseCase(permitRepo, visitRepo, residentRepo, orderRepo)

		_, err := uc.Execute(context.Background(), CreatePermitCommand{
			PermissionType: "maintenance", VisitID: 10, ResidentID: 7, OrderID: &orderID, Actor: actor,
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCreatePermitUseCase_Execute_RetriesOnTokenCollision(t *testing.T) {
	permitRepo := new(mockPermitRepository)
	visitRepo := new(mockVisitRepository)
	residentRepo := new(mockResidentRepository)

	visitRepo.On("Exists", mock.Anything, uint(10)).Return(true, nil)
	residentRepo.On("Exists", mock.Anything, uint(7)).Return(true, nil)

	duplicate := stderrors.New("Error 1062: Duplicate entry 'qr_x' for key 'idx_entry_permissions_qr_token'")
	permitRepo.On("Save", mock.Anything, mock.AnythingOfType("*permit.Permit")).
		Return(duplicate).Once()
	permitRepo.On("Save", mock.Anything, mock.AnythingOfType("*permit.Permit")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*permit.Permit).SetID(2))
		}).
		Return(nil).Once()
	permitRepo.On("FindDetailsByID", mock.Anything, uint(2)).
		Return(buildDetails(t, buildPermit(t, 2)), nil)

	uc := newCreateUseCase(permitRepo, visitRepo, residentRepo, new(mockOrderRepository))

	result, err := uc.Execute(context.Background(), CreatePermitCommand{
		PermissionType: "visit", VisitID: 10, ResidentID: 7,
		Actor: mustActor(t, 7, identity.RoleResident),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	permitRepo.AssertNumberOfCalls(t, "Save", 2)
}
