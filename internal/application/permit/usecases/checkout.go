package usecases

import (
	"context"

	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

type CheckOutCommand struct {
	PermitID uint
	Guard    identity.Actor
}

type CheckOutUseCase struct {
	permitRepo permit.Repository
	logger     logger.Interface
}

func NewCheckOutUseCase(permitRepo permit.Repository, logger logger.Interface) *CheckOutUseCase {
	return &CheckOutUseCase{
		permitRepo: permitRepo,
		logger:     logger,
	}
}

func (uc *CheckOutUseCase) Execute(ctx context.Context, cmd CheckOutCommand) (*MovementResult, error) {
	if cmd.PermitID == 0 {
		return nil, errors.NewValidationError("permit ID is required")
	}
	if cmd.Guard.IsZero() {
		return nil, errors.NewUnauthorizedError("acting guard identity is missing")
	}

	existing, err := uc.permitRepo.FindByID(ctx, cmd.PermitID)
	if err != nil {
		return nil, mapPermitError(err)
	}

	if err := existing.CheckOut(cmd.Guard); err != nil {
		uc.logger.Warnw("check-out rejected",
			"permit_id", cmd.PermitID, "guard_id", cmd.Guard.UserID, "error", err)
		return nil, mapPermitError(err)
	}

	if err := uc.permitRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist check-out", "permit_id", cmd.PermitID, "error", err)
		return nil, mapPermitError(err)
	}

	uc.logger.Infow("visitor checked out",
		"permit_id", cmd.PermitID, "guard_id", cmd.Guard.UserID)

	return &MovementResult{
		PermitID:      existing.ID(),
		Status:        existing.Status().String(),
		EntryTime:     existing.EntryTime(),
		DepartureTime: existing.DepartureTime(),
		Version:       existing.Version(),
	}, nil
}
