package usecases

import (
	"context"
	"time"

	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

type CheckInCommand struct {
	PermitID uint
	Guard    identity.Actor
}

type MovementResult struct {
	PermitID      uint
	Status        string
	EntryTime     *time.Time
	DepartureTime *time.Time
	Version       int
}

type CheckInUseCase struct {
	permitRepo permit.Repository
	logger     logger.Interface
}

func NewCheckInUseCase(permitRepo permit.Repository, logger logger.Interface) *CheckInUseCase {
	return &CheckInUseCase{
		permitRepo: permitRepo,
		logger:     logger,
	}
}

func (uc *CheckInUseCase) Execute(ctx context.Context, cmd CheckInCommand) (*MovementResult, error) {
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

	if err := existing.CheckIn(cmd.Guard); err != nil {
		uc.logger.Warnw("check-in rejected",
			"permit_id", cmd.PermitID, "guard_id", cmd.Guard.UserID, "error", err)
		return nil, mapPermitError(err)
	}

	if err := uc.permitRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist check-in", "permit_id", cmd.PermitID, "error", err)
		return nil, mapPermitError(err)
	}

	uc.logger.Infow("visitor checked in",
		"permit_id", cmd.PermitID, "guard_id", cmd.Guard.UserID)

	return &MovementResult{
		PermitID:      existing.ID(),
		Status:        existing.Status().String(),
		EntryTime:     existing.EntryTime(),
		DepartureTime: existing.DepartureTime(),
		Version:       existing.Version(),
	}, nil
}
