package usecases

import (
	"context"
	"time"

	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

type TogglePermitCommand struct {
	PermitID uint
	Actor    identity.Actor
}

type TogglePermitResult struct {
	PermitID  uint
	Lifecycle string
	Status    string
	UpdatedAt time.Time
}

type TogglePermitUseCase struct {
	permitRepo permit.Repository
	logger     logger.Interface
}

func NewTogglePermitUseCase(permitRepo permit.Repository, logger logger.Interface) *TogglePermitUseCase {
	return &TogglePermitUseCase{
		permitRepo: permitRepo,
		logger:     logger,
	}
}

func (uc *TogglePermitUseCase) Execute(ctx context.Context, cmd TogglePermitCommand) (*TogglePermitResult, error) {
	if cmd.PermitID == 0 {
		return nil, errors.NewValidationError("permit ID is required")
	}
	if cmd.Actor.IsZero() {
		return nil, errors.NewUnauthorizedError("acting user identity is missing")
	}

	existing, err := uc.permitRepo.FindByID(ctx, cmd.PermitID)
	if err != nil {
		return nil, mapPermitError(err)
	}

	if err := existing.ToggleLifecycle(cmd.Actor); err != nil {
		return nil, mapPermitError(err)
	}

	if err := uc.permitRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to toggle permit lifecycle", "permit_id", cmd.PermitID, "error", err)
		return nil, mapPermitError(err)
	}

	uc.logger.Infow("permit lifecycle toggled",
		"permit_id", cmd.PermitID,
		"lifecycle", existing.Lifecycle().String(),
		"status", existing.Status().String(),
		"actor_id", cmd.Actor.UserID)

	return &TogglePermitResult{
		PermitID:  existing.ID(),
		Lifecycle: existing.Lifecycle().String(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
