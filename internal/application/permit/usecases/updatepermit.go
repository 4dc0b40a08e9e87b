package usecases

import (
	"context"
	"time"

	"portico/internal/application/permit/dto"
	"portico/internal/domain/order"
	"portico/internal/domain/permit"
	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

// UpdatePermitCommand carries partial-update fields; nil pointers leave the
// corresponding permit field untouched.
type UpdatePermitCommand struct {
	PermitID       uint
	Description    *string
	PermissionType *string
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	EntryTime      *time.Time
	DepartureTime  *time.Time
	OrderID        *uint
	Actor          identity.Actor
}

type UpdatePermitUseCase struct {
	permitRepo permit.Repository
	orderRepo  order.Repository
	logger     logger.Interface
}

func NewUpdatePermitUseCase(
	permitRepo permit.Repository,
	orderRepo order.Repository,
	logger logger.Interface,
) *UpdatePermitUseCase {
	return &UpdatePermitUseCase{
		permitRepo: permitRepo,
		orderRepo:  orderRepo,
		logger:     logger,
	}
}

func (uc *UpdatePermitUseCase) Execute(ctx context.Context, cmd UpdatePermitCommand) (*dto.PermitDTO, error) {
	uc.logger.Infow("executing update permit use case", "permit_id", cmd.PermitID, "actor_id", cmd.Actor.UserID)

	if err := uc.validateCommand(ctx, cmd); err != nil {
		uc.logger.Warnw("invalid update permit command", "error", err)
		return nil, err
	}

	existing, err := uc.permitRepo.FindByID(ctx, cmd.PermitID)
	if err != nil {
		return nil, mapPermitError(err)
	}

	changes := permit.PermitChanges{
		Description:   cmd.Description,
		ValidFrom:     cmd.ValidFrom,
		ValidUntil:    cmd.ValidUntil,
		EntryTime:     cmd.EntryTime,
		DepartureTime: cmd.DepartureTime,
		OrderID:       cmd.OrderID,
	}
	if cmd.PermissionType != nil {
		pt := vo.PermissionType(*cmd.PermissionType)
		changes.PermissionType = &pt
	}

	if err := existing.ApplyChanges(changes, cmd.Actor); err != nil {
		return nil, mapPermitError(err)
	}

	if err := uc.permitRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update permit", "permit_id", cmd.PermitID, "error", err)
		return nil, mapPermitError(err)
	}

	details, err := uc.permitRepo.FindDetailsByID(ctx, cmd.PermitID)
	if err != nil {
		return nil, mapPermitError(err)
	}

	uc.logger.Infow("permit updated", "permit_id", cmd.PermitID, "status", existing.Status().String())

	return dto.ToPermitDTO(details), nil
}

func (uc *UpdatePermitUseCase) validateCommand(ctx context.Context, cmd UpdatePermitCommand) error {
	if cmd.PermitID == 0 {
		return errors.NewValidationError("permit ID is required")
	}
	if cmd.Actor.IsZero() {
		return errors.NewUnauthorizedError("acting user identity is missing")
	}

	if cmd.PermissionType != nil {
		if !vo.PermissionType(*cmd.PermissionType).IsValid() {
			return errors.NewValidationError("invalid permission type")
		}
	}

	if cmd.ValidFrom != nil && cmd.ValidUntil != nil && !cmd.ValidUntil.After(*cmd.ValidFrom) {
		return errors.NewValidationError("valid-until must be after valid-from")
	}

	if cmd.OrderID != nil {
		exists, err := uc.orderRepo.Exists(ctx, *cmd.OrderID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("referenced order not found")
		}
	}

	return nil
}
