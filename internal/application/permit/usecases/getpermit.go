package usecases

import (
	"context"
	"time"

	"portico/internal/application/permit/dto"
	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

type GetPermitQuery struct {
	PermitID uint
	Actor    identity.Actor
}

type GetPermitUseCase struct {
	permitRepo permit.Repository
	logger     logger.Interface
}

func NewGetPermitUseCase(permitRepo permit.Repository, logger logger.Interface) *GetPermitUseCase {
	return &GetPermitUseCase{
		permitRepo: permitRepo,
		logger:     logger,
	}
}

func (uc *GetPermitUseCase) Execute(ctx context.Context, query GetPermitQuery) (*dto.PermitDTO, error) {
	if query.PermitID == 0 {
		return nil, errors.NewValidationError("permit ID is required")
	}
	if query.Actor.IsZero() {
		return nil, errors.NewUnauthorizedError("acting user identity is missing")
	}

	details, err := uc.permitRepo.FindDetailsByID(ctx, query.PermitID)
	if err != nil {
		return nil, mapPermitError(err)
	}

	// Expiry is detected lazily; a pending permit read past its window is
	// transitioned and persisted here rather than by a background job.
	if details.Permit.RefreshExpiry(query.Actor, time.Now().UTC()) {
		if err := uc.permitRepo.Update(ctx, details.Permit); err != nil {
			uc.logger.Errorw("failed to persist lazy expiry", "permit_id", query.PermitID, "error", err)
			return nil, mapPermitError(err)
		}
		uc.logger.Infow("permit expired lazily", "permit_id", query.PermitID)
	}

	return dto.ToPermitDTO(details), nil
}
