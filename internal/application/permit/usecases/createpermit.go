package usecases

import (
	"context"
	"time"

	"portico/internal/application/permit/dto"
	"portico/internal/domain/order"
	"portico/internal/domain/permit"
	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/domain/resident"
	"portico/internal/domain/visit"
	"portico/internal/shared/errors"
	"portico/internal/shared/id"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

// qrMintAttempts bounds retries when the storage unique index rejects a
// freshly minted token. Collisions are astronomically unlikely with a
// crypto-random 24-char base62 token, so one retry is already generous.
const qrMintAttempts = 3

type CreatePermitCommand struct {
	PermissionType string
	Description    string
	ValidFrom      time.Time
	ValidUntil     time.Time
	VisitID        uint
	ResidentID     uint
	OrderID        *uint
	Actor          identity.Actor
}

type CreatePermitUseCase struct {
	permitRepo      permit.Repository
	visitRepo       visit.Repository
	residentRepo    resident.Repository
	orderRepo       order.Repository
	defaultValidity time.Duration
	qrTokenLength   int
	logger          logger.Interface
}

func NewCreatePermitUseCase(
	permitRepo permit.Repository,
	visitRepo visit.Repository,
	residentRepo resident.Repository,
	orderRepo order.Repository,
	defaultValidity time.Duration,
	qrTokenLength int,
	logger logger.Interface,
) *CreatePermitUseCase {
	if defaultValidity <= 0 {
		defaultValidity = 24 * time.Hour
	}
	return &CreatePermitUseCase{
		permitRepo:      permitRepo,
		visitRepo:       visitRepo,
		residentRepo:    residentRepo,
		orderRepo:       orderRepo,
		defaultValidity: defaultValidity,
		qrTokenLength:   qrTokenLength,
		logger:          logger,
	}
}

func (uc *CreatePermitUseCase) Execute(ctx context.Context, cmd CreatePermitCommand) (*dto.PermitDTO, error) {
	uc.logger.Infow("executing create permit use case",
		"visit_id", cmd.VisitID, "resident_id", cmd.ResidentID, "actor_id", cmd.Actor.UserID)

	if err := uc.validateCommand(ctx, cmd); err != nil {
		uc.logger.Warnw("invalid create permit command", "error", err)
		return nil, err
	}

	permissionType := vo.PermissionType(cmd.PermissionType)

	validFrom := cmd.ValidFrom
	if validFrom.IsZero() {
		validFrom = time.Now().UTC()
	}
	validUntil := cmd.ValidUntil
	if validUntil.IsZero() {
		validUntil = validFrom.Add(uc.defaultValidity)
	}

	var saved *permit.Permit
	for attempt := 0; attempt < qrMintAttempts; attempt++ {
		qrToken, err := id.NewQRToken(uc.qrTokenLength)
		if err != nil {
			return nil, errors.NewInternalError("failed to mint QR token", err.Error())
		}

		newPermit, err := permit.NewPermit(
			qrToken,
			permissionType,
			cmd.Description,
			validFrom,
			validUntil,
			cmd.VisitID,
			cmd.ResidentID,
			cmd.OrderID,
			cmd.Actor,
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		if err := uc.permitRepo.Save(ctx, newPermit); err != nil {
			if errors.IsDuplicateError(err) {
				uc.logger.Warnw("QR token collision, reminting", "attempt", attempt+1)
				continue
			}
			uc.logger.Errorw("failed to save permit", "error", err)
			return nil, err
		}

		saved = newPermit
		break
	}

	if saved == nil {
		return nil, errors.NewInternalError("failed to mint a unique QR token")
	}

	details, err := uc.permitRepo.FindDetailsByID(ctx, saved.ID())
	if err != nil {
		uc.logger.Errorw("failed to load created permit details", "error", err)
		return nil, mapPermitError(err)
	}

	uc.logger.Infow("permit created", "permit_id", saved.ID(), "qr_token", saved.QRToken())

	return dto.ToPermitDTO(details), nil
}

func (uc *CreatePermitUseCase) validateCommand(ctx context.Context, cmd CreatePermitCommand) error {
	if cmd.Actor.IsZero() {
		return errors.NewUnauthorizedError("acting user identity is missing")
	}

	permissionType := vo.PermissionType(cmd.PermissionType)
	if !permissionType.IsValid() {
		return errors.NewValidationError("invalid permission type")
	}

	if cmd.VisitID == 0 {
		return errors.NewValidationError("visit ID is required")
	}
	if cmd.ResidentID == 0 {
		return errors.NewValidationError("resident ID is required")
	}

	if !cmd.ValidFrom.IsZero() && !cmd.ValidUntil.IsZero() && !cmd.ValidUntil.After(cmd.ValidFrom) {
		return errors.NewValidationError("valid-until must be after valid-from")
	}

	exists, err := uc.visitRepo.Exists(ctx, cmd.VisitID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("referenced visit not found")
	}

	exists, err = uc.residentRepo.Exists(ctx, cmd.ResidentID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("referenced resident not found")
	}

	if cmd.OrderID != nil {
		exists, err = uc.orderRepo.Exists(ctx, *cmd.OrderID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("referenced order not found")
		}
	}

	return nil
}
