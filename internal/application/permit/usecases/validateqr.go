package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"portico/internal/application/permit/dto"
	"portico/internal/domain/permit"
	"portico/internal/shared/errors"
	"portico/internal/shared/logger"
)

type GateCheckQuery struct {
	Code string
}

// GateCheckUseCase produces the advisory verdict for the entry guard. It is
// strictly read-only: repeated calls with the same permit state and clock
// return the same verdict and never mutate the permit.
type GateCheckUseCase struct {
	permitRepo permit.Repository
	now        func() time.Time
	logger     logger.Interface
}

func NewGateCheckUseCase(permitRepo permit.Repository, logger logger.Interface) *GateCheckUseCase {
	return &GateCheckUseCase{
		permitRepo: permitRepo,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// WithClock overrides the time source. Intended for tests.
func (uc *GateCheckUseCase) WithClock(now func() time.Time) *GateCheckUseCase {
	uc.now = now
	return uc
}

func (uc *GateCheckUseCase) Execute(ctx context.Context, query GateCheckQuery) (*dto.GateVerdictDTO, error) {
	if query.Code == "" {
		return nil, errors.NewValidationError("QR code is required")
	}

	details, err := uc.permitRepo.FindDetailsByQRToken(ctx, query.Code)
	if err != nil {
		if stderrors.Is(err, permit.ErrPermitNotFound) {
			uc.logger.Warnw("gate check for unknown QR", "code", query.Code)
			return nil, errors.NewNotFoundError("QR not recognized")
		}
		return nil, mapPermitError(err)
	}

	verdict, err := permit.GateCheck(details, uc.now())
	if err != nil {
		uc.logger.Infow("gate check rejected",
			"permit_id", details.Permit.ID(), "reason", err.Error())
		return nil, mapPermitError(err)
	}

	uc.logger.Infow("gate check passed",
		"permit_id", verdict.PermitID, "result", string(verdict.Result))

	return dto.ToGateVerdictDTO(verdict), nil
}
