package usecases

import (
	"context"
	"time"

	"portico/internal/application/permit/dto"
	"portico/internal/domain/permit"
	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/shared/errors"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
	"portico/internal/shared/utils"
)

type ListPermitsQuery struct {
	ResidentID     *uint
	VisitID        *uint
	OrderID        *uint
	PermissionType *string
	Status         *string
	Lifecycle      *string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
	Actor          identity.Actor
}

type ListPermitsResult struct {
	Permits    []*dto.PermitDTO
	TotalCount int64
}

type ListPermitsUseCase struct {
	permitRepo permit.Repository
	logger     logger.Interface
}

func NewListPermitsUseCase(permitRepo permit.Repository, logger logger.Interface) *ListPermitsUseCase {
	return &ListPermitsUseCase{
		permitRepo: permitRepo,
		logger:     logger,
	}
}

func (uc *ListPermitsUseCase) Execute(ctx context.Context, query ListPermitsQuery) (*ListPermitsResult, error) {
	if query.Actor.IsZero() {
		return nil, errors.NewUnauthorizedError("acting user identity is missing")
	}

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	// Residents only see their own permits; guards and admins see all.
	if query.Actor.Role == identity.RoleResident {
		filter.ResidentID = &query.Actor.UserID
	}

	details, total, err := uc.permitRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list permits", "error", err)
		return nil, err
	}

	return &ListPermitsResult{
		Permits:    dto.ToPermitDTOsAt(details, time.Now().UTC()),
		TotalCount: total,
	}, nil
}

func (uc *ListPermitsUseCase) buildFilter(query ListPermitsQuery) (*permit.Filter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := &permit.Filter{
		ResidentID: query.ResidentID,
		VisitID:    query.VisitID,
		OrderID:    query.OrderID,
		From:       query.From,
		To:         query.To,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.PermissionType != nil {
		pt, err := vo.NewPermissionType(*query.PermissionType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &pt
	}

	if query.Status != nil {
		ps, err := vo.NewPermitStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &ps
	}

	if query.Lifecycle != nil {
		ls, err := vo.NewLifecycleState(*query.Lifecycle)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Lifecycle = &ls
	}

	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, errors.NewValidationError("date window end must not precede start")
	}

	return filter, nil
}
