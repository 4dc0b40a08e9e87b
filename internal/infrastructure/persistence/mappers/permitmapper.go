package mappers

import (
	"time"

	"portico/internal/domain/permit"
	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/infrastructure/persistence/models"
)

// PermitMapper handles the conversion between Permit domain entities and
// persistence models.
type PermitMapper interface {
	// ToModel converts a permit domain entity to a persistence model.
	ToModel(p *permit.Permit) *models.PermitModel

	// ToDomain converts a permit persistence model to a domain entity.
	ToDomain(model *models.PermitModel) (*permit.Permit, error)
}

type PermitMapperImpl struct{}

func NewPermitMapper() PermitMapper {
	return &PermitMapperImpl{}
}

func (m *PermitMapperImpl) ToModel(p *permit.Permit) *models.PermitModel {
	model := &models.PermitModel{
		ID:             p.ID(),
		QRToken:        p.QRToken(),
		PermissionType: p.PermissionType().String(),
		Status:         p.Status().String(),
		Lifecycle:      p.Lifecycle().String(),
		Description:    p.Description(),
		ValidFrom:      p.ValidFrom().UnixMilli(),
		ValidUntil:     p.ValidUntil().UnixMilli(),
		CheckInBy:      p.CheckInBy(),
		CheckOutBy:     p.CheckOutBy(),
		VisitID:        p.VisitID(),
		ResidentID:     p.ResidentID(),
		OrderID:        p.OrderID(),
		Version:        p.Version(),
		CreatedAt:      p.CreatedAt().UnixMilli(),
		CreatedBy:      p.CreatedBy(),
		UpdatedAt:      p.UpdatedAt().UnixMilli(),
		UpdatedBy:      p.UpdatedBy(),
	}

	if p.EntryTime() != nil {
		entry := p.EntryTime().UnixMilli()
		model.EntryTime = &entry
	}

	if p.DepartureTime() != nil {
		departure := p.DepartureTime().UnixMilli()
		model.DepartureTime = &departure
	}

	return model
}

func (m *PermitMapperImpl) ToDomain(model *models.PermitModel) (*permit.Permit, error) {
	permissionType, err := vo.NewPermissionType(model.PermissionType)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewPermitStatus(model.Status)
	if err != nil {
		return nil, err
	}
	lifecycle, err := vo.NewLifecycleState(model.Lifecycle)
	if err != nil {
		return nil, err
	}

	var entryTime, departureTime *time.Time
	if model.EntryTime != nil {
		t := millisToTime(*model.EntryTime)
		entryTime = &t
	}
	if model.DepartureTime != nil {
		t := millisToTime(*model.DepartureTime)
		departureTime = &t
	}

	return permit.ReconstructPermit(
		model.ID,
		model.QRToken,
		permissionType,
		status,
		lifecycle,
		model.Description,
		millisToTime(model.ValidFrom),
		millisToTime(model.ValidUntil),
		entryTime,
		departureTime,
		model.CheckInBy,
		model.CheckOutBy,
		model.VisitID,
		model.ResidentID,
		model.OrderID,
		model.Version,
		millisToTime(model.CreatedAt),
		model.CreatedBy,
		millisToTime(model.UpdatedAt),
		model.UpdatedBy,
	)
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
