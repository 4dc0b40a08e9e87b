package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"portico/internal/domain/permit"
	"portico/internal/infrastructure/persistence/mappers"
	"portico/internal/infrastructure/persistence/models"
	"portico/internal/shared/db"
)

// allowedPermitOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedPermitOrderByFields = map[string]bool{
	"id":              true,
	"status":          true,
	"permission_type": true,
	"lifecycle":       true,
	"valid_from":      true,
	"valid_until":     true,
	"visit_id":        true,
	"resident_id":     true,
	"order_id":        true,
	"created_at":      true,
	"updated_at":      true,
}

type PermitRepository struct {
	db     *gorm.DB
	mapper mappers.PermitMapper
}

func NewPermitRepository(database *gorm.DB) *PermitRepository {
	return &PermitRepository{
		db:     database,
		mapper: mappers.NewPermitMapper(),
	}
}

func (r *PermitRepository) Save(ctx context.Context, p *permit.Permit) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save permit: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update persists a mutated permit with compare-and-swap semantics: the row
// is only written when its stored version matches the version the entity was
// loaded with. A concurrent writer surfaces as ErrVersionConflict.
func (r *PermitRepository) Update(ctx context.Context, p *permit.Permit) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	expectedVersion := model.Version - 1

	result := tx.
		Model(&models.PermitModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Select("*").
		Omit("id", "qr_token", "created_at", "created_by").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update permit: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.PermitModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify permit existence: %w", err)
		}
		if count == 0 {
			return permit.ErrPermitNotFound
		}
		return permit.ErrVersionConflict
	}

	return nil
}

func (r *PermitRepository) FindByID(ctx context.Context, id uint) (*permit.Permit, error) {
	var model models.PermitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, permit.ErrPermitNotFound
		}
		return nil, fmt.Errorf("failed to find permit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PermitRepository) FindByQRToken(ctx context.Context, token string) (*permit.Permit, error) {
	var model models.PermitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("qr_token = ?", token).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, permit.ErrPermitNotFound
		}
		return nil, fmt.Errorf("failed to find permit by QR token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PermitRepository) FindDetailsByID(ctx context.Context, id uint) (*permit.Details, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.loadDetails(ctx, p)
}

func (r *PermitRepository) FindDetailsByQRToken(ctx context.Context, token string) (*permit.Details, error) {
	p, err := r.FindByQRToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return r.loadDetails(ctx, p)
}

func (r *PermitRepository) List(ctx context.Context, filter permit.Filter) ([]*permit.Details, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PermitModel{})

	query = applyPermitFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count permits: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedPermitOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, direction))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var permitModels []models.PermitModel
	if err := query.Find(&permitModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list permits: %w", err)
	}

	details := make([]*permit.Details, 0, len(permitModels))
	for i := range permitModels {
		p, err := r.mapper.ToDomain(&permitModels[i])
		if err != nil {
			return nil, 0, err
		}
		d, err := r.loadDetails(ctx, p)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, d)
	}

	return details, total, nil
}

// loadDetails joins the reference rows a permit view requires. The domain
// contract demands fully populated details; a dangling reference is a data
// integrity error, not an optional include.
func (r *PermitRepository) loadDetails(ctx context.Context, p *permit.Permit) (*permit.Details, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var visitModel models.VisitModel
	if err := tx.First(&visitModel, p.VisitID()).Error; err != nil {
		return nil, fmt.Errorf("failed to load visit %d for permit %d: %w", p.VisitID(), p.ID(), err)
	}

	var residentModel models.ResidentModel
	if err := tx.First(&residentModel, p.ResidentID()).Error; err != nil {
		return nil, fmt.Errorf("failed to load resident %d for permit %d: %w", p.ResidentID(), p.ID(), err)
	}

	supplierName := ""
	if p.OrderID() != nil {
		var orderModel models.OrderModel
		if err := tx.First(&orderModel, *p.OrderID()).Error; err != nil {
			return nil, fmt.Errorf("failed to load order %d for permit %d: %w", *p.OrderID(), p.ID(), err)
		}
		supplierName = orderModel.SupplierName
	}

	visitorName := visitModel.FirstName
	if visitModel.LastName != "" {
		visitorName = visitModel.FirstName + " " + visitModel.LastName
	}
	residentName := residentModel.FirstName
	if residentModel.LastName != "" {
		residentName = residentModel.FirstName + " " + residentModel.LastName
	}

	return permit.NewDetails(p, visitorName, visitModel.NationalID, residentName, supplierName)
}

func applyPermitFilter(query *gorm.DB, filter permit.Filter) *gorm.DB {
	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.VisitID != nil {
		query = query.Where("visit_id = ?", *filter.VisitID)
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.Type != nil {
		query = query.Where("permission_type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Lifecycle != nil {
		query = query.Where("lifecycle = ?", filter.Lifecycle.String())
	}
	if filter.From != nil {
		query = query.Where("valid_from >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("valid_from <= ?", filter.To.UnixMilli())
	}
	return query
}
