package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"portico/internal/domain/order"
	"portico/internal/domain/resident"
	"portico/internal/domain/visit"
	"portico/internal/infrastructure/persistence/models"
	"portico/internal/shared/db"
	"portico/internal/shared/errors"
)

// The reference repositories are read-only from the permit core's view:
// lookups and existence checks only.

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(database *gorm.DB) *VisitRepository {
	return &VisitRepository{db: database}
}

func (r *VisitRepository) FindByID(ctx context.Context, id uint) (*visit.Visit, error) {
	var model models.VisitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("visit not found")
		}
		return nil, fmt.Errorf("failed to find visit: %w", err)
	}

	return visit.ReconstructVisit(model.ID, model.FirstName, model.LastName, model.NationalID)
}

func (r *VisitRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.VisitModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check visit existence: %w", err)
	}
	return count > 0, nil
}

type ResidentRepository struct {
	db *gorm.DB
}

func NewResidentRepository(database *gorm.DB) *ResidentRepository {
	return &ResidentRepository{db: database}
}

func (r *ResidentRepository) FindByID(ctx context.Context, id uint) (*resident.Resident, error) {
	var model models.ResidentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("resident not found")
		}
		return nil, fmt.Errorf("failed to find resident: %w", err)
	}

	return resident.ReconstructResident(model.ID, model.FirstName, model.LastName, model.Email)
}

func (r *ResidentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ResidentModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check resident existence: %w", err)
	}
	return count > 0, nil
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{db: database}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order.ReconstructOrder(model.ID, model.SupplierName)
}

func (r *OrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return count > 0, nil
}
