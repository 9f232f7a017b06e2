package repository

import (
	"context"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/postgres/mappers"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSubOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultSubOrderRepository(db *gorm.DB) *DefaultSubOrderRepository {
	return &DefaultSubOrderRepository{DB: db}
}

// SaveSubOrders persists the sub-orders of one aggregate order with their
// lines and surcharges in a single transaction: either all of them land or
// none do.
func (r *DefaultSubOrderRepository) SaveSubOrders(ctx context.Context, subOrders []*domain.SubOrder) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, subOrder := range subOrders {
			model := mappers.ToGORMSubOrder(subOrder, int32(i))
			if err := tx.Create(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultSubOrderRepository) GetSubOrdersByAggregateOrderID(ctx context.Context, aggregateOrderID string) ([]*domain.SubOrder, error) {
	var subOrderModels []models.SubOrderModel
	err := r.DB.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("ShippingLines").
		Preload("Surcharge").
		Where("aggregate_order_id = ?", aggregateOrderID).
		Order("position").
		Find(&subOrderModels).Error
	if err != nil {
		return nil, err
	}

	subOrders := make([]*domain.SubOrder, len(subOrderModels))
	for i := range subOrderModels {
		subOrders[i] = mappers.ToDomainSubOrder(&subOrderModels[i])
	}
	return subOrders, nil
}
