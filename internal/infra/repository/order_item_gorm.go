package repository

import (
	"context"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, pedidoID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].IDPedido = pedidoID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// 商品を参照する明細を全て消す（商品削除の前処理）
func (r *OrderItemGormRepository) DeleteByProduct(ctx context.Context, productoID int64) error {
	return r.db.WithContext(ctx).
		Where("id_producto = ?", productoID).
		Delete(&model.OrderItem{}).Error
}

// 明細の配送状態を更新。対象商品がその生産者のものでなければ0行（ErrNotFound）。
func (r *OrderItemGormRepository) UpdateStatusOwned(ctx context.Context, pedidoID, productoID, productorID int64, estado model.Status) error {
	owned := r.db.Model(&model.Product{}).
		Select("id").
		Where("id_productor = ?", productorID)

	res := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("id_pedido = ? AND id_producto = ? AND id_producto IN (?)", pedidoID, productoID, owned).
		Update("estado_envio", estado)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderItemGormRepository) ListStatusesByOrder(ctx context.Context, pedidoID int64) ([]model.Status, error) {
	var estados []model.Status
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("id_pedido = ?", pedidoID).
		Pluck("estado_envio", &estados).Error
	if err != nil {
		return []model.Status{}, err
	}
	return estados, nil
}
