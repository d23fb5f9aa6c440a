package repository

import (
	"context"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, estado model.Status) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("estado", estado)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 購入履歴：pedidos→detalle_pedido→productos をJOINして新しい順に返す。
func (r *OrderGormRepository) ListHistoryByClient(ctx context.Context, clienteID int64) ([]repo.HistoryRow, error) {
	var rows []repo.HistoryRow

	err := r.db.WithContext(ctx).
		Table("pedidos AS p").
		Select("p.id AS pedido_id, p.fecha, p.estado, pr.nombre AS producto_nombre, pr.precio, d.cantidad").
		Joins("JOIN detalle_pedido d ON p.id = d.id_pedido").
		Joins("JOIN productos pr ON d.id_producto = pr.id").
		Where("p.id_cliente = ?", clienteID).
		Order("p.fecha DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.HistoryRow{}, err
	}
	return rows, nil
}

// 生産者の受注：自分の商品が含まれる注文の明細に購入者名を付けて返す。
func (r *OrderGormRepository) ListByProducer(ctx context.Context, productorID int64) ([]repo.ProducerOrderRow, error) {
	var rows []repo.ProducerOrderRow

	err := r.db.WithContext(ctx).
		Table("pedidos AS p").
		Select("p.id AS pedido_id, p.fecha, p.estado, d.id_producto, d.cantidad, d.estado_envio, pr.nombre AS producto_nombre, pr.precio, u.nombre AS cliente_nombre").
		Joins("JOIN detalle_pedido d ON p.id = d.id_pedido").
		Joins("JOIN productos pr ON d.id_producto = pr.id").
		Joins("JOIN users u ON p.id_cliente = u.id").
		Where("pr.id_productor = ?", productorID).
		Order("p.fecha DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.ProducerOrderRow{}, err
	}
	return rows, nil
}
