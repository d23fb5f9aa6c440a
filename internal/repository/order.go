package repository

import (
	"context"
	"time"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	"github.com/shopspring/decimal"
)

// 購入履歴のJOIN結果1行分
type HistoryRow struct {
	PedidoID       int64               `gorm:"column:pedido_id"`
	Fecha          time.Time           `gorm:"column:fecha"`
	Estado         model.Status        `gorm:"column:estado"`
	ProductoNombre string              `gorm:"column:producto_nombre"`
	Precio         decimal.NullDecimal `gorm:"column:precio"`
	Cantidad       int64               `gorm:"column:cantidad"`
}

// 生産者の受注一覧のJOIN結果1行分（購入者名も含む）
type ProducerOrderRow struct {
	PedidoID       int64               `gorm:"column:pedido_id"`
	Fecha          time.Time           `gorm:"column:fecha"`
	Estado         model.Status        `gorm:"column:estado"`
	IDProducto     int64               `gorm:"column:id_producto"`
	Cantidad       int64               `gorm:"column:cantidad"`
	EstadoEnvio    model.Status        `gorm:"column:estado_envio"`
	ProductoNombre string              `gorm:"column:producto_nombre"`
	Precio         decimal.NullDecimal `gorm:"column:precio"`
	ClienteNombre  string              `gorm:"column:cliente_nombre"`
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, estado model.Status) error

	// pedidos→detalle→productos、fecha降順
	ListHistoryByClient(ctx context.Context, clienteID int64) ([]HistoryRow, error)

	// 生産者の商品が含まれる注文の明細、fecha降順
	ListByProducer(ctx context.Context, productorID int64) ([]ProducerOrderRow, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, pedidoID int64, items []model.OrderItem) error

	// 商品削除の前処理：その商品を参照する明細を全て消す
	DeleteByProduct(ctx context.Context, productoID int64) error

	// 生産者の所有商品に限って明細の配送状態を更新。0行はErrNotFound。
	UpdateStatusOwned(ctx context.Context, pedidoID, productoID, productorID int64, estado model.Status) error

	// 注文の全明細の配送状態（集約状態の再計算用）
	ListStatusesByOrder(ctx context.Context, pedidoID int64) ([]model.Status, error)
}
