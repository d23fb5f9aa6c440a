package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/session"

	"github.com/shopspring/decimal"
)

// FulfillmentUsecase は生産者側の受注一覧と配送状態の更新。
type FulfillmentUsecase struct {
	orders repo.OrderRepository
	tx     repo.TransactionManager
}

// DI
func NewFulfillmentUsecase(orders repo.OrderRepository, tx repo.TransactionManager) *FulfillmentUsecase {
	return &FulfillmentUsecase{orders: orders, tx: tx}
}

type ReceivedLine struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Cantidad    int64           `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	EstadoEnvio model.Status    `json:"estado_envio"`
}

type ReceivedOrder struct {
	ID        int64          `json:"id"`
	Fecha     time.Time      `json:"fecha"`
	Estado    model.Status   `json:"estado"`
	Cliente   string         `json:"cliente"`
	Productos []ReceivedLine `json:"productos"`
}

// ListReceived は自分の商品が含まれる注文を、購入者名付きでまとめて返す。
func (u *FulfillmentUsecase) ListReceived(ctx context.Context, producer session.Identity) ([]ReceivedOrder, error) {
	rows, err := u.orders.ListByProducer(ctx, producer.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error al obtener pedidos.")
	}

	orders := []ReceivedOrder{}
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.PedidoID]
		if !ok {
			index[row.PedidoID] = len(orders)
			orders = append(orders, ReceivedOrder{
				ID:      row.PedidoID,
				Fecha:   row.Fecha,
				Estado:  row.Estado,
				Cliente: row.ClienteNombre,
			})
			i = len(orders) - 1
		}

		precio := decimal.Zero
		if row.Precio.Valid {
			precio = row.Precio.Decimal
		}

		orders[i].Productos = append(orders[i].Productos, ReceivedLine{
			ID:          row.IDProducto,
			Nombre:      row.ProductoNombre,
			Cantidad:    row.Cantidad,
			Precio:      precio,
			EstadoEnvio: row.EstadoEnvio,
		})
	}

	return orders, nil
}

// UpdateLineStatus は明細1行の配送状態を更新し、注文全体の状態を
// 全明細からの畳み込みで再計算して保存する。
// 更新は生産者の所有商品にスコープされる（他人の明細は0行＝not found）。
func (u *FulfillmentUsecase) UpdateLineStatus(ctx context.Context, producer session.Identity, pedidoID, productoID int64, estado model.Status) error {
	if !model.ValidStatus(estado) {
		return NewHTTPError(http.StatusBadRequest, "Estado de envío inválido")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.OrderItems().UpdateStatusOwned(ctx, pedidoID, productoID, producer.ID, estado); err != nil {
			return err
		}

		estados, err := r.OrderItems().ListStatusesByOrder(ctx, pedidoID)
		if err != nil {
			return err
		}

		return r.Orders().UpdateStatus(ctx, pedidoID, model.DeriveOrderStatus(estados))
	})

	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Pedido no encontrado.")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error actualizando estado del producto.")
	}
	return nil
}
