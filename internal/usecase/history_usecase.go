package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/session"

	"github.com/shopspring/decimal"
)

// HistoryUsecase は購入履歴（読み取り専用）。
type HistoryUsecase struct {
	orders repo.OrderRepository
}

// DI
func NewHistoryUsecase(orders repo.OrderRepository) *HistoryUsecase {
	return &HistoryUsecase{orders: orders}
}

type HistoryLine struct {
	Nombre   string          `json:"nombre"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad int64           `json:"cantidad"`
}

type HistoryOrder struct {
	ID        int64         `json:"id"`
	Fecha     time.Time     `json:"fecha"`
	Estado    model.Status  `json:"estado"`
	Productos []HistoryLine `json:"productos"`
}

// List はJOIN結果を注文IDでまとめ直す（行順を保つ）。
func (u *HistoryUsecase) List(ctx context.Context, client session.Identity) ([]HistoryOrder, error) {
	rows, err := u.orders.ListHistoryByClient(ctx, client.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error al obtener el historial de compras.")
	}

	orders := []HistoryOrder{}
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.PedidoID]
		if !ok {
			index[row.PedidoID] = len(orders)
			orders = append(orders, HistoryOrder{
				ID:     row.PedidoID,
				Fecha:  row.Fecha,
				Estado: row.Estado,
			})
			i = len(orders) - 1
		}

		orders[i].Productos = append(orders[i].Productos, HistoryLine{
			Nombre:   row.ProductoNombre,
			Precio:   nullToZero(row.Precio),
			Cantidad: row.Cantidad,
		})
	}

	return orders, nil
}

// precioがNULLなら0として扱う
func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
