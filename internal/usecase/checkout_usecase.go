package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/session"
)

// CheckoutUsecase はカート確定。ここだけ複数ステップの整合性が要る。
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

// Confirm はカートを1つの注文にする。
// 流れ：商品ごとに数量を集約 → 在庫を読み直して不足なら商品名付きで失敗
// → pedidos作成 → 明細作成＋条件付き在庫減算。全体を1トランザクションで
// 行うので、途中失敗はすべて巻き戻る（DESIGN.md参照）。
func (u *CheckoutUsecase) Confirm(ctx context.Context, client session.Identity, entries []session.CartEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "El carrito está vacío.")
	}

	// 同一商品の行をまとめる（初出順を保つ）
	aggregated := aggregateEntries(entries)

	var pedidoID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 在庫の事前チェック（エラー文言に商品名を入れるため）
		for _, e := range aggregated {
			p, err := r.Products().FindByID(ctx, e.IDProducto)
			if errors.Is(err, repo.ErrNotFound) {
				return &InsufficientStockError{Producto: "desconocido"}
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Error en la compra")
			}
			if p.Stock < e.Cantidad {
				return &InsufficientStockError{Producto: p.Nombre}
			}
		}

		// 注文作成（estadoはデフォルトのpendiente）
		id, err := r.Orders().Create(ctx, model.Order{
			IDCliente: client.ID,
			Estado:    model.StatusPendiente,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Error en la compra")
		}
		pedidoID = id

		// 明細作成
		items := make([]model.OrderItem, 0, len(aggregated))
		for _, e := range aggregated {
			items = append(items, model.OrderItem{
				IDProducto:  e.IDProducto,
				Cantidad:    e.Cantidad,
				EstadoEnvio: model.StatusPendiente,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, pedidoID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Error en la compra")
		}

		// 条件付き減算。事前チェック後に他の注文が先に減らした場合もここで止まる。
		for _, e := range aggregated {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, e.IDProducto, e.Cantidad)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Error en la compra")
			}
			if !ok {
				p, ferr := r.Products().FindByID(ctx, e.IDProducto)
				nombre := "desconocido"
				if ferr == nil {
					nombre = p.Nombre
				}
				return &InsufficientStockError{Producto: nombre}
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return pedidoID, nil
}

func aggregateEntries(entries []session.CartEntry) []session.CartEntry {
	out := make([]session.CartEntry, 0, len(entries))
	index := make(map[int64]int, len(entries))

	for _, e := range entries {
		if i, ok := index[e.IDProducto]; ok {
			out[i].Cantidad += e.Cantidad
			continue
		}
		index[e.IDProducto] = len(out)
		out = append(out, e)
	}
	return out
}
