package usecase

import (
	"context"
	"errors"
	"strconv"

	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/session"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッション内カートの操作。確定までDBには書かない。
type CartUsecase struct {
	products repo.ProductRepository
}

// DI
func NewCartUsecase(products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{products: products}
}

type CartItemView struct {
	ID       int64           `json:"id"`
	Nombre   string          `json:"nombre"`
	Precio   decimal.Decimal `json:"precio"`
	Stock    int64           `json:"stock"`
	Cantidad int64           `json:"cantidad"`
}

type CartView struct {
	Items   []CartItemView  `json:"carrito"`
	Total   decimal.Decimal `json:"total"`
	Mensaje string          `json:"mensaje,omitempty"`
}

// Add はフォーム値を解釈してカートに積む。falseなら入力不正（商品一覧へ戻す）。
// cantidadは未指定・解釈不能・0のとき1として扱う（旧実装の parseInt(...)||1 相当）。
func (u *CartUsecase) Add(sess *session.Session, idStr, cantidadStr string) bool {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return false
	}

	cantidad := int64(1)
	if cantidadStr != "" {
		if n, err := strconv.ParseInt(cantidadStr, 10, 64); err == nil && n != 0 {
			cantidad = n
		}
	}
	if cantidad < 1 {
		return false
	}

	sess.AddCartEntry(id, cantidad)
	sess.SetFlash("Producto agregado al carrito.")
	return true
}

// Remove は該当商品の行をカートから外す。idが不正なら何もしない。
func (u *CartUsecase) Remove(sess *session.Session, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}

	sess.RemoveCartEntry(id)
	sess.SetFlash("Producto eliminado del carrito.")
}

// View は各行の商品スナップショットを引いて合計を出す。
// 削除済み商品の行は黙って落とす。価格なしは0として合算。
func (u *CartUsecase) View(ctx context.Context, sess *session.Session) CartView {
	items := []CartItemView{}
	total := decimal.Zero

	for _, entry := range sess.CartEntries() {
		p, err := u.products.FindByID(ctx, entry.IDProducto)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			// 個別の取得失敗も行ごと落とす（旧実装踏襲）
			continue
		}

		items = append(items, CartItemView{
			ID:       p.ID,
			Nombre:   p.Nombre,
			Precio:   p.Precio,
			Stock:    p.Stock,
			Cantidad: entry.Cantidad,
		})

		total = total.Add(p.Precio.Mul(decimal.NewFromInt(entry.Cantidad)))
	}

	return CartView{
		Items:   items,
		Total:   total,
		Mensaje: sess.TakeFlash(),
	}
}
