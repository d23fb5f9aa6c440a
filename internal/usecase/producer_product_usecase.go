package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/session"

	"github.com/shopspring/decimal"
)

// ProducerProductUsecase は生産者自身の商品CRUD。
// どの操作も認証済みの生産者Identityを明示的に受け取る。
type ProducerProductUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
}

// DI
func NewProducerProductUsecase(products repo.ProductRepository, tx repo.TransactionManager) *ProducerProductUsecase {
	return &ProducerProductUsecase{products: products, tx: tx}
}

type ProductInput struct {
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       int64
	ImagenURL   string
	Categoria   string
}

func (in ProductInput) validate() error {
	if in.Precio.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "El precio no puede ser negativo")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "El stock no puede ser negativo")
	}
	return nil
}

// ListOwn は自分の商品だけを返す。
func (u *ProducerProductUsecase) ListOwn(ctx context.Context, producer session.Identity) ([]model.Product, error) {
	productos, err := u.products.ListByProducer(ctx, producer.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error al obtener productos.")
	}
	return productos, nil
}

func (u *ProducerProductUsecase) Create(ctx context.Context, producer session.Identity, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       in.Stock,
		ImagenURL:   in.ImagenURL,
		Categoria:   in.Categoria,
		IDProductor: producer.ID,
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Error al guardar el producto.")
	}
	return created, nil
}

// GetOwnForEdit は編集画面用。他人の商品は「存在しない扱い」。
func (u *ProducerProductUsecase) GetOwnForEdit(ctx context.Context, producer session.Identity, id int64) (model.Product, error) {
	p, err := u.products.FindOwned(ctx, id, producer.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado.")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "Error interno")
	}
	return p, nil
}

// Update は可変フィールドを全て上書きする。WHEREで所有者に絞るので
// 他人の商品は0行更新（not found扱い）。
func (u *ProducerProductUsecase) Update(ctx context.Context, producer session.Identity, id int64, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	p := model.Product{
		ID:          id,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       in.Stock,
		ImagenURL:   in.ImagenURL,
		Categoria:   in.Categoria,
		IDProductor: producer.ID,
	}

	err := u.products.UpdateOwned(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Producto no encontrado.")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error al actualizar.")
	}
	return nil
}

// Delete はまず商品を参照する注文明細を消し、次に商品を所有者スコープで消す。
// 履歴の明細が消えるのは旧実装からの仕様（DESIGN.md参照）。
func (u *ProducerProductUsecase) Delete(ctx context.Context, producer session.Identity, id int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.OrderItems().DeleteByProduct(ctx, id); err != nil {
			return err
		}
		return r.Products().DeleteOwned(ctx, id, producer.ID)
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error al eliminar.")
	}
	return nil
}
