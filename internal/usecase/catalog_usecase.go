package usecase

import (
	"context"
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
)

// CatalogUsecase は公開側の商品一覧です。
type CatalogUsecase struct {
	products repo.ProductRepository
}

// DI
func NewCatalogUsecase(products repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products}
}

type CatalogOutput struct {
	Productos             []model.Product `json:"productos"`
	Categorias            []string        `json:"categorias"`
	CategoriaSeleccionada string          `json:"categoriaSeleccionada"`
}

// ListProducts はカテゴリ絞り込み付きの一覧＋フィルタ用カテゴリ一覧。
func (u *CatalogUsecase) ListProducts(ctx context.Context, categoria string) (CatalogOutput, error) {
	productos, err := u.products.List(ctx, categoria)
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "Error al obtener productos")
	}

	categorias, err := u.products.ListCategories(ctx)
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "Error al obtener productos")
	}

	return CatalogOutput{
		Productos:             productos,
		Categorias:            categorias,
		CategoriaSeleccionada: categoria,
	}, nil
}
