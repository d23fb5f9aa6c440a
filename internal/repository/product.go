package repository

import (
	"context"
	"errors"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// categoria=="" なら全件。"ORDER BY なし"（取得順は保証しない）。
	List(ctx context.Context, categoria string) ([]model.Product, error)

	// フィルタUI用のカテゴリ一覧（DISTINCT）
	ListCategories(ctx context.Context) ([]string, error)

	ListByProducer(ctx context.Context, productorID int64) ([]model.Product, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)

	// 所有者スコープ付き取得。所有していなければErrNotFound。
	FindOwned(ctx context.Context, id int64, productorID int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)

	// WHERE id AND id_productor。0行更新はErrNotFound。
	UpdateOwned(ctx context.Context, p model.Product) error

	// 所有者スコープ付き削除。0行でもエラーにしない（旧実装踏襲）。
	DeleteOwned(ctx context.Context, id int64, productorID int64) error
}

type InventoryRepository interface {
	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
