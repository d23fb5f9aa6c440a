package repository

import (
	"context"
	"errors"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品、またはカテゴリの完全一致で絞り込み。ORDER BYは付けない。
func (r *ProductGormRepository) List(ctx context.Context, categoria string) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})
	if categoria != "" {
		tx = tx.Where("categoria = ?", categoria)
	}

	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// フィルタUI用のDISTINCTカテゴリ
func (r *ProductGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categorias []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("categoria").
		Pluck("categoria", &categorias).Error
	if err != nil {
		return []string{}, err
	}
	return categorias, nil
}

func (r *ProductGormRepository) ListByProducer(ctx context.Context, productorID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("id_productor = ?", productorID).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// id + id_productor で1件取得。他人の商品は「存在しない扱い」。
func (r *ProductGormRepository) FindOwned(ctx context.Context, id int64, productorID int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND id_productor = ?", id, productorID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新。WHEREにid_productorも入れる（0行なら対象なし）。
func (r *ProductGormRepository) UpdateOwned(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND id_productor = ?", p.ID, p.IDProductor).
		Updates(map[string]interface{}{
			"nombre":      p.Nombre,
			"descripcion": p.Descripcion,
			"precio":      p.Precio,
			"stock":       p.Stock,
			"imagen_url":  p.ImagenURL,
			"categoria":   p.Categoria,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（所有者スコープ）。0行でもエラーにしない。
func (r *ProductGormRepository) DeleteOwned(ctx context.Context, id int64, productorID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND id_productor = ?", id, productorID).
		Delete(&model.Product{}).Error
}
