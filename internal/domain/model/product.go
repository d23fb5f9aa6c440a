package model

import "github.com/shopspring/decimal"

// 商品。所有者（id_productor）は作成後に変更しない。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Nombre      string          `gorm:"type:varchar(255);not null;column:nombre" json:"nombre"`
	Descripcion string          `gorm:"type:text;column:descripcion" json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0;column:precio" json:"precio"`
	Stock       int64           `gorm:"not null;default:0;column:stock" json:"stock"`
	ImagenURL   string          `gorm:"type:varchar(512);column:imagen_url" json:"imagen_url"`
	Categoria   string          `gorm:"type:varchar(100);column:categoria" json:"categoria"`
	IDProductor int64           `gorm:"not null;index;column:id_productor" json:"id_productor"`
}

func (Product) TableName() string { return "productos" }
