package model

// 注文明細。estado_envio 以外は作成後に変更しない。
type OrderItem struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	IDPedido    int64  `gorm:"not null;index;column:id_pedido" json:"id_pedido"`
	IDProducto  int64  `gorm:"not null;index;column:id_producto" json:"id_producto"`
	Cantidad    int64  `gorm:"not null;column:cantidad" json:"cantidad"`
	EstadoEnvio Status `gorm:"type:varchar(20);not null;default:'pendiente';column:estado_envio" json:"estado_envio"`
}

func (OrderItem) TableName() string { return "detalle_pedido" }
