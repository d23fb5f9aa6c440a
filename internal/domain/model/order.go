package model

import "time"

// 注文全体と明細行で同じ語彙を使う
type Status string

const (
	StatusPendiente Status = "pendiente"
	StatusEnviado   Status = "enviado"
	StatusEntregado Status = "entregado"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPendiente, StatusEnviado, StatusEntregado:
		return true
	}
	return false
}

type Order struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	IDCliente int64     `gorm:"not null;index;column:id_cliente" json:"id_cliente"`
	Fecha     time.Time `gorm:"not null;autoCreateTime;column:fecha" json:"fecha"`
	Estado    Status    `gorm:"type:varchar(20);not null;default:'pendiente';column:estado" json:"estado"`
}

func (Order) TableName() string { return "pedidos" }

// DeriveOrderStatus は明細の配送状態から注文全体の状態を再計算する。
// 状態遷移ではなく毎回の畳み込み：
//   - 全行 entregado → entregado
//   - 全行 pendiente → pendiente
//   - それ以外（混在・enviado あり）→ enviado
func DeriveOrderStatus(lines []Status) Status {
	if len(lines) == 0 {
		return StatusPendiente
	}

	allEntregado := true
	allPendiente := true
	for _, s := range lines {
		if s != StatusEntregado {
			allEntregado = false
		}
		if s != StatusPendiente {
			allPendiente = false
		}
	}

	if allEntregado {
		return StatusEntregado
	}
	if allPendiente {
		return StatusPendiente
	}
	return StatusEnviado
}
