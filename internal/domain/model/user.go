package model

type Role string

const (
	RoleCliente   Role = "cliente"
	RoleProductor Role = "productor"
)

// スキーマのカラム名はスペイン語のまま（フロントと既存DBの契約）
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Nombre       string `gorm:"type:varchar(255);not null;column:nombre" json:"nombre"`
	Email        string `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Rol          Role   `gorm:"type:varchar(20);not null;column:rol" json:"rol"`
}

func (User) TableName() string { return "users" }
