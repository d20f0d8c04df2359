package model

import (
	"time"
)

type Order struct {
	ID        uint        `gorm:"primaryKey"`
	CreatedAt time.Time   `gorm:"not null"`
	Status    string      `gorm:"not null;type:varchar(20);default:'in_progress'"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null;index"` // 外鍵，關聯到 Order
	ProductID uint `gorm:"not null;index"` // 外鍵，關聯到 Product
	Quantity  uint `gorm:"not null"`
}
