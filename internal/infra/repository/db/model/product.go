package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null;type:varchar(100);uniqueIndex"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Quantity    uint            `gorm:"not null;type:int"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
}
