package model

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid 狀態轉換不做合法性檢查, 只檢查enum值本身
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderModel struct {
	ID        uint
	CreatedAt time.Time
	Status    OrderStatus
	Items     []OrderItemModel
}

type OrderItemModel struct {
	ID        uint
	ProductID uint
	Quantity  uint
}

// OrderItemRequest 建立訂單時請求的單一品項
type OrderItemRequest struct {
	ProductID uint
	Quantity  uint
}
