package dto

import (
	"fmt"
	"time"

	"github.com/roselab/warehouse/internal/errs"
	"github.com/roselab/warehouse/internal/model"
)

type OrderItemCreateDTO struct {
	ProductID *int64 `json:"product_id"`
	Quantity  *int64 `json:"quantity"`
}

// CreateOrderDTO status可省略, 預設in_progress
// items允許空陣列, 空訂單照常建立
type CreateOrderDTO struct {
	Status *string               `json:"status"`
	Items  *[]OrderItemCreateDTO `json:"items"`
}

func (d *CreateOrderDTO) Validate() []errs.FieldError {
	var fieldErrs []errs.FieldError
	if d.Status != nil && !model.OrderStatus(*d.Status).IsValid() {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "status", Message: "status must be one of in_progress, shipped, delivered, cancelled"})
	}
	if d.Items == nil {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "items", Message: "items is required"})
		return fieldErrs
	}
	for i, item := range *d.Items {
		if item.ProductID == nil || *item.ProductID <= 0 {
			fieldErrs = append(fieldErrs, errs.FieldError{Field: itemField(i, "product_id"), Message: "product_id is required and must be positive"})
		}
		if item.Quantity == nil {
			fieldErrs = append(fieldErrs, errs.FieldError{Field: itemField(i, "quantity"), Message: "quantity is required"})
		} else if *item.Quantity <= 0 {
			fieldErrs = append(fieldErrs, errs.FieldError{Field: itemField(i, "quantity"), Message: "quantity must be greater than 0"})
		}
	}
	return fieldErrs
}

func itemField(i int, name string) string {
	return fmt.Sprintf("items[%d].%s", i, name)
}

func (d *CreateOrderDTO) StatusOrDefault() model.OrderStatus {
	if d.Status == nil {
		return model.OrderStatusInProgress
	}
	return model.OrderStatus(*d.Status)
}

func (d *CreateOrderDTO) ToItemRequests() []model.OrderItemRequest {
	items := make([]model.OrderItemRequest, 0, len(*d.Items))
	for _, item := range *d.Items {
		items = append(items, model.OrderItemRequest{
			ProductID: uint(*item.ProductID),
			Quantity:  uint(*item.Quantity),
		})
	}
	return items
}

type UpdateOrderStatusDTO struct {
	Status *string `json:"status"`
}

func (d *UpdateOrderStatusDTO) Validate() []errs.FieldError {
	var fieldErrs []errs.FieldError
	if d.Status == nil {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "status", Message: "status is required"})
	} else if !model.OrderStatus(*d.Status).IsValid() {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "status", Message: "status must be one of in_progress, shipped, delivered, cancelled"})
	}
	return fieldErrs
}

type OrderItemDTO struct {
	ID        uint `json:"id"`
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

type OrderDTO struct {
	ID        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Status    string         `json:"status"`
	Items     []OrderItemDTO `json:"items"`
}
