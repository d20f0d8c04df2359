package dto

import (
	"github.com/roselab/warehouse/internal/errs"
	"github.com/roselab/warehouse/internal/model"
	"github.com/shopspring/decimal"
)

// CreateProductDTO 欄位皆為指標, 用來區分缺漏與零值
type CreateProductDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
}

func (d *CreateProductDTO) Validate() []errs.FieldError {
	var fieldErrs []errs.FieldError
	if d.Name == nil || *d.Name == "" {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "name", Message: "name is required"})
	}
	if d.Price == nil {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "price", Message: "price is required"})
	} else if *d.Price < 0 {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "price", Message: "price must be greater than or equal to 0"})
	}
	if d.Quantity == nil {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "quantity", Message: "quantity is required"})
	} else if *d.Quantity < 0 {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "quantity", Message: "quantity must be greater than or equal to 0"})
	}
	return fieldErrs
}

func (d *CreateProductDTO) ToModel() *model.ProductModel {
	return &model.ProductModel{
		Name:        *d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(*d.Price),
		Quantity:    uint(*d.Quantity),
	}
}

// UpdateProductDTO 部分更新, 沒帶的欄位保留原值
type UpdateProductDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
}

func (d *UpdateProductDTO) Validate() []errs.FieldError {
	var fieldErrs []errs.FieldError
	if d.Name != nil && *d.Name == "" {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "name", Message: "name must not be empty"})
	}
	if d.Price != nil && *d.Price < 0 {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "price", Message: "price must be greater than or equal to 0"})
	}
	if d.Quantity != nil && *d.Quantity < 0 {
		fieldErrs = append(fieldErrs, errs.FieldError{Field: "quantity", Message: "quantity must be greater than or equal to 0"})
	}
	return fieldErrs
}

func (d *UpdateProductDTO) ToUpdates() *model.ProductUpdates {
	updates := &model.ProductUpdates{
		Name:        d.Name,
		Description: d.Description,
	}
	if d.Price != nil {
		price := decimal.NewFromFloat(*d.Price)
		updates.Price = &price
	}
	if d.Quantity != nil {
		quantity := uint(*d.Quantity)
		updates.Quantity = &quantity
	}
	return updates
}

type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    uint    `json:"quantity"`
}
