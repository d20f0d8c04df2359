package model

import (
	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          uint
	Name        string
	Description *string
	Price       decimal.Decimal
	Quantity    uint
}

// ProductUpdates 部分更新用, nil代表該欄位不更新
type ProductUpdates struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *uint
}

func (u *ProductUpdates) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Quantity == nil
}
