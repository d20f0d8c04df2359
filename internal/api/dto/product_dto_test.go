package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateProductDTOValidate(t *testing.T) {
	name := "Widget"
	price := 10.0
	quantity := int64(5)

	t.Run("valid", func(t *testing.T) {
		d := CreateProductDTO{Name: &name, Price: &price, Quantity: &quantity}
		require.Empty(t, d.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		d := CreateProductDTO{Price: &price, Quantity: &quantity}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "name", fieldErrs[0].Field)
	})

	t.Run("empty name", func(t *testing.T) {
		empty := ""
		d := CreateProductDTO{Name: &empty, Price: &price, Quantity: &quantity}
		require.Len(t, d.Validate(), 1)
	})

	t.Run("negative price", func(t *testing.T) {
		negative := -0.01
		d := CreateProductDTO{Name: &name, Price: &negative, Quantity: &quantity}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "price", fieldErrs[0].Field)
	})

	t.Run("zero price and quantity ok", func(t *testing.T) {
		zeroPrice := 0.0
		zeroQuantity := int64(0)
		d := CreateProductDTO{Name: &name, Price: &zeroPrice, Quantity: &zeroQuantity}
		require.Empty(t, d.Validate())
	})

	t.Run("all missing", func(t *testing.T) {
		d := CreateProductDTO{}
		require.Len(t, d.Validate(), 3)
	})
}

func TestUpdateProductDTOValidate(t *testing.T) {
	t.Run("empty body ok", func(t *testing.T) {
		d := UpdateProductDTO{}
		require.Empty(t, d.Validate())
	})

	t.Run("negative quantity", func(t *testing.T) {
		negative := int64(-1)
		d := UpdateProductDTO{Quantity: &negative}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "quantity", fieldErrs[0].Field)
	})
}

func TestUpdateProductDTOToUpdates(t *testing.T) {
	description := "After update"
	price := 35.0
	d := UpdateProductDTO{Description: &description, Price: &price}

	updates := d.ToUpdates()
	require.Nil(t, updates.Name)
	require.Nil(t, updates.Quantity)
	require.NotNil(t, updates.Description)
	require.Equal(t, "After update", *updates.Description)
	require.NotNil(t, updates.Price)
	require.Equal(t, "35", updates.Price.String())
	require.False(t, updates.IsEmpty())
}
