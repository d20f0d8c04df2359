package dto

import (
	"testing"

	"github.com/roselab/warehouse/internal/model"
	"github.com/stretchr/testify/require"
)

func intPtr(v int64) *int64 {
	return &v
}

func TestCreateOrderDTOValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d := CreateOrderDTO{Items: &[]OrderItemCreateDTO{
			{ProductID: intPtr(1), Quantity: intPtr(2)},
		}}
		require.Empty(t, d.Validate())
	})

	t.Run("missing items", func(t *testing.T) {
		d := CreateOrderDTO{}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "items", fieldErrs[0].Field)
	})

	t.Run("empty items accepted", func(t *testing.T) {
		// 空訂單依照參考行為照常接受
		d := CreateOrderDTO{Items: &[]OrderItemCreateDTO{}}
		require.Empty(t, d.Validate())
	})

	t.Run("zero quantity", func(t *testing.T) {
		d := CreateOrderDTO{Items: &[]OrderItemCreateDTO{
			{ProductID: intPtr(1), Quantity: intPtr(0)},
		}}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "items[0].quantity", fieldErrs[0].Field)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := "done"
		d := CreateOrderDTO{Status: &status, Items: &[]OrderItemCreateDTO{}}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "status", fieldErrs[0].Field)
	})

	t.Run("second item invalid", func(t *testing.T) {
		d := CreateOrderDTO{Items: &[]OrderItemCreateDTO{
			{ProductID: intPtr(1), Quantity: intPtr(1)},
			{ProductID: intPtr(2), Quantity: intPtr(-1)},
		}}
		fieldErrs := d.Validate()
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "items[1].quantity", fieldErrs[0].Field)
	})
}

func TestCreateOrderDTOStatusOrDefault(t *testing.T) {
	d := CreateOrderDTO{}
	require.Equal(t, model.OrderStatusInProgress, d.StatusOrDefault())

	status := "shipped"
	d = CreateOrderDTO{Status: &status}
	require.Equal(t, model.OrderStatusShipped, d.StatusOrDefault())
}

func TestUpdateOrderStatusDTOValidate(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		d := UpdateOrderStatusDTO{}
		require.Len(t, d.Validate(), 1)
	})

	t.Run("invalid enum", func(t *testing.T) {
		status := "unknown_status"
		d := UpdateOrderStatusDTO{Status: &status}
		require.Len(t, d.Validate(), 1)
	})

	for _, status := range []string{"in_progress", "shipped", "delivered", "cancelled"} {
		t.Run(status, func(t *testing.T) {
			s := status
			d := UpdateOrderStatusDTO{Status: &s}
			require.Empty(t, d.Validate())
		})
	}
}
