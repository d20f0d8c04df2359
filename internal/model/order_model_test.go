package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusInProgress,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		require.True(t, status.IsValid(), string(status))
	}

	for _, status := range []OrderStatus{"", "done", "IN_PROGRESS", "in progress"} {
		require.False(t, OrderStatus(status).IsValid(), string(status))
	}
}
