package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"PLACED", "placed", "Packing", "DISPATCHED", "delivered", "CANCELLED"} {
		status, err := ParseOrderStatus(raw)
		require.NoError(t, err, raw)
		assert.NotEmpty(t, status)
	}

	_, err := ParseOrderStatus("returned")
	require.Error(t, err)
}

func TestCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{"placed to packing", OrderStatusPlaced, OrderStatusPacking, true},
		{"placed to delivered skips ahead", OrderStatusPlaced, OrderStatusDelivered, true},
		{"packing to dispatched", OrderStatusPacking, OrderStatusDispatched, true},
		{"dispatched to delivered", OrderStatusDispatched, OrderStatusDelivered, true},
		{"no self transition", OrderStatusPacking, OrderStatusPacking, false},
		{"no backward move", OrderStatusDispatched, OrderStatusPacking, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusPacking, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPacking, false},
		{"cancelled is never a set-status target", OrderStatusPlaced, OrderStatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanAdvanceTo(tt.to))
		})
	}
}
