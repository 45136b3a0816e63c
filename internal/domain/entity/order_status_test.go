package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusDelivered, false},
		{OrderStatusPreparing, OrderStatusPending, false},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusReady, OrderStatusCancelled, true},
		{OrderStatusReady, OrderStatusPreparing, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_TerminalStatesHaveNoTransitions(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, status.IsTerminal())
		assert.Empty(t, TransitionsFrom(status))
	}

	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusPreparing, OrderStatusReady} {
		assert.False(t, status.IsTerminal())
		assert.NotEmpty(t, TransitionsFrom(status))
	}
}

func TestOrderStatus_SelfTransitionIsRejected(t *testing.T) {
	for status := range validTransitions {
		assert.False(t, status.CanTransitionTo(status), "self transition for %s", status)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("SHIPPED").IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusFromString(t *testing.T) {
	status, ok := OrderStatusFromString("PREPARING")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusPreparing, status)

	_, ok = OrderStatusFromString("preparing")
	assert.False(t, ok)
}

func TestTransitionsFrom_ReturnsCopy(t *testing.T) {
	first := TransitionsFrom(OrderStatusPending)
	first[0] = OrderStatusCancelled

	second := TransitionsFrom(OrderStatusPending)
	assert.Equal(t, OrderStatusPreparing, second[0])
}
