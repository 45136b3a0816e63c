package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every created order.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPreparing indicates the kitchen has started the order.
	OrderStatusPreparing OrderStatus = "PREPARING"
	// OrderStatusReady indicates the order is ready for handover.
	OrderStatusReady OrderStatus = "READY"
	// OrderStatusDelivered is a terminal state: the order reached the customer.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled is a terminal state: the order was cancelled.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// validTransitions is the single source of truth for legal status changes.
// PENDING -> DELIVERED is intentionally legal: counter (walk-in) orders are
// handed over by a cashier without passing through the kitchen states.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled, OrderStatusDelivered},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := validTransitions[s]

	return ok
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in a single step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// TransitionsFrom returns a copy of the statuses reachable from s.
func TransitionsFrom(s OrderStatus) []OrderStatus {
	allowed := validTransitions[s]
	out := make([]OrderStatus, len(allowed))
	copy(out, allowed)

	return out
}

// OrderStatusFromString converts a raw string to an OrderStatus, reporting validity.
func OrderStatusFromString(raw string) (OrderStatus, bool) {
	status := OrderStatus(raw)

	return status, status.IsValid()
}
