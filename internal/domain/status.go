package domain

// OrderStatus is the lifecycle state of an order as stored in the orders table.
type OrderStatus string

// List of order statuses. Values are the stored representation.
const (
	StatusPending    OrderStatus = "En attente"
	StatusInProgress OrderStatus = "En cours"
	StatusDelivered  OrderStatus = "Livree"
	StatusCancelled  OrderStatus = "Annulee"
	StatusLate       OrderStatus = "En retard"
)

var knownStatuses = [...]OrderStatus{
	StatusPending, StatusInProgress, StatusDelivered, StatusCancelled, StatusLate,
}

var activeStatuses = [...]OrderStatus{StatusPending, StatusInProgress}

// Known checks if the OrderStatus belongs to the fixed enumeration.
func (s OrderStatus) Known() bool {
	for _, v := range knownStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active reports whether the order still counts toward a courier's workload.
func (s OrderStatus) Active() bool {
	for _, v := range activeStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is expected.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ActiveStatuses returns the statuses counted as active workload.
func ActiveStatuses() []string {
	out := make([]string, 0, len(activeStatuses))
	for _, s := range activeStatuses {
		out = append(out, string(s))
	}
	return out
}

// KnownStatuses returns every status of the enumeration in lifecycle order.
func KnownStatuses() []OrderStatus {
	out := make([]OrderStatus, len(knownStatuses))
	copy(out, knownStatuses[:])
	return out
}
