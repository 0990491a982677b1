package domain

import "strings"

// OverloadThreshold is the number of active orders a courier may carry before being overloaded.
const OverloadThreshold = 5

// Courier represents a delivery agent.
type Courier struct {
	ID        int64
	Name      string
	Phone     string
	Zone      string
	Vehicle   string
	Available bool
}

// NewCourier returns an available courier.
func NewCourier(name, phone, zone, vehicle string) Courier {
	return Courier{
		Name:      name,
		Phone:     phone,
		Zone:      zone,
		Vehicle:   vehicle,
		Available: true,
	}
}

// Valid reports whether a stored courier satisfies its invariant.
func (c Courier) Valid() bool {
	return c.ID > 0 && c.ValidForCreate()
}

// ValidForCreate checks the invariant except the store-assigned identifier.
func (c Courier) ValidForCreate() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Zone) != ""
}

// Equal compares couriers by identifier.
func (c Courier) Equal(other Courier) bool {
	return c.ID == other.ID
}

// AvailabilityText is the human readable availability label.
func (c Courier) AvailabilityText() string {
	if c.Available {
		return "Disponible"
	}
	return "Occupé"
}

// CourierFilter carries optional search criteria.
type CourierFilter struct {
	Name          string
	Zone          string
	AvailableOnly bool
}

// CourierLoad pairs a courier with a computed order count.
type CourierLoad struct {
	Courier Courier
	Orders  int
}

// DeleteResult reports the side effects of deleting a courier.
type DeleteResult struct {
	CourierID      int64
	CascadedOrders int
}
