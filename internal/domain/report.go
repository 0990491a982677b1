package domain

// Summary is the dashboard view over orders and couriers.
type Summary struct {
	TotalOrders        int
	OrdersByStatus     map[string]int
	OrdersByCity       map[string]int
	OverdueOrders      int
	AverageDelayDays   float64
	TotalCouriers      int
	AvailableCouriers  int
	BusyCouriers       int
	CouriersByZone     map[string]int
	OverloadedCouriers int
}
