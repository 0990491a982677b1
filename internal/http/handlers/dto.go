package handlers

type orderDTO struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	City      string `json:"city"`
	ClientID  int64  `json:"client_id"`
	CourierID *int64 `json:"courier_id"`
}

type orderRequest struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	City      string `json:"city"`
	ClientID  int64  `json:"client_id"`
	CourierID *int64 `json:"courier_id,omitempty"`
}

type assignRequest struct {
	CourierID int64 `json:"courier_id"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type courierDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Zone      string `json:"zone"`
	Vehicle   string `json:"vehicle"`
	Available bool   `json:"available"`
}

type courierRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Zone      string `json:"zone"`
	Vehicle   string `json:"vehicle"`
	Available *bool  `json:"available,omitempty"`
}

type availabilityRequest struct {
	Available *bool `json:"available"`
}

type courierLoadDTO struct {
	Courier      courierDTO `json:"courier"`
	ActiveOrders int        `json:"active_orders"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type nextIDResponse struct {
	NextID int64 `json:"next_id"`
}

type deleteCourierResponse struct {
	ID             int64 `json:"id"`
	CascadedOrders int   `json:"cascaded_orders"`
}

type orderCountResponse struct {
	CourierID int64 `json:"courier_id"`
	Active    int   `json:"active"`
	Total     int   `json:"total"`
}

type averageDelayResponse struct {
	AverageDelayDays float64 `json:"average_delay_days"`
}

type availabilityStatsResponse struct {
	Available int `json:"available"`
	Busy      int `json:"busy"`
}

type summaryDTO struct {
	TotalOrders        int            `json:"total_orders"`
	OrdersByStatus     map[string]int `json:"orders_by_status"`
	OrdersByCity       map[string]int `json:"orders_by_city"`
	OverdueOrders      int            `json:"overdue_orders"`
	AverageDelayDays   float64        `json:"average_delay_days"`
	TotalCouriers      int            `json:"total_couriers"`
	AvailableCouriers  int            `json:"available_couriers"`
	BusyCouriers       int            `json:"busy_couriers"`
	CouriersByZone     map[string]int `json:"couriers_by_zone"`
	OverloadedCouriers int            `json:"overloaded_couriers"`
}
