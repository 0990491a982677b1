package domain

import "strings"

// OrderSortField is a sortable order column.
type OrderSortField string

// List of sortable order fields.
const (
	OrderSortID      OrderSortField = "id"
	OrderSortDate    OrderSortField = "date"
	OrderSortStatus  OrderSortField = "status"
	OrderSortCity    OrderSortField = "city"
	OrderSortClient  OrderSortField = "client"
	OrderSortCourier OrderSortField = "courier"
)

var orderSortFields = [...]OrderSortField{
	OrderSortID, OrderSortDate, OrderSortStatus, OrderSortCity, OrderSortClient, OrderSortCourier,
}

// ParseOrderSort maps a caller supplied criterion to a sortable field.
// Unknown criteria fall back to the order date.
func ParseOrderSort(raw string) (OrderSortField, bool) {
	s := OrderSortField(strings.ToLower(strings.TrimSpace(raw)))
	for _, v := range orderSortFields {
		if s == v {
			return v, true
		}
	}
	return OrderSortDate, false
}

// CourierSortField is a sortable courier column.
type CourierSortField string

// List of sortable courier fields.
const (
	CourierSortName         CourierSortField = "name"
	CourierSortZone         CourierSortField = "zone"
	CourierSortVehicle      CourierSortField = "vehicle"
	CourierSortAvailability CourierSortField = "availability"
)

var courierSortFields = [...]CourierSortField{
	CourierSortName, CourierSortZone, CourierSortVehicle, CourierSortAvailability,
}

// ParseCourierSort maps a caller supplied criterion to a sortable field.
// Unknown criteria fall back to the courier name.
func ParseCourierSort(raw string) (CourierSortField, bool) {
	s := CourierSortField(strings.ToLower(strings.TrimSpace(raw)))
	for _, v := range courierSortFields {
		if s == v {
			return v, true
		}
	}
	return CourierSortName, false
}
