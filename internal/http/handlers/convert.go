package handlers

import (
	"fmt"

	"logistics-dispatch/internal/domain"
)

func (req orderRequest) toModel() (domain.Order, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.Order{}, fmt.Errorf("date: %w", err)
	}
	o := domain.Order{
		Date:     date,
		Status:   domain.OrderStatus(req.Status),
		City:     req.City,
		ClientID: req.ClientID,
	}
	if req.CourierID != nil {
		o.CourierID = *req.CourierID
	}
	return o, nil
}

func orderToResponse(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:       o.ID,
		Date:     formatDate(o.Date),
		Status:   string(o.Status),
		City:     o.City,
		ClientID: o.ClientID,
	}
	if o.Assigned() {
		id := o.CourierID
		dto.CourierID = &id
	}
	return dto
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func (req courierRequest) toModel() domain.Courier {
	c := domain.NewCourier(req.Name, req.Phone, req.Zone, req.Vehicle)
	if req.Available != nil {
		c.Available = *req.Available
	}
	return c
}

func courierToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Zone:      c.Zone,
		Vehicle:   c.Vehicle,
		Available: c.Available,
	}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}

func loadsToResponse(list []domain.CourierLoad) []courierLoadDTO {
	out := make([]courierLoadDTO, 0, len(list))
	for _, l := range list {
		out = append(out, courierLoadDTO{Courier: courierToResponse(l.Courier), ActiveOrders: l.Orders})
	}
	return out
}

func summaryToResponse(s domain.Summary) summaryDTO {
	return summaryDTO{
		TotalOrders:        s.TotalOrders,
		OrdersByStatus:     nonNil(s.OrdersByStatus),
		OrdersByCity:       nonNil(s.OrdersByCity),
		OverdueOrders:      s.OverdueOrders,
		AverageDelayDays:   s.AverageDelayDays,
		TotalCouriers:      s.TotalCouriers,
		AvailableCouriers:  s.AvailableCouriers,
		BusyCouriers:       s.BusyCouriers,
		CouriersByZone:     nonNil(s.CouriersByZone),
		OverloadedCouriers: s.OverloadedCouriers,
	}
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
