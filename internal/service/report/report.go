package report

import (
	"context"
	"fmt"

	"logistics-dispatch/internal/domain"
)

// Service builds read-only aggregate views over orders and couriers.
type Service struct {
	orders   orderReader
	couriers courierReader
}

// NewService creates a report Service.
func NewService(orders orderReader, couriers courierReader) *Service {
	return &Service{orders: orders, couriers: couriers}
}

// Summary collects the dashboard figures. Any failing query fails the whole summary.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	var sum domain.Summary
	var err error

	if sum.OrdersByStatus, err = s.orders.StatsByStatus(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("orders by status: %w", err)
	}
	if sum.OrdersByCity, err = s.orders.StatsByCity(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("orders by city: %w", err)
	}
	overdue, err := s.orders.Overdue(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("overdue orders: %w", err)
	}
	if sum.AverageDelayDays, err = s.orders.AverageDeliveryDelay(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("average delay: %w", err)
	}
	if sum.CouriersByZone, err = s.couriers.StatsByZone(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("couriers by zone: %w", err)
	}
	byAvailability, err := s.couriers.StatsByAvailability(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("couriers by availability: %w", err)
	}
	overloaded, err := s.couriers.ListOverloaded(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("overloaded couriers: %w", err)
	}

	for _, n := range sum.OrdersByStatus {
		sum.TotalOrders += n
	}
	sum.OverdueOrders = len(overdue)
	sum.AvailableCouriers = byAvailability[true]
	sum.BusyCouriers = byAvailability[false]
	sum.TotalCouriers = sum.AvailableCouriers + sum.BusyCouriers
	sum.OverloadedCouriers = len(overloaded)
	return sum, nil
}
