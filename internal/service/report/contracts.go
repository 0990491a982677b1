package report

import (
	"context"

	"logistics-dispatch/internal/domain"
)

type orderReader interface {
	StatsByStatus(ctx context.Context) (map[string]int, error)
	StatsByCity(ctx context.Context) (map[string]int, error)
	Overdue(ctx context.Context) ([]domain.Order, error)
	AverageDeliveryDelay(ctx context.Context) (float64, error)
}

type courierReader interface {
	StatsByZone(ctx context.Context) (map[string]int, error)
	StatsByAvailability(ctx context.Context) (map[bool]int, error)
	ListOverloaded(ctx context.Context) ([]domain.CourierLoad, error)
}
