//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"

	"logistics-dispatch/internal/domain"
)

// OrderPort is the subset of the order service used when handling order events.
type OrderPort interface {
	Create(ctx context.Context, o *domain.Order) (int64, error)
	AssignCourier(ctx context.Context, orderID, courierID int64) error
	ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// CourierPort is the subset of the courier service used to pick a courier for a new order.
type CourierPort interface {
	Best(ctx context.Context, zone string) (domain.Courier, error)
}
