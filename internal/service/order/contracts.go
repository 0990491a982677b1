package order

import (
	"context"
	"time"

	"logistics-dispatch/internal/domain"
)

// orderRepository defines storage operations required by the order service.
type orderRepository interface {
	Create(ctx context.Context, o *domain.Order) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, o *domain.Order) (bool, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Sort(ctx context.Context, field domain.OrderSortField, ascending bool) ([]domain.Order, error)
	AssignCourier(ctx context.Context, orderID, courierID int64, status domain.OrderStatus) (bool, error)
	ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Order, error)
	ListDates(ctx context.Context, status domain.OrderStatus) ([]time.Time, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountByCity(ctx context.Context) (map[string]int, error)
	NextID(ctx context.Context) (int64, error)
}
