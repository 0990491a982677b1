package handlers

import (
	"context"

	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/service/courier"
	"logistics-dispatch/internal/service/order"
	"logistics-dispatch/internal/service/report"
)

type orderUsecase interface {
	Create(ctx context.Context, o *domain.Order) (int64, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Sort(ctx context.Context, criterion string, ascending bool) ([]domain.Order, error)
	AverageDeliveryDelay(ctx context.Context) (float64, error)
	AssignCourier(ctx context.Context, orderID, courierID int64) error
	ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Overdue(ctx context.Context) ([]domain.Order, error)
	StatsByStatus(ctx context.Context) (map[string]int, error)
	StatsByCity(ctx context.Context) (map[string]int, error)
	NextID(ctx context.Context) (int64, error)
}

// NewOrderUsecase wires an order Service into an orderUsecase.
func NewOrderUsecase(svc *order.Service) orderUsecase {
	return svc
}

type courierUsecase interface {
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	Get(ctx context.Context, id int64) (domain.Courier, error)
	List(ctx context.Context) ([]domain.Courier, error)
	Update(ctx context.Context, c *domain.Courier) error
	Delete(ctx context.Context, id int64) (domain.DeleteResult, error)
	Search(ctx context.Context, f domain.CourierFilter) ([]domain.Courier, error)
	Sort(ctx context.Context, criterion string, ascending bool) ([]domain.Courier, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	ListAvailable(ctx context.Context) ([]domain.Courier, error)
	ListOverloaded(ctx context.Context) ([]domain.CourierLoad, error)
	Best(ctx context.Context, zone string) (domain.Courier, error)
	StatsByZone(ctx context.Context) (map[string]int, error)
	StatsByAvailability(ctx context.Context) (map[bool]int, error)
	StatsByWorkload(ctx context.Context) (map[int64]int, error)
	ActiveOrderCount(ctx context.Context, id int64) (int, error)
	TotalOrderCount(ctx context.Context, id int64) (int, error)
	NextID(ctx context.Context) (int64, error)
}

// NewCourierUsecase wires a courier Service into a courierUsecase.
func NewCourierUsecase(svc *courier.Service) courierUsecase {
	return svc
}

type reportUsecase interface {
	Summary(ctx context.Context) (domain.Summary, error)
}

// NewReportUsecase wires a report Service into a reportUsecase.
func NewReportUsecase(svc *report.Service) reportUsecase {
	return svc
}
