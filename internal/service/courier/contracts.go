//go:generate mockgen -source=contracts.go -destination=courier_mocks_test.go -package=courier

package courier

import (
	"context"

	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/ports/couriertx"
)

// courierRepository defines storage operations required by the courier service.
type courierRepository interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	Update(ctx context.Context, c *domain.Courier) (bool, error)
	SetAvailability(ctx context.Context, id int64, available bool) (bool, error)
	Search(ctx context.Context, f domain.CourierFilter) ([]domain.Courier, error)
	ListAvailable(ctx context.Context) ([]domain.Courier, error)
	Sort(ctx context.Context, field domain.CourierSortField, ascending bool) ([]domain.Courier, error)
	ListOverloaded(ctx context.Context, threshold int) ([]domain.CourierLoad, error)
	FindBest(ctx context.Context, zone string) (*domain.Courier, error)
	CountByZone(ctx context.Context) (map[string]int, error)
	CountByAvailability(ctx context.Context) (map[bool]int, error)
	Workload(ctx context.Context) (map[int64]int, error)
	CountActiveOrders(ctx context.Context, courierID int64) (int, error)
	CountAllOrders(ctx context.Context, courierID int64) (int, error)
	NextID(ctx context.Context) (int64, error)
	WithTx(ctx context.Context, fn func(tx couriertx.Repository) error) error
}
