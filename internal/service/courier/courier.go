package courier

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-dispatch/internal/apperr"
	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/logx"
	"logistics-dispatch/internal/ports/couriertx"
)

// Service coordinates courier business logic and orchestrates repository calls.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
	logger           logx.Logger
	cascaded         prometheus.Counter
}

// NewService creates and configures a courier Service. cascaded may be nil.
func NewService(r courierRepository, timeout time.Duration, logger logx.Logger, cascaded prometheus.Counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger = logx.OrNop(logger)
	return &Service{repo: r, operationTimeout: timeout, logger: logger, cascaded: cascaded}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func normalize(c *domain.Courier) {
	c.Name = strings.TrimSpace(c.Name)
	c.Zone = strings.TrimSpace(c.Zone)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Vehicle = strings.TrimSpace(c.Vehicle)
}

// Create persists a new courier and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	if c == nil {
		return 0, apperr.ErrInvalid
	}
	normalize(c)
	if !c.ValidForCreate() {
		return 0, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// Get retrieves a courier by its ID. A missing courier yields the zero Courier and apperr.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (domain.Courier, error) {
	if id <= 0 {
		return domain.Courier{}, apperr.ErrNotFound
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Courier{}, err
	}
	if c == nil {
		return domain.Courier{}, apperr.ErrNotFound
	}
	return *c, nil
}

// List returns every courier ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Update overwrites the courier row.
func (s *Service) Update(ctx context.Context, c *domain.Courier) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	normalize(c)
	if !c.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.Update(ctx, c)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes the courier together with every order referencing it.
// The number of removed orders is reported in the result, never as an error.
func (s *Service) Delete(ctx context.Context, id int64) (domain.DeleteResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := domain.DeleteResult{CourierID: id}
	err := s.repo.WithTx(ctx, func(tx couriertx.Repository) error {
		found, err := tx.LockCourier(ctx, id)
		if err != nil || !found {
			return err
		}
		n, err := tx.CountAllOrders(ctx, id)
		if err != nil {
			return err
		}
		if _, err := tx.DeleteCourier(ctx, id); err != nil {
			return err
		}
		res.CascadedOrders = n
		return nil
	})
	if err != nil {
		return domain.DeleteResult{}, err
	}

	if res.CascadedOrders > 0 {
		s.logger.Warn("courier deleted with orders",
			logx.String("event", "courier_cascade_delete"),
			logx.Int64("courier_id", id),
			logx.Int("orders", res.CascadedOrders),
		)
		if s.cascaded != nil {
			s.cascaded.Add(float64(res.CascadedOrders))
		}
	}
	return res, nil
}

// Search returns couriers matching f ordered by name.
func (s *Service) Search(ctx context.Context, f domain.CourierFilter) ([]domain.Courier, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Zone = strings.TrimSpace(f.Zone)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Search(ctx, f)
}

// Sort returns every courier ordered by criterion. Unknown criteria sort by name.
func (s *Service) Sort(ctx context.Context, criterion string, ascending bool) ([]domain.Courier, error) {
	field, _ := domain.ParseCourierSort(criterion)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Sort(ctx, field, ascending)
}

// SetAvailability updates only the availability flag.
func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// ListAvailable returns available couriers ordered by name.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListAvailable(ctx)
}

// ListOverloaded returns couriers carrying more than domain.OverloadThreshold active orders, busiest first.
func (s *Service) ListOverloaded(ctx context.Context) ([]domain.CourierLoad, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOverloaded(ctx, domain.OverloadThreshold)
}

// Best picks the available courier with the fewest orders of any status,
// ties broken by name. An empty zone matches every zone.
func (s *Service) Best(ctx context.Context, zone string) (domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.repo.FindBest(ctx, strings.TrimSpace(zone))
	if err != nil {
		return domain.Courier{}, err
	}
	if c == nil {
		return domain.Courier{}, apperr.ErrNotFound
	}
	return *c, nil
}

// StatsByZone counts couriers per zone.
func (s *Service) StatsByZone(ctx context.Context) (map[string]int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountByZone(ctx)
}

// StatsByAvailability counts available and busy couriers.
func (s *Service) StatsByAvailability(ctx context.Context) (map[bool]int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountByAvailability(ctx)
}

// StatsByWorkload maps each courier ID to its active order count.
func (s *Service) StatsByWorkload(ctx context.Context) (map[int64]int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Workload(ctx)
}

// ActiveOrderCount counts pending and in-progress orders of the courier.
func (s *Service) ActiveOrderCount(ctx context.Context, id int64) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountActiveOrders(ctx, id)
}

// TotalOrderCount counts orders of any status referencing the courier.
func (s *Service) TotalOrderCount(ctx context.Context, id int64) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountAllOrders(ctx, id)
}

// NextID returns the highest courier ID plus one.
func (s *Service) NextID(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.NextID(ctx)
}
