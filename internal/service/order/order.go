package order

import (
	"context"
	"strings"
	"time"

	"logistics-dispatch/internal/apperr"
	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/logx"
)

// Service coordinates order business rules and repository calls.
type Service struct {
	repo             orderRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures an order Service.
func NewService(r orderRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger = logx.OrNop(logger)
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.now())
}

// validate trims the order in place and checks it can be written.
func validate(o *domain.Order) error {
	if o == nil {
		return apperr.ErrInvalid
	}
	o.City = strings.TrimSpace(o.City)
	if !o.Valid() || !o.Status.Known() {
		return apperr.ErrInvalid
	}
	o.Date = domain.DateOf(o.Date)
	return nil
}

// Create validates and persists a new order, returning its store-assigned ID.
func (s *Service) Create(ctx context.Context, o *domain.Order) (int64, error) {
	if err := validate(o); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		return 0, err
	}
	o.ID = id

	s.logger.Debug("order created",
		logx.Int64("order_id", id),
		logx.String("city", o.City),
		logx.String("status", string(o.Status)),
	)
	return id, nil
}

// Get returns the order by ID. A missing order yields the zero Order and apperr.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, apperr.ErrNotFound
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if o == nil {
		return domain.Order{}, apperr.ErrNotFound
	}
	return *o, nil
}

// List returns every order, most recent first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Update overwrites the whole order row.
func (s *Service) Update(ctx context.Context, o *domain.Order) error {
	if err := validate(o); err != nil {
		return err
	}
	if o.ID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.Update(ctx, o)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes the order. Deleting a missing order succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// Search applies every criterion set in f. An empty filter behaves like List.
func (s *Service) Search(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Search(ctx, f)
}

// Sort returns all orders ordered by criterion. Unknown criteria sort by date.
func (s *Service) Sort(ctx context.Context, criterion string, ascending bool) ([]domain.Order, error) {
	field, ok := domain.ParseOrderSort(criterion)
	if !ok {
		s.logger.Debug("unknown order sort criterion",
			logx.String("criterion", criterion),
			logx.String("fallback", string(field)),
		)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Sort(ctx, field, ascending)
}

// AverageDeliveryDelay returns the mean number of days between the order date
// and today over delivered orders, or 0 when there are none.
func (s *Service) AverageDeliveryDelay(ctx context.Context) (float64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	dates, err := s.repo.ListDates(ctx, domain.StatusDelivered)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	today := s.today()
	total := 0
	for _, d := range dates {
		total += domain.DaysBetween(d, today)
	}
	return float64(total) / float64(len(dates)), nil
}

// AssignCourier attaches the courier to the order and moves it to in-progress,
// whatever the previous status was. Courier availability is not checked.
func (s *Service) AssignCourier(ctx context.Context, orderID, courierID int64) error {
	if orderID <= 0 || courierID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.AssignCourier(ctx, orderID, courierID, domain.StatusInProgress)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}

	s.logger.Info("courier assigned",
		logx.String("event", "courier_assigned"),
		logx.Int64("order_id", orderID),
		logx.Int64("courier_id", courierID),
	)
	return nil
}

// ChangeStatus loads the order and writes it back with the new status.
func (s *Service) ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	o, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	prev := o.Status
	o.Status = status
	if err := s.Update(ctx, &o); err != nil {
		return err
	}

	s.logger.Info("order status changed",
		logx.Int64("order_id", id),
		logx.String("from", string(prev)),
		logx.String("to", string(status)),
	)
	return nil
}

// Overdue returns late orders and in-progress orders older than OverdueAfterDays.
func (s *Service) Overdue(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	cutoff := s.today().AddDate(0, 0, -domain.OverdueAfterDays)
	return s.repo.ListOverdue(ctx, cutoff)
}

// StatsByStatus counts orders per status.
func (s *Service) StatsByStatus(ctx context.Context) (map[string]int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountByStatus(ctx)
}

// StatsByCity counts orders per city.
func (s *Service) StatsByCity(ctx context.Context) (map[string]int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountByCity(ctx)
}

// NextID returns the highest order ID plus one, or 1 when there are no orders.
func (s *Service) NextID(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.NextID(ctx)
}
