package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-dispatch/internal/apperr"
	"logistics-dispatch/internal/domain"
)

const orderColumns = `id, order_date, status, city, client_id, COALESCE(courier_id, 0)`

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	err := row.Scan(&o.ID, &o.Date, &status, &o.City, &o.ClientID, &o.CourierID)
	o.Status = domain.OrderStatus(status)
	o.Date = domain.DateOf(o.Date)
	return o, err
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()
	out := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// nullableCourier stores unassigned couriers as NULL.
func nullableCourier(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// Create - inserts a new order and returns its generated ID.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO orders (order_date, status, city, client_id, courier_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, domain.DateOf(o.Date), string(o.Status), o.City, o.ClientID, nullableCourier(o.CourierID)).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("create order: courier %d: %w", o.CourierID, apperr.ErrNotFound)
		}
		return 0, fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

// Get - returns order by its ID, or nil when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &o, nil
}

// List returns all orders, most recent first.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return r.Search(ctx, domain.OrderFilter{})
}

// Update overwrites every column of the order and returns true if a row was affected.
func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET order_date = $2,
            status     = $3,
            city       = $4,
            client_id  = $5,
            courier_id = $6
        WHERE id = $1
    `, o.ID, domain.DateOf(o.Date), string(o.Status), o.City, o.ClientID, nullableCourier(o.CourierID))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, fmt.Errorf("update order %d: courier %d: %w", o.ID, o.CourierID, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("update order %d: %w", o.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes the order. Missing rows are not an error.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

// Search returns orders matching every criterion set in f, most recent first.
func (r *OrderRepo) Search(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}
	if f.City != "" {
		w.add("city LIKE ?", containsPattern(f.City))
	}
	if !f.From.IsZero() {
		w.add("order_date >= ?", domain.DateOf(f.From))
	}
	if !f.To.IsZero() {
		w.add("order_date <= ?", domain.DateOf(f.To))
	}

	q := `SELECT ` + orderColumns + ` FROM orders` + w.sql() + ` ORDER BY order_date DESC, id DESC`
	rows, err := r.db.Query(ctx, q, w.args...)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return collectOrders(rows)
}

func orderSortColumn(f domain.OrderSortField) string {
	switch f {
	case domain.OrderSortID:
		return "id"
	case domain.OrderSortStatus:
		return "status"
	case domain.OrderSortCity:
		return "city"
	case domain.OrderSortClient:
		return "client_id"
	case domain.OrderSortCourier:
		return "courier_id"
	default:
		return "order_date"
	}
}

// Sort returns all orders ordered by the given field.
func (r *OrderRepo) Sort(ctx context.Context, field domain.OrderSortField, ascending bool) ([]domain.Order, error) {
	dir := direction(ascending)
	q := fmt.Sprintf(`SELECT %s FROM orders ORDER BY %s %s NULLS LAST, id %s`,
		orderColumns, orderSortColumn(field), dir, dir)
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sort orders by %s: %w", field, err)
	}
	return collectOrders(rows)
}

// AssignCourier sets the courier reference and status of an order.
func (r *OrderRepo) AssignCourier(ctx context.Context, orderID, courierID int64, status domain.OrderStatus) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET courier_id = $2, status = $3
        WHERE id = $1
    `, orderID, courierID, string(status))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, fmt.Errorf("assign order %d: courier %d: %w", orderID, courierID, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("assign order %d to courier %d: %w", orderID, courierID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListOverdue returns late orders and in-progress orders dated before the cutoff.
func (r *OrderRepo) ListOverdue(ctx context.Context, cutoff time.Time) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE status = $1
           OR (status = $2 AND order_date < $3)
        ORDER BY order_date ASC, id ASC
    `, string(domain.StatusLate), string(domain.StatusInProgress), domain.DateOf(cutoff))
	if err != nil {
		return nil, fmt.Errorf("list overdue orders: %w", err)
	}
	return collectOrders(rows)
}

// ListDates returns the order dates of every order with the given status.
func (r *OrderRepo) ListDates(ctx context.Context, status domain.OrderStatus) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `SELECT order_date FROM orders WHERE status = $1`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list %q order dates: %w", status, err)
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountByStatus groups orders by status.
func (r *OrderRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "status")
}

// CountByCity groups orders by delivery city.
func (r *OrderRepo) CountByCity(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "city")
}

// countBy runs a group count over a fixed column; column is never caller supplied.
func (r *OrderRepo) countBy(ctx context.Context, column string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT %[1]s, COUNT(*) FROM orders GROUP BY %[1]s`, column))
	if err != nil {
		return nil, fmt.Errorf("count orders by %s: %w", column, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

// NextID returns the highest order ID plus one.
func (r *OrderRepo) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM orders`).Scan(&id); err != nil {
		return 0, fmt.Errorf("next order id: %w", err)
	}
	return id, nil
}
