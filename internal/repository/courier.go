package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/ports/couriertx"
)

const courierColumns = `c.id, c.name, c.phone, c.zone, c.vehicle, c.available`

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

func scanCourier(row pgx.Row, extra ...any) (domain.Courier, error) {
	var c domain.Courier
	dst := append([]any{&c.ID, &c.Name, &c.Phone, &c.Zone, &c.Vehicle, &c.Available}, extra...)
	err := row.Scan(dst...)
	return c, err
}

func collectCouriers(rows pgx.Rows) ([]domain.Courier, error) {
	defer rows.Close()
	out := make([]domain.Courier, 0)
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func collectLoads(rows pgx.Rows) ([]domain.CourierLoad, error) {
	defer rows.Close()
	out := make([]domain.CourierLoad, 0)
	for rows.Next() {
		var n int
		c, err := scanCourier(rows, &n)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.CourierLoad{Courier: c, Orders: n})
	}
	return out, rows.Err()
}

// Get - returns courier by its ID, or nil when it does not exist.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	c, err := scanCourier(r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers c WHERE c.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return &c, nil
}

// List returns couriers ordered by name.
func (r *CourierRepo) List(ctx context.Context) ([]domain.Courier, error) {
	return r.Search(ctx, domain.CourierFilter{})
}

// Create - creates a new courier.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO couriers (name, phone, zone, vehicle, available)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, c.Name, c.Phone, c.Zone, c.Vehicle, c.Available).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// Update overwrites every column of the courier and returns true if a row was affected.
func (r *CourierRepo) Update(ctx context.Context, c *domain.Courier) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET name      = $2,
            phone     = $3,
            zone      = $4,
            vehicle   = $5,
            available = $6
        WHERE id = $1
    `, c.ID, c.Name, c.Phone, c.Zone, c.Vehicle, c.Available)
	if err != nil {
		return false, fmt.Errorf("update courier %d: %w", c.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetAvailability updates the availability flag and returns true if a row was affected.
func (r *CourierRepo) SetAvailability(ctx context.Context, id int64, available bool) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE couriers SET available = $2 WHERE id = $1`, id, available)
	if err != nil {
		return false, fmt.Errorf("set courier %d availability: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Search returns couriers matching f ordered by name.
func (r *CourierRepo) Search(ctx context.Context, f domain.CourierFilter) ([]domain.Courier, error) {
	var w whereBuilder
	if f.Name != "" {
		w.add("c.name ILIKE ?", containsPattern(f.Name))
	}
	if f.Zone != "" {
		w.add("c.zone ILIKE ?", containsPattern(f.Zone))
	}
	if f.AvailableOnly {
		w.addRaw("c.available")
	}

	q := `SELECT ` + courierColumns + ` FROM couriers c` + w.sql() + ` ORDER BY c.name ASC, c.id ASC`
	rows, err := r.db.Query(ctx, q, w.args...)
	if err != nil {
		return nil, fmt.Errorf("search couriers: %w", err)
	}
	return collectCouriers(rows)
}

// ListAvailable returns available couriers ordered by name.
func (r *CourierRepo) ListAvailable(ctx context.Context) ([]domain.Courier, error) {
	return r.Search(ctx, domain.CourierFilter{AvailableOnly: true})
}

func courierSortColumn(f domain.CourierSortField) string {
	switch f {
	case domain.CourierSortZone:
		return "c.zone"
	case domain.CourierSortVehicle:
		return "c.vehicle"
	case domain.CourierSortAvailability:
		return "c.available"
	default:
		return "c.name"
	}
}

// Sort returns all couriers ordered by the given field.
func (r *CourierRepo) Sort(ctx context.Context, field domain.CourierSortField, ascending bool) ([]domain.Courier, error) {
	dir := direction(ascending)
	q := fmt.Sprintf(`SELECT %s FROM couriers c ORDER BY %s %s, c.id %s`,
		courierColumns, courierSortColumn(field), dir, dir)
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sort couriers by %s: %w", field, err)
	}
	return collectCouriers(rows)
}

// ListOverloaded returns couriers with more than threshold active orders, busiest first.
func (r *CourierRepo) ListOverloaded(ctx context.Context, threshold int) ([]domain.CourierLoad, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+courierColumns+`, COUNT(o.id) AS active
        FROM couriers c
        LEFT JOIN orders o ON o.courier_id = c.id AND o.status = ANY($1)
        GROUP BY c.id
        HAVING COUNT(o.id) > $2
        ORDER BY active DESC, c.name ASC
    `, domain.ActiveStatuses(), threshold)
	if err != nil {
		return nil, fmt.Errorf("list overloaded couriers: %w", err)
	}
	return collectLoads(rows)
}

// FindBest returns the available courier with the fewest orders of any status,
// tie-broken by name. Zone, when set, must match case-insensitively. Returns nil when none.
func (r *CourierRepo) FindBest(ctx context.Context, zone string) (*domain.Courier, error) {
	var w whereBuilder
	w.addRaw("c.available")
	if zone != "" {
		w.add("UPPER(c.zone) = UPPER(?)", zone)
	}

	q := `SELECT ` + courierColumns + `
        FROM couriers c
        LEFT JOIN orders o ON o.courier_id = c.id` + w.sql() + `
        GROUP BY c.id
        ORDER BY COUNT(o.id) ASC, c.name ASC, c.id ASC
        LIMIT 1`

	c, err := scanCourier(r.db.QueryRow(ctx, q, w.args...))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find best courier: %w", err)
	}
	return &c, nil
}

// CountByZone groups couriers by delivery zone.
func (r *CourierRepo) CountByZone(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT zone, COUNT(*) FROM couriers GROUP BY zone`)
	if err != nil {
		return nil, fmt.Errorf("count couriers by zone: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			zone string
			n    int
		)
		if err := rows.Scan(&zone, &n); err != nil {
			return nil, err
		}
		out[zone] = n
	}
	return out, rows.Err()
}

// CountByAvailability groups couriers by availability flag.
func (r *CourierRepo) CountByAvailability(ctx context.Context) (map[bool]int, error) {
	rows, err := r.db.Query(ctx, `SELECT available, COUNT(*) FROM couriers GROUP BY available`)
	if err != nil {
		return nil, fmt.Errorf("count couriers by availability: %w", err)
	}
	defer rows.Close()

	out := make(map[bool]int)
	for rows.Next() {
		var (
			available bool
			n         int
		)
		if err := rows.Scan(&available, &n); err != nil {
			return nil, err
		}
		out[available] = n
	}
	return out, rows.Err()
}

// Workload maps every courier ID to its number of active orders.
func (r *CourierRepo) Workload(ctx context.Context) (map[int64]int, error) {
	rows, err := r.db.Query(ctx, `
        SELECT c.id, COUNT(o.id)
        FROM couriers c
        LEFT JOIN orders o ON o.courier_id = c.id AND o.status = ANY($1)
        GROUP BY c.id
    `, domain.ActiveStatuses())
	if err != nil {
		return nil, fmt.Errorf("courier workload: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]int)
	for rows.Next() {
		var (
			id int64
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

// CountActiveOrders counts pending and in-progress orders of a courier.
func (r *CourierRepo) CountActiveOrders(ctx context.Context, courierID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE courier_id = $1 AND status = ANY($2)`,
		courierID, domain.ActiveStatuses()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active orders of courier %d: %w", courierID, err)
	}
	return n, nil
}

// CountAllOrders counts orders of any status referencing a courier.
func (r *CourierRepo) CountAllOrders(ctx context.Context, courierID int64) (int, error) {
	return countAllOrders(ctx, r.db, courierID)
}

// NextID returns the highest courier ID plus one.
func (r *CourierRepo) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM couriers`).Scan(&id); err != nil {
		return 0, fmt.Errorf("next courier id: %w", err)
	}
	return id, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *CourierRepo) WithTx(ctx context.Context, fn func(tx couriertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// LockCourier locks the courier row until the transaction ends.
// Inserts of orders referencing it block until then.
func (r *TxRepo) LockCourier(ctx context.Context, courierID int64) (bool, error) {
	var one int
	err := r.tx.QueryRow(ctx, `SELECT 1 FROM couriers WHERE id = $1 FOR UPDATE`, courierID).Scan(&one)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("lock courier %d: %w", courierID, err)
	}
	return true, nil
}

// CountAllOrders counts every order referencing the courier inside the transaction.
func (r *TxRepo) CountAllOrders(ctx context.Context, courierID int64) (int, error) {
	return countAllOrders(ctx, r.tx, courierID)
}

// DeleteCourier deletes the courier; dependent orders are removed by the cascade.
func (r *TxRepo) DeleteCourier(ctx context.Context, courierID int64) (bool, error) {
	ct, err := r.tx.Exec(ctx, `DELETE FROM couriers WHERE id = $1`, courierID)
	if err != nil {
		return false, fmt.Errorf("delete courier %d: %w", courierID, err)
	}
	return ct.RowsAffected() > 0, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func countAllOrders(ctx context.Context, q queryRower, courierID int64) (int, error) {
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE courier_id = $1`, courierID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders of courier %d: %w", courierID, err)
	}
	return n, nil
}
