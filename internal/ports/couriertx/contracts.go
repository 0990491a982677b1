package couriertx

import "context"

// Repository is the courier repository bound to a transaction
type Repository interface {
	LockCourier(ctx context.Context, courierID int64) (bool, error)
	CountAllOrders(ctx context.Context, courierID int64) (int, error)
	DeleteCourier(ctx context.Context, courierID int64) (bool, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
