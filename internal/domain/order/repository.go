package order

import "context"

type Repository interface {
	FindByID(ctx context.Context, id uint) (*Order, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
