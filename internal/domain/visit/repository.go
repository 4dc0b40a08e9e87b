package visit

import "context"

type Repository interface {
	FindByID(ctx context.Context, id uint) (*Visit, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
