package resident

import "context"

type Repository interface {
	FindByID(ctx context.Context, id uint) (*Resident, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
