package permit

import (
	"context"
	"time"

	vo "portico/internal/domain/permit/valueobjects"
)

// Repository is the storage port for entry permissions. Save and Update are
// write operations; Update is conditioned on the permit's previous version
// and must return ErrVersionConflict when another writer got there first.
// The Details variants always return fully populated reference data.
type Repository interface {
	Save(ctx context.Context, p *Permit) error
	Update(ctx context.Context, p *Permit) error
	FindByID(ctx context.Context, id uint) (*Permit, error)
	FindByQRToken(ctx context.Context, token string) (*Permit, error)
	FindDetailsByID(ctx context.Context, id uint) (*Details, error)
	FindDetailsByQRToken(ctx context.Context, token string) (*Details, error)
	List(ctx context.Context, filter Filter) ([]*Details, int64, error)
}

// Filter narrows permit listings. Nil fields are ignored. The date window
// applies to validFrom.
type Filter struct {
	ResidentID *uint
	VisitID    *uint
	OrderID    *uint
	Type       *vo.PermissionType
	Status     *vo.PermitStatus
	Lifecycle  *vo.LifecycleState
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
