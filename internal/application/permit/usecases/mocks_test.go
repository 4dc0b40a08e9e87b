package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portico/internal/domain/order"
	"portico/internal/domain/permit"
	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/domain/resident"
	"portico/internal/domain/visit"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                     {}
func (nopLogger) Info(msg string, args ...any)                      {}
func (nopLogger) Warn(msg string, args ...any)                      {}
func (nopLogger) Error(msg string, args ...any)                     {}
func (l nopLogger) With(args ...any) logger.Interface               { return l }
func (l nopLogger) Named(name string) logger.Interface              { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})   {}

type mockPermitRepository struct {
	mock.Mock
}

func (m *mockPermitRepository) Save(ctx context.Context, p *permit.Permit) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPermitRepository) Update(ctx context.Context, p *permit.Permit) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPermitRepository) FindByID(ctx context.Context, id uint) (*permit.Permit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permit.Permit), args.Error(1)
}

func (m *mockPermitRepository) FindByQRToken(ctx context.Context, token string) (*permit.Permit, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permit.Permit), args.Error(1)
}

func (m *mockPermitRepository) FindDetailsByID(ctx context.Context, id uint) (*permit.Details, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permit.Details), args.Error(1)
}

func (m *mockPermitRepository) FindDetailsByQRToken(ctx context.Context, token string) (*permit.Details, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*permit.Details), args.Error(1)
}

func (m *mockPermitRepository) List(ctx context.Context, filter permit.Filter) ([]*permit.Details, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*permit.Details), args.Get(1).(int64), args.Error(2)
}

type mockVisitRepository struct {
	mock.Mock
}

func (m *mockVisitRepository) FindByID(ctx context.Context, id uint) (*visit.Visit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*visit.Visit), args.Error(1)
}

func (m *mockVisitRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockResidentRepository struct {
	mock.Mock
}

func (m *mockResidentRepository) FindByID(ctx context.Context, id uint) (*resident.Resident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resident.Resident), args.Error(1)
}

func (m *mockResidentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func mustActor(t *testing.T, id uint, role identity.Role) identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func buildPermit(t *testing.T, id uint, opts ...func(*permitSpec)) *permit.Permit {
	t.Helper()
	spec := &permitSpec{
		status:     vo.StatusPending,
		lifecycle:  vo.LifecycleActive,
		validFrom:  time.Now().UTC().Add(-time.Hour),
		validUntil: time.Now().UTC().Add(23 * time.Hour),
	}
	for _, opt := range opts {
		opt(spec)
	}

	p, err := permit.ReconstructPermit(
		id,
		"qr_test"+time.Now().Format("150405.000"),
		vo.TypeVisit,
		spec.status,
		spec.lifecycle,
		"test visit",
		spec.validFrom,
		spec.validUntil,
		spec.entryTime,
		spec.departureTime,
		nil, nil,
		10, 7, nil,
		1,
		time.Now().UTC(), 7,
		time.Now().UTC(), 7,
	)
	require.NoError(t, err)
	return p
}

type permitSpec struct {
	status        vo.PermitStatus
	lifecycle     vo.LifecycleState
	validFrom     time.Time
	validUntil    time.Time
	entryTime     *time.Time
	departureTime *time.Time
}

func withStatus(s vo.PermitStatus) func(*permitSpec) {
	return func(spec *permitSpec) { spec.status = s }
}

func withLifecycle(l vo.LifecycleState) func(*permitSpec) {
	return func(spec *permitSpec) { spec.lifecycle = l }
}

func withWindow(from, until time.Time) func(*permitSpec) {
	return func(spec *permitSpec) {
		spec.validFrom = from
		spec.validUntil = until
	}
}

func withEntry(at time.Time) func(*permitSpec) {
	return func(spec *permitSpec) { spec.entryTime = &at }
}

func withDeparture(at time.Time) func(*permitSpec) {
	return func(spec *permitSpec) { spec.departureTime = &at }
}

func buildDetails(t *testing.T, p *permit.Permit) *permit.Details {
	t.Helper()
	d, err := permit.NewDetails(p, "Jane Visitor", "001-1234567-8", "John Resident", "")
	require.NoError(t, err)
	return d
}
