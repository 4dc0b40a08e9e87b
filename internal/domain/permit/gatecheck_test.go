package permit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/shared/identity"
)

func newTestDetails(t *testing.T) *Details {
	t.Helper()
	d, err := NewDetails(newTestPermit(t), "Jane Visitor", "001-1234567-8", "John Resident", "")
	require.NoError(t, err)
	return d
}

func TestGateCheck(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid permit may check in", func(t *testing.T) {
		d := newTestDetails(t)

		verdict, err := GateCheck(d, now)

		require.NoError(t, err)
		assert.Equal(t, GateValidUnconsumed, verdict.Result)
		assert.Equal(t, "Jane Visitor", verdict.VisitorName)
		assert.Equal(t, "001-1234567-8", verdict.VisitorNationalID)
		assert.Equal(t, "John Resident", verdict.ResidentName)
	})

	t.Run("deactivated permit is rejected", func(t *testing.T) {
		d := newTestDetails(t)
		admin := testActor(t, 1, identity.RoleAdmin)
		require.NoError(t, d.Permit.ToggleLifecycle(admin))

		_, err := GateCheck(d, now)

		assert.ErrorIs(t, err, ErrPermitDeactivated)
	})

	t.Run("expired window is rejected", func(t *testing.T) {
		d := newTestDetails(t)

		_, err := GateCheck(d, d.Permit.ValidUntil().Add(time.Second))

		assert.ErrorIs(t, err, ErrQRExpired)
	})

	t.Run("early arrival is rejected", func(t *testing.T) {
		d := newTestDetails(t)

		_, err := GateCheck(d, d.Permit.ValidFrom().Add(-time.Second))

		assert.ErrorIs(t, err, ErrPermitNotYetValid)
	})

	t.Run("fully consumed permit is rejected", func(t *testing.T) {
		d := newTestDetails(t)
		guard := testActor(t, 3, identity.RoleGuard)
		require.NoError(t, d.Permit.CheckIn(guard))
		require.NoError(t, d.Permit.CheckOut(guard))

		_, err := GateCheck(d, now)

		assert.ErrorIs(t, err, ErrPermitConsumed)
	})

	t.Run("visitor inside yields informational verdict", func(t *testing.T) {
		d := newTestDetails(t)
		guard := testActor(t, 3, identity.RoleGuard)
		require.NoError(t, d.Permit.CheckIn(guard))

		verdict, err := GateCheck(d, now)

		require.NoError(t, err)
		assert.Equal(t, GateValidConsumed, verdict.Result)
	})

	t.Run("deactivation outranks expiry", func(t *testing.T) {
		d := newTestDetails(t)
		admin := testActor(t, 1, identity.RoleAdmin)
		require.NoError(t, d.Permit.ToggleLifecycle(admin))

		_, err := GateCheck(d, d.Permit.ValidUntil().Add(time.Hour))

		assert.ErrorIs(t, err, ErrPermitDeactivated)
	})

	t.Run("verdict is deterministic and does not mutate", func(t *testing.T) {
		d := newTestDetails(t)
		versionBefore := d.Permit.Version()

		first, err := GateCheck(d, now)
		require.NoError(t, err)
		second, err := GateCheck(d, now)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, versionBefore, d.Permit.Version())
	})
}

func TestNewDetails(t *testing.T) {
	t.Run("requires visitor and resident names", func(t *testing.T) {
		p := newTestPermit(t)

		_, err := NewDetails(p, "", "", "John Resident", "")
		assert.Error(t, err)

		_, err = NewDetails(p, "Jane Visitor", "", "", "")
		assert.Error(t, err)
	})

	t.Run("requires supplier name when order is linked", func(t *testing.T) {
		resident := testActor(t, 7, identity.RoleResident)
		orderID := uint(5)
		p, err := NewPermit(
			"qr_with_order", vo.TypeMaintenance, "ac repair",
			time.Now().UTC(), time.Now().UTC().Add(4*time.Hour),
			10, 7, &orderID, resident,
		)
		require.NoError(t, err)
		require.NoError(t, p.SetID(2))

		_, err = NewDetails(p, "Jane Visitor", "", "John Resident", "")
		assert.Error(t, err)

		d, err := NewDetails(p, "Jane Visitor", "", "John Resident", "Cool Air SRL")
		assert.NoError(t, err)
		assert.Equal(t, "Cool Air SRL", d.SupplierName)
	})
}
