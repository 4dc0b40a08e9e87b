package permit

import (
	"fmt"
	"time"

	vo "portico/internal/domain/permit/valueobjects"
	"portico/internal/shared/identity"
)

// Permit is an entry permission authorizing one visit into the community.
// The QR token is minted once at creation and never changes. The functional
// status and the administrative lifecycle state are tracked independently.
type Permit struct {
	id             uint
	qrToken        string
	permissionType vo.PermissionType
	status         vo.PermitStatus
	lifecycle      vo.LifecycleState
	description    string
	validFrom      time.Time
	validUntil     time.Time
	entryTime      *time.Time
	departureTime  *time.Time
	checkInBy      *uint
	checkOutBy     *uint
	visitID        uint
	residentID     uint
	orderID        *uint
	version        int
	createdAt      time.Time
	createdBy      uint
	updatedAt      time.Time
	updatedBy      uint
}

// PermitChanges carries partial-update fields. Nil fields are left untouched.
type PermitChanges struct {
	Description    *string
	PermissionType *vo.PermissionType
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	EntryTime      *time.Time
	DepartureTime  *time.Time
	OrderID        *uint
}

func NewPermit(
	qrToken string,
	permissionType vo.PermissionType,
	description string,
	validFrom time.Time,
	validUntil time.Time,
	visitID uint,
	residentID uint,
	orderID *uint,
	createdBy identity.Actor,
) (*Permit, error) {
	if len(qrToken) == 0 {
		return nil, fmt.Errorf("QR token is required")
	}
	if !permissionType.IsValid() {
		return nil, fmt.Errorf("invalid permission type")
	}
	if validFrom.IsZero() {
		return nil, fmt.Errorf("valid-from time is required")
	}
	if validUntil.IsZero() {
		return nil, fmt.Errorf("valid-until time is required")
	}
	if !validUntil.After(validFrom) {
		return nil, fmt.Errorf("valid-until must be after valid-from")
	}
	if visitID == 0 {
		return nil, fmt.Errorf("visit ID is required")
	}
	if residentID == 0 {
		return nil, fmt.Errorf("resident ID is required")
	}
	if orderID != nil && *orderID == 0 {
		return nil, fmt.Errorf("order ID cannot be zero when provided")
	}
	if createdBy.IsZero() {
		return nil, identity.ErrMissingActor
	}

	now := time.Now().UTC()

	return &Permit{
		qrToken:        qrToken,
		permissionType: permissionType,
		status:         vo.StatusPending,
		lifecycle:      vo.LifecycleActive,
		description:    description,
		validFrom:      validFrom.UTC(),
		validUntil:     validUntil.UTC(),
		visitID:        visitID,
		residentID:     residentID,
		orderID:        orderID,
		version:        1,
		createdAt:      now,
		createdBy:      createdBy.UserID,
		updatedAt:      now,
		updatedBy:      createdBy.UserID,
	}, nil
}

func ReconstructPermit(
	id uint,
	qrToken string,
	permissionType vo.PermissionType,
	status vo.PermitStatus,
	lifecycle vo.LifecycleState,
	description string,
	validFrom time.Time,
	validUntil time.Time,
	entryTime *time.Time,
	departureTime *time.Time,
	checkInBy *uint,
	checkOutBy *uint,
	visitID uint,
	residentID uint,
	orderID *uint,
	version int,
	createdAt time.Time,
	createdBy uint,
	updatedAt time.Time,
	updatedBy uint,
) (*Permit, error) {
	if id == 0 {
		return nil, fmt.Errorf("permit ID cannot be zero")
	}
	if len(qrToken) == 0 {
		return nil, fmt.Errorf("QR token is required")
	}
	if !permissionType.IsValid() {
		return nil, fmt.Errorf("invalid permission type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid permit status")
	}
	if !lifecycle.IsValid() {
		return nil, fmt.Errorf("invalid lifecycle state")
	}
	if version < 1 {
		return nil, fmt.Errorf("version must be at least 1")
	}

	return &Permit{
		id:             id,
		qrToken:        qrToken,
		permissionType: permissionType,
		status:         status,
		lifecycle:      lifecycle,
		description:    description,
		validFrom:      validFrom,
		validUntil:     validUntil,
		entryTime:      entryTime,
		departureTime:  departureTime,
		checkInBy:      checkInBy,
		checkOutBy:     checkOutBy,
		visitID:        visitID,
		residentID:     residentID,
		orderID:        orderID,
		version:        version,
		createdAt:      createdAt,
		createdBy:      createdBy,
		updatedAt:      updatedAt,
		updatedBy:      updatedBy,
	}, nil
}

func (p *Permit) ID() uint {
	return p.id
}

func (p *Permit) QRToken() string {
	return p.qrToken
}

func (p *Permit) PermissionType() vo.PermissionType {
	return p.permissionType
}

func (p *Permit) Status() vo.PermitStatus {
	return p.status
}

func (p *Permit) Lifecycle() vo.LifecycleState {
	return p.lifecycle
}

func (p *Permit) Description() string {
	return p.description
}

func (p *Permit) ValidFrom() time.Time {
	return p.validFrom
}

func (p *Permit) ValidUntil() time.Time {
	return p.validUntil
}

func (p *Permit) EntryTime() *time.Time {
	return p.entryTime
}

func (p *Permit) DepartureTime() *time.Time {
	return p.departureTime
}

func (p *Permit) CheckInBy() *uint {
	return p.checkInBy
}

func (p *Permit) CheckOutBy() *uint {
	return p.checkOutBy
}

func (p *Permit) VisitID() uint {
	return p.visitID
}

func (p *Permit) ResidentID() uint {
	return p.residentID
}

func (p *Permit) OrderID() *uint {
	return p.orderID
}

func (p *Permit) Version() int {
	return p.version
}

func (p *Permit) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permit) CreatedBy() uint {
	return p.createdBy
}

func (p *Permit) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Permit) UpdatedBy() uint {
	return p.updatedBy
}

func (p *Permit) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permit ID cannot be zero")
	}
	p.id = id
	return nil
}

// CheckIn registers the visitor's entry. The entry time is set exactly once;
// a second call is rejected so duplicate gate scans surface as errors.
func (p *Permit) CheckIn(guard identity.Actor) error {
	if guard.IsZero() {
		return identity.ErrMissingActor
	}
	if p.entryTime != nil {
		return ErrEntryAlreadyRegistered
	}

	now := time.Now().UTC()
	p.entryTime = &now
	p.checkInBy = &guard.UserID

	if p.status.IsPending() {
		p.status = vo.StatusCompleted
	}

	p.touch(guard, now)
	return nil
}

// CheckOut registers the visitor's exit. Requires a prior check-in and is
// set exactly once.
func (p *Permit) CheckOut(guard identity.Actor) error {
	if guard.IsZero() {
		return identity.ErrMissingActor
	}
	if p.entryTime == nil {
		return ErrCheckOutBeforeCheckIn
	}
	if p.departureTime != nil {
		return ErrExitAlreadyRegistered
	}

	now := time.Now().UTC()
	p.departureTime = &now
	p.checkOutBy = &guard.UserID
	p.status = vo.StatusCompleted

	p.touch(guard, now)
	return nil
}

// ApplyChanges performs a partial update and then re-evaluates the status
// transition rules in fixed order:
//  1. entry time newly set while pending -> completed
//  2. departure time newly set -> completed
//  3. otherwise, still pending past valid-until -> expired
func (p *Permit) ApplyChanges(changes PermitChanges, actor identity.Actor) error {
	if actor.IsZero() {
		return identity.ErrMissingActor
	}

	now := time.Now().UTC()

	if changes.Description != nil {
		p.description = *changes.Description
	}
	if changes.PermissionType != nil {
		if !changes.PermissionType.IsValid() {
			return fmt.Errorf("invalid permission type")
		}
		p.permissionType = *changes.PermissionType
	}
	if changes.ValidFrom != nil {
		p.validFrom = changes.ValidFrom.UTC()
	}
	if changes.ValidUntil != nil {
		p.validUntil = changes.ValidUntil.UTC()
	}
	// The effective window must stay ordered even when only one bound moves.
	if (changes.ValidFrom != nil || changes.ValidUntil != nil) && !p.validUntil.After(p.validFrom) {
		return ErrInvalidValidityWindow
	}
	if changes.OrderID != nil {
		if *changes.OrderID == 0 {
			return fmt.Errorf("order ID cannot be zero when provided")
		}
		p.orderID = changes.OrderID
	}

	entrySet := false
	if changes.EntryTime != nil {
		if p.entryTime != nil {
			return ErrEntryAlreadyRegistered
		}
		t := changes.EntryTime.UTC()
		p.entryTime = &t
		entrySet = true
	}

	departureSet := false
	if changes.DepartureTime != nil {
		if p.entryTime == nil {
			return ErrCheckOutBeforeCheckIn
		}
		if p.departureTime != nil {
			return ErrExitAlreadyRegistered
		}
		t := changes.DepartureTime.UTC()
		p.departureTime = &t
		departureSet = true
	}
	if (entrySet || departureSet) && p.entryTime != nil && p.departureTime != nil &&
		!p.departureTime.After(*p.entryTime) {
		return ErrDepartureBeforeEntry
	}

	switch {
	case entrySet && p.status.IsPending():
		p.status = vo.StatusCompleted
	case departureSet:
		p.status = vo.StatusCompleted
	case p.status.IsPending() && now.After(p.validUntil):
		p.status = vo.StatusExpired
	}

	p.touch(actor, now)
	return nil
}

// EffectiveStatus reports the status as of now, applying the expiry rule
// without mutating the permit. Listing projections use it so a pending
// permit past its window reads as expired without a write per row.
func (p *Permit) EffectiveStatus(now time.Time) vo.PermitStatus {
	if p.status.IsPending() && now.After(p.validUntil) {
		return vo.StatusExpired
	}
	return p.status
}

// RefreshExpiry applies the lazy expiry rule on read paths. It reports
// whether the permit transitioned so the caller knows to persist.
func (p *Permit) RefreshExpiry(actor identity.Actor, now time.Time) bool {
	if !p.status.IsPending() || !now.After(p.validUntil) {
		return false
	}
	p.status = vo.StatusExpired
	p.touch(actor, now.UTC())
	return true
}

// ToggleLifecycle flips the administrative active/inactive flag. Moving to
// inactive forces the functional status to cancelled; moving back to active
// resets it to pending. This overrides the ordinary transition rules.
func (p *Permit) ToggleLifecycle(actor identity.Actor) error {
	if actor.IsZero() {
		return identity.ErrMissingActor
	}

	now := time.Now().UTC()
	p.lifecycle = p.lifecycle.Toggled()

	if p.lifecycle.IsActive() {
		p.status = vo.StatusPending
	} else {
		p.status = vo.StatusCancelled
	}

	p.touch(actor, now)
	return nil
}

// ChangeStatus moves the functional status along the transition table.
// Used by administrative updates that set status explicitly.
func (p *Permit) ChangeStatus(newStatus vo.PermitStatus, actor identity.Actor) error {
	if actor.IsZero() {
		return identity.ErrMissingActor
	}
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid permit status: %s", newStatus)
	}
	if p.status == newStatus {
		return nil
	}
	if !p.status.CanTransitionTo(newStatus) {
		return ErrInvalidTransition(p.status.String(), newStatus.String())
	}

	p.status = newStatus
	p.touch(actor, time.Now().UTC())
	return nil
}

// IsConsumed reports whether both movement events have been recorded.
func (p *Permit) IsConsumed() bool {
	return p.entryTime != nil && p.departureTime != nil
}

func (p *Permit) touch(actor identity.Actor, now time.Time) {
	p.updatedAt = now
	p.updatedBy = actor.UserID
	p.version++
}
