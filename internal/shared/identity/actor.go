// Package identity carries the acting caller identity through mutating
// operations. Audit fields are stamped from an explicit Actor, never from
// a hidden global default.
package identity

// Role describes the coarse authorization role of an actor.
type Role string

const (
	RoleResident Role = "resident"
	RoleGuard    Role = "guard"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleResident, RoleGuard, RoleAdmin:
		return true
	}
	return false
}

// Actor identifies an authenticated caller. The zero value is not a valid
// actor; mutating operations must reject it.
type Actor struct {
	UserID uint
	Role   Role
}

// NewActor builds an Actor, validating both fields.
func NewActor(userID uint, role Role) (Actor, error) {
	if userID == 0 {
		return Actor{}, ErrMissingActor
	}
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{UserID: userID, Role: role}, nil
}

// IsZero reports whether the actor is unset.
func (a Actor) IsZero() bool {
	return a.UserID == 0
}

// Can reports whether the actor holds one of the given roles.
func (a Actor) Can(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
