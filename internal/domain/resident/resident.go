// Package resident holds the resident reference entity, read-only from the
// permit core's perspective.
package resident

import "fmt"

type Resident struct {
	id        uint
	firstName string
	lastName  string
	email     string
}

func ReconstructResident(id uint, firstName, lastName, email string) (*Resident, error) {
	if id == 0 {
		return nil, fmt.Errorf("resident ID cannot be zero")
	}
	if firstName == "" {
		return nil, fmt.Errorf("resident first name is required")
	}

	return &Resident{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
	}, nil
}

func (r *Resident) ID() uint {
	return r.id
}

func (r *Resident) FirstName() string {
	return r.firstName
}

func (r *Resident) LastName() string {
	return r.lastName
}

func (r *Resident) Email() string {
	return r.email
}

func (r *Resident) FullName() string {
	if r.lastName == "" {
		return r.firstName
	}
	return r.firstName + " " + r.lastName
}
