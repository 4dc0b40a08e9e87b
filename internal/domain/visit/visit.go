// Package visit holds the visitor reference entity. Permits only need the
// visitor's display name and national ID; the full visit lifecycle is
// managed elsewhere and read-only here.
package visit

import "fmt"

type Visit struct {
	id         uint
	firstName  string
	lastName   string
	nationalID string
}

func ReconstructVisit(id uint, firstName, lastName, nationalID string) (*Visit, error) {
	if id == 0 {
		return nil, fmt.Errorf("visit ID cannot be zero")
	}
	if firstName == "" {
		return nil, fmt.Errorf("visitor first name is required")
	}

	return &Visit{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		nationalID: nationalID,
	}, nil
}

func (v *Visit) ID() uint {
	return v.id
}

func (v *Visit) FirstName() string {
	return v.firstName
}

func (v *Visit) LastName() string {
	return v.lastName
}

func (v *Visit) NationalID() string {
	return v.nationalID
}

// FullName returns the visitor's display name.
func (v *Visit) FullName() string {
	if v.lastName == "" {
		return v.firstName
	}
	return v.firstName + " " + v.lastName
}
