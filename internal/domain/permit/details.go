package permit

import "fmt"

// Details is the joined read model of a permit: the permit itself plus the
// fully populated reference data the gate officer needs. Repositories that
// return Details guarantee every required reference is loaded; consumers
// never rebuild the view from a partially loaded record.
type Details struct {
	Permit            *Permit
	VisitorName       string
	VisitorNationalID string
	ResidentName      string
	SupplierName      string
}

// NewDetails validates the joined view. The supplier name is only present
// for permits tied to a service order.
func NewDetails(p *Permit, visitorName, visitorNationalID, residentName, supplierName string) (*Details, error) {
	if p == nil {
		return nil, fmt.Errorf("permit is required")
	}
	if visitorName == "" {
		return nil, fmt.Errorf("visitor name must be loaded for permit %d", p.ID())
	}
	if residentName == "" {
		return nil, fmt.Errorf("resident name must be loaded for permit %d", p.ID())
	}
	if p.OrderID() != nil && supplierName == "" {
		return nil, fmt.Errorf("supplier name must be loaded for permit %d", p.ID())
	}

	return &Details{
		Permit:            p,
		VisitorName:       visitorName,
		VisitorNationalID: visitorNationalID,
		ResidentName:      residentName,
		SupplierName:      supplierName,
	}, nil
}
