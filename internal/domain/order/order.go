// Package order holds the service-order reference entity. Maintenance
// permits may link to one; the permit core only reads the supplier name.
package order

import "fmt"

type Order struct {
	id           uint
	supplierName string
}

func ReconstructOrder(id uint, supplierName string) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}

	return &Order{
		id:           id,
		supplierName: supplierName,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) SupplierName() string {
	return o.supplierName
}
