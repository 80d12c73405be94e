package entity

// Customer is a freight customer.
type Customer struct {
	CustomerID      uint             `json:"CustomerID"`
	CustomerName    string           `json:"CustomerName" validate:"required"`
	CustomerAddress string           `json:"CustomerAddress" validate:"required"`
	CustomerPhones  []*CustomerPhone `json:"CustomerPhones,omitempty" validate:"-"`
	Shipments       []*Shipment      `json:"Shipments,omitempty" validate:"-"`
}
