package entity

// CustomerPhone is one phone number of a customer.
type CustomerPhone struct {
	CustomerPhoneID uint      `json:"CustomerPhoneID"`
	Customer        *Customer `json:"Customer,omitempty" validate:"required,structonly"`
	PhoneNumber     string    `json:"PhoneNumber" validate:"required"`
}
