package entity

// Shipment is a load of goods a customer wants moved.
type Shipment struct {
	ShipmentID       uint      `json:"ShipmentID"`
	Customer         *Customer `json:"Customer,omitempty" validate:"required,structonly"`
	Weight           float64   `json:"Weight"`
	Value            float64   `json:"Value"`
	OriginPlace      string    `json:"OriginPlace" validate:"required"`
	DestinationPlace string    `json:"DestinationPlace" validate:"required"`
	Trips            []*Trip   `json:"Trips,omitempty" validate:"-"`
}
