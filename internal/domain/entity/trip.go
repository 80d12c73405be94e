package entity

// Trip is one leg of moving a shipment with a vehicle.
type Trip struct {
	TripID      uint          `json:"TripID"`
	Vehicle     *Vehicle      `json:"Vehicle,omitempty" validate:"required,structonly"`
	Shipment    *Shipment     `json:"Shipment,omitempty" validate:"required,structonly"`
	FromPlace   string        `json:"FromPlace" validate:"required"`
	ToPlace     string        `json:"ToPlace" validate:"required"`
	TripDrivers []*TripDriver `json:"TripDrivers,omitempty" validate:"-"`
}
