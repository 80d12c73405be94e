package entity

// TripDriver assigns a driver to a trip.
type TripDriver struct {
	TripDriverID uint    `json:"TripDriverID"`
	Trip         *Trip   `json:"Trip,omitempty" validate:"required,structonly"`
	Driver       *Driver `json:"Driver,omitempty" validate:"required,structonly"`
}
