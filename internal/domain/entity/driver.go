package entity

// Driver operates vehicles on trips.
type Driver struct {
	DriverID    uint          `json:"DriverID"`
	DriverName  string        `json:"DriverName" validate:"required"`
	TripDrivers []*TripDriver `json:"TripDrivers,omitempty" validate:"-"`
}
