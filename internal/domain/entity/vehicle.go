package entity

// Vehicle is a unit of the freight fleet.
//
// NumberOfRepairs is maintained incrementally by the repair record service:
// creating a repair record referencing this vehicle bumps it by one and
// deleting that record takes it back down. It is an audit counter, not a
// recomputed aggregate.
type Vehicle struct {
	VehicleID       uint            `json:"VehicleID"`
	VehicleType     *VehicleType    `json:"VehicleType,omitempty" validate:"omitempty,structonly"`
	Brand           string          `json:"Brand" validate:"required"`
	Load            float64         `json:"Load"`
	Capacity        float64         `json:"Capacity"`
	Year            int             `json:"Year"`
	NumberOfRepairs int             `json:"NumberOfRepairs"`
	RepairRecords   []*RepairRecord `json:"RepairRecords,omitempty" validate:"-"`
	Trips           []*Trip         `json:"Trips,omitempty" validate:"-"`
}
