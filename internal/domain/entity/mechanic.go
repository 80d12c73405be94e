package entity

// Mechanic is an employee acting as a mechanic for one vehicle type.
type Mechanic struct {
	MechanicID    uint            `json:"MechanicID"`
	Employee      *Employee       `json:"Employee,omitempty" validate:"required,structonly"`
	VehicleType   *VehicleType    `json:"VehicleType,omitempty" validate:"required,structonly"`
	RepairRecords []*RepairRecord `json:"RepairRecords,omitempty" validate:"-"`
}
