package entity

// RepairRecord is one repair performed on a vehicle by a mechanic.
//
// Vehicle and Mechanic are semantically essential but intentionally not
// validated as required, matching the behavior of the system this replaces.
type RepairRecord struct {
	RepairRecordID uint      `json:"RepairRecordID"`
	Vehicle        *Vehicle  `json:"Vehicle,omitempty" validate:"omitempty,structonly"`
	Mechanic       *Mechanic `json:"Mechanic,omitempty" validate:"omitempty,structonly"`
	EstimatedTime  float64   `json:"EstimatedTime"`
	ActualCostTime float64   `json:"ActualCostTime"`
}
