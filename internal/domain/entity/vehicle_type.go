// Package entity contains the core business objects of the project.
//
// Field names double as wire names: the JSON keys are the case-preserving
// identifiers the relational schema uses (VehicleTypeID, VehicleTypeName, ...).
// Validate tags encode the required-field table; reference fields carry
// structonly so a bare {<ID>: n} stub satisfies them, and collection fields
// are excluded from validation entirely.
package entity

// VehicleType categorizes vehicles (cargo planes, in-city trucks, ...).
type VehicleType struct {
	VehicleTypeID   uint       `json:"VehicleTypeID"`
	VehicleTypeName string     `json:"VehicleTypeName" validate:"required"`
	Vehicles        []*Vehicle `json:"Vehicles,omitempty" validate:"-"`
}
