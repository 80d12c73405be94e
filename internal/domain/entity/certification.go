package entity

// Certification links an employee to a vehicle type they are certified for.
type Certification struct {
	CertificationID uint         `json:"CertificationID"`
	Employee        *Employee    `json:"Employee,omitempty" validate:"required,structonly"`
	VehicleType     *VehicleType `json:"VehicleType,omitempty" validate:"required,structonly"`
}
