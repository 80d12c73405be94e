package entity

// Employee is a back-office or workshop staff member.
type Employee struct {
	EmployeeID     uint             `json:"EmployeeID"`
	FirstName      string           `json:"FirstName" validate:"required"`
	Surname        string           `json:"Surname" validate:"required"`
	Seniority      int              `json:"Seniority"`
	Certifications []*Certification `json:"Certifications,omitempty" validate:"-"`
	Mechanics      []*Mechanic      `json:"Mechanics,omitempty" validate:"-"`
}
