package model

// EmployeeModel is the GORM struct for the 'employee' table.
type EmployeeModel struct {
	EmployeeID     uint                 `gorm:"column:EmployeeID;primaryKey;autoIncrement"`
	FirstName      string               `gorm:"column:FirstName;type:varchar(255);not null"`
	Surname        string               `gorm:"column:Surname;type:varchar(255);not null"`
	Seniority      int                  `gorm:"column:Seniority;not null"`
	Certifications []CertificationModel `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	Mechanics      []MechanicModel      `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employee"
}
