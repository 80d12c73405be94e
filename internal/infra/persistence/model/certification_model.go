package model

// CertificationModel is the GORM struct for the 'certification' table.
type CertificationModel struct {
	CertificationID uint              `gorm:"column:CertificationID;primaryKey;autoIncrement"`
	EmployeeID      *uint             `gorm:"column:EmployeeID;index"`
	Employee        *EmployeeModel    `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	VehicleTypeID   *uint             `gorm:"column:VehicleTypeID;index"`
	VehicleType     *VehicleTypeModel `gorm:"foreignKey:VehicleTypeID;references:VehicleTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (CertificationModel) TableName() string {
	return "certification"
}
