package model

// MechanicModel is the GORM struct for the 'mechanic' table.
type MechanicModel struct {
	MechanicID    uint                `gorm:"column:MechanicID;primaryKey;autoIncrement"`
	EmployeeID    *uint               `gorm:"column:EmployeeID;index"`
	Employee      *EmployeeModel      `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	VehicleTypeID *uint               `gorm:"column:VehicleTypeID;index"`
	VehicleType   *VehicleTypeModel   `gorm:"foreignKey:VehicleTypeID;references:VehicleTypeID"`
	RepairRecords []RepairRecordModel `gorm:"foreignKey:MechanicID;references:MechanicID"`
}

// TableName explicitly sets the table name for GORM.
func (MechanicModel) TableName() string {
	return "mechanic"
}
