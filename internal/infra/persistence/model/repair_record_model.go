package model

// RepairRecordModel is the GORM struct for the 'repair_record' table.
type RepairRecordModel struct {
	RepairRecordID uint           `gorm:"column:RepairRecordID;primaryKey;autoIncrement"`
	VehicleID      *uint          `gorm:"column:VehicleID;index"`
	Vehicle        *VehicleModel  `gorm:"foreignKey:VehicleID;references:VehicleID"`
	MechanicID     *uint          `gorm:"column:MechanicID;index"`
	Mechanic       *MechanicModel `gorm:"foreignKey:MechanicID;references:MechanicID"`
	EstimatedTime  float64        `gorm:"column:EstimatedTime;not null"`
	ActualCostTime float64        `gorm:"column:ActualCostTime;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RepairRecordModel) TableName() string {
	return "repair_record"
}
