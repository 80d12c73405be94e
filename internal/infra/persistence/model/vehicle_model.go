package model

// VehicleModel is the GORM struct for the 'vehicle' table.
type VehicleModel struct {
	VehicleID       uint              `gorm:"column:VehicleID;primaryKey;autoIncrement"`
	VehicleTypeID   *uint             `gorm:"column:VehicleTypeID;index"`
	VehicleType     *VehicleTypeModel `gorm:"foreignKey:VehicleTypeID;references:VehicleTypeID"`
	Brand           string            `gorm:"column:Brand;type:varchar(255);not null"`
	Load            float64           `gorm:"column:Load;not null"`
	Capacity        float64           `gorm:"column:Capacity;not null"`
	Year            int               `gorm:"column:Year;not null"`
	NumberOfRepairs int               `gorm:"column:NumberOfRepairs;not null;default:0"`
	RepairRecords   []RepairRecordModel `gorm:"foreignKey:VehicleID;references:VehicleID"`
	Trips           []TripModel         `gorm:"foreignKey:VehicleID;references:VehicleID"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicle"
}
