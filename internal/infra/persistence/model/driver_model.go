package model

// DriverModel is the GORM struct for the 'driver' table.
type DriverModel struct {
	DriverID    uint              `gorm:"column:DriverID;primaryKey;autoIncrement"`
	DriverName  string            `gorm:"column:DriverName;type:varchar(255);not null"`
	TripDrivers []TripDriverModel `gorm:"foreignKey:DriverID;references:DriverID"`
}

// TableName explicitly sets the table name for GORM.
func (DriverModel) TableName() string {
	return "driver"
}
