package model

// TripDriverModel is the GORM struct for the 'trip_driver' table.
type TripDriverModel struct {
	TripDriverID uint         `gorm:"column:TripDriverID;primaryKey;autoIncrement"`
	TripID       *uint        `gorm:"column:TripID;index"`
	Trip         *TripModel   `gorm:"foreignKey:TripID;references:TripID"`
	DriverID     *uint        `gorm:"column:DriverID;index"`
	Driver       *DriverModel `gorm:"foreignKey:DriverID;references:DriverID"`
}

// TableName explicitly sets the table name for GORM.
func (TripDriverModel) TableName() string {
	return "trip_driver"
}
