package model

// TripModel is the GORM struct for the 'trip' table.
type TripModel struct {
	TripID      uint              `gorm:"column:TripID;primaryKey;autoIncrement"`
	VehicleID   *uint             `gorm:"column:VehicleID;index"`
	Vehicle     *VehicleModel     `gorm:"foreignKey:VehicleID;references:VehicleID"`
	ShipmentID  *uint             `gorm:"column:ShipmentID;index"`
	Shipment    *ShipmentModel    `gorm:"foreignKey:ShipmentID;references:ShipmentID"`
	FromPlace   string            `gorm:"column:FromPlace;type:varchar(255);not null"`
	ToPlace     string            `gorm:"column:ToPlace;type:varchar(255);not null"`
	TripDrivers []TripDriverModel `gorm:"foreignKey:TripID;references:TripID"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trip"
}
