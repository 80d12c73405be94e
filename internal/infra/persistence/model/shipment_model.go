package model

// ShipmentModel is the GORM struct for the 'shipment' table.
type ShipmentModel struct {
	ShipmentID       uint           `gorm:"column:ShipmentID;primaryKey;autoIncrement"`
	CustomerID       *uint          `gorm:"column:CustomerID;index"`
	Customer         *CustomerModel `gorm:"foreignKey:CustomerID;references:CustomerID"`
	Weight           float64        `gorm:"column:Weight;not null"`
	Value            float64        `gorm:"column:Value;not null"`
	OriginPlace      string         `gorm:"column:OriginPlace;type:varchar(255);not null"`
	DestinationPlace string         `gorm:"column:DestinationPlace;type:varchar(255);not null"`
	Trips            []TripModel    `gorm:"foreignKey:ShipmentID;references:ShipmentID"`
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipment"
}
