package model

// CustomerModel is the GORM struct for the 'customer' table.
type CustomerModel struct {
	CustomerID      uint                 `gorm:"column:CustomerID;primaryKey;autoIncrement"`
	CustomerName    string               `gorm:"column:CustomerName;type:varchar(255);not null"`
	CustomerAddress string               `gorm:"column:CustomerAddress;type:varchar(255);not null"`
	CustomerPhones  []CustomerPhoneModel `gorm:"foreignKey:CustomerID;references:CustomerID"`
	Shipments       []ShipmentModel      `gorm:"foreignKey:CustomerID;references:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customer"
}
