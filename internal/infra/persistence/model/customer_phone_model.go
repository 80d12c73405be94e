package model

// CustomerPhoneModel is the GORM struct for the 'customer_phone' table.
type CustomerPhoneModel struct {
	CustomerPhoneID uint           `gorm:"column:CustomerPhoneID;primaryKey;autoIncrement"`
	CustomerID      *uint          `gorm:"column:CustomerID;index"`
	Customer        *CustomerModel `gorm:"foreignKey:CustomerID;references:CustomerID"`
	PhoneNumber     string         `gorm:"column:PhoneNumber;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerPhoneModel) TableName() string {
	return "customer_phone"
}
