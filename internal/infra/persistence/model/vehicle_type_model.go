// Package model holds the GORM-specific structs for the relational schema.
//
// Column names are case-preserving identifiers matching the entity field
// names ("VehicleTypeID", "Brand", ...); table names are snake_case. The
// models never leave the persistence layer — repositories map them to and
// from domain entities.
package model

// VehicleTypeModel is the GORM struct for the 'vehicle_type' table.
type VehicleTypeModel struct {
	VehicleTypeID   uint           `gorm:"column:VehicleTypeID;primaryKey;autoIncrement"`
	VehicleTypeName string         `gorm:"column:VehicleTypeName;type:varchar(255);not null"`
	Vehicles        []VehicleModel `gorm:"foreignKey:VehicleTypeID;references:VehicleTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleTypeModel) TableName() string {
	return "vehicle_type"
}
