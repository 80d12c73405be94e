package model

// All lists every model in dependency order, for AutoMigrate: referenced
// tables come before the tables that carry their foreign keys.
func All() []any {
	return []any{
		&VehicleTypeModel{},
		&VehicleModel{},
		&EmployeeModel{},
		&CertificationModel{},
		&MechanicModel{},
		&RepairRecordModel{},
		&CustomerModel{},
		&CustomerPhoneModel{},
		&ShipmentModel{},
		&TripModel{},
		&DriverModel{},
		&TripDriverModel{},
	}
}
