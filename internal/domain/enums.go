package domain

// VehicleStatus is the operational state of a vehicle: in service or parked.
type VehicleStatus string

const (
	StatusActive   VehicleStatus = "active"
	StatusInactive VehicleStatus = "inactive"
)

// Valid reports whether s is one of the defined status values.
func (s VehicleStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Negate returns the opposite status. A status change always flips between
// the two values; there is no third state.
func (s VehicleStatus) Negate() VehicleStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// VehicleClass describes how the fleet holds the vehicle. The rent classes
// determine the billing unit used for rent cost calculations.
type VehicleClass string

const (
	ClassOwned       VehicleClass = "owned"
	ClassRentMonthly VehicleClass = "rent_monthly"
	ClassRentDaily   VehicleClass = "rent_daily"
	ClassRentHourly  VehicleClass = "rent_hourly"
)

// Valid reports whether c is one of the defined class values.
func (c VehicleClass) Valid() bool {
	switch c {
	case ClassOwned, ClassRentMonthly, ClassRentDaily, ClassRentHourly:
		return true
	}
	return false
}

// IsRental reports whether the class denotes a rental arrangement.
func (c VehicleClass) IsRental() bool {
	return c == ClassRentMonthly || c == ClassRentDaily || c == ClassRentHourly
}

// FuelType is the fuel a vehicle runs on. Copied onto each fuel entry at
// creation time so historical entries keep the type the vehicle had then.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
)

// Valid reports whether f is one of the defined fuel types.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelCNG, FuelElectric:
		return true
	}
	return false
}

// RecordStatus is the lifecycle phase of a fuel entry or daily log.
// A record is created open and transitions exactly once to closed.
type RecordStatus string

const (
	RecordOpen   RecordStatus = "open"
	RecordClosed RecordStatus = "closed"
)
