package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryFilter selects fuel entries and daily logs by any combination of
// criteria. Zero-valued fields are ignored, set fields are ANDed, so a
// caller can apply several filters simultaneously.
//
// From and To bound the entry's Date and are inclusive of both boundary
// days regardless of the time-of-day on the entry's timestamp.
type EntryFilter struct {
	ProjectID  string
	VehicleID  uuid.UUID
	SupplierID uuid.UUID
	FuelType   FuelType
	Status     RecordStatus
	From       *time.Time
	To         *time.Time
}

// MatchFuel reports whether the fuel entry satisfies every set criterion.
func (f EntryFilter) MatchFuel(e FuelEntry) bool {
	if f.SupplierID != uuid.Nil && e.SupplierID != f.SupplierID {
		return false
	}
	if f.FuelType != "" && e.FuelType != f.FuelType {
		return false
	}
	return f.matchCommon(e.ProjectID, e.VehicleID, e.Status, e.Date)
}

// MatchDailyLog reports whether the daily log satisfies every set criterion.
// Supplier and fuel type criteria do not apply to daily logs and are ignored.
func (f EntryFilter) MatchDailyLog(d DailyLogEntry) bool {
	return f.matchCommon(d.ProjectID, d.VehicleID, d.Status, d.Date)
}

func (f EntryFilter) matchCommon(projectID string, vehicleID uuid.UUID, status RecordStatus, date time.Time) bool {
	if f.ProjectID != "" && projectID != f.ProjectID {
		return false
	}
	if f.VehicleID != uuid.Nil && vehicleID != f.VehicleID {
		return false
	}
	if f.Status != "" && status != f.Status {
		return false
	}
	day := DateOnly(date)
	if f.From != nil && day.Before(DateOnly(*f.From)) {
		return false
	}
	if f.To != nil && day.After(DateOnly(*f.To)) {
		return false
	}
	return true
}
