package domain

import (
	"time"

	"github.com/google/uuid"
)

// VehicleSummary is the full derived picture of one vehicle's fuel usage.
//
// TotalDistance sums closed entries only, while TotalLitres and TotalCost
// sum all entries: fuel is consumed (and paid for) the moment an entry is
// opened, but the distance it bought is only known at close. AvgMileage
// therefore dips while a trip is still open.
//
// The DailyLog fields are the same figures derived from the independent
// daily-log odometer trail; KmDifference and MileageDifference surface the
// discrepancy between the two trails.
type VehicleSummary struct {
	VehicleID     uuid.UUID `json:"vehicle_id"`
	EntryCount    int       `json:"entry_count"`
	TotalDistance float64   `json:"total_distance"`
	TotalLitres   float64   `json:"total_litres"`
	TotalCost     float64   `json:"total_cost"`
	AvgMileage    float64   `json:"avg_mileage"`

	DailyLogCount      int     `json:"daily_log_count"`
	DailyLogTotalKm    float64 `json:"daily_log_total_km"`
	DailyLogAvgMileage float64 `json:"daily_log_avg_mileage"`
	KmDifference       float64 `json:"km_difference"`
	MileageDifference  float64 `json:"mileage_difference"`

	// Rent is set only for vehicles whose class denotes a rental arrangement.
	Rent *RentCost `json:"rent,omitempty"`
}

// RentCost is the rental charge for a vehicle over the time the fleet has
// held it. Units is the billed unit count after rounding up to the next
// whole billing unit (month, day or hour depending on the vehicle class).
type RentCost struct {
	Days  int     `json:"days"`
	Units int     `json:"units"`
	Rate  float64 `json:"rate"`
	Total float64 `json:"total"`
}

// ProjectSummary aggregates fuel usage across all vehicles of a project.
type ProjectSummary struct {
	ProjectID     string  `json:"project_id"`
	VehicleCount  int     `json:"vehicle_count"`
	EntryCount    int     `json:"entry_count"`
	TotalDistance float64 `json:"total_distance"`
	TotalLitres   float64 `json:"total_litres"`
	TotalCost     float64 `json:"total_cost"`
	AvgMileage    float64 `json:"avg_mileage"`
	TotalRentCost float64 `json:"total_rent_cost"`
}

// FuelTypeSummary aggregates fuel entries sharing one fuel type.
type FuelTypeSummary struct {
	FuelType      FuelType `json:"fuel_type"`
	EntryCount    int      `json:"entry_count"`
	TotalDistance float64  `json:"total_distance"`
	TotalLitres   float64  `json:"total_litres"`
	TotalCost     float64  `json:"total_cost"`
	AvgMileage    float64  `json:"avg_mileage"`
}

// DaySummary aggregates fuel entries recorded on one calendar day.
// Day is midnight UTC of that day.
type DaySummary struct {
	Day           time.Time `json:"day"`
	EntryCount    int       `json:"entry_count"`
	TotalDistance float64   `json:"total_distance"`
	TotalLitres   float64   `json:"total_litres"`
	TotalCost     float64   `json:"total_cost"`
}
