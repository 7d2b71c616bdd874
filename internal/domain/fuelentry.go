package domain

import (
	"time"

	"github.com/google/uuid"
)

// FuelEntry is a single refueling event with a two-phase odometer trip.
// It is created open, with the opening reading recorded and the litres
// already dispensed, and closed exactly once when the closing reading is
// known. Distance, Mileage and ClosingKm are zero placeholders while open;
// they are the only fields ever computed rather than user-supplied
// (TotalCost is derived at open time when a unit price was given).
//
// FuelType is copied from the vehicle at creation time, not live-linked, so
// entries keep the type the vehicle had when they were recorded.
type FuelEntry struct {
	ID            uuid.UUID    `json:"id"`
	ProjectID     string       `json:"project_id"`
	VehicleID     uuid.UUID    `json:"vehicle_id"`
	SupplierID    uuid.UUID    `json:"supplier_id"`
	FuelType      FuelType     `json:"fuel_type"`
	Date          time.Time    `json:"date"`
	Litres        float64      `json:"litres"`
	PricePerLitre float64      `json:"price_per_litre,omitempty"`
	TotalCost     float64      `json:"total_cost,omitempty"`
	OpeningKm     float64      `json:"opening_km"`
	ClosingKm     float64      `json:"closing_km,omitempty"`
	Distance      float64      `json:"distance,omitempty"`
	Mileage       float64      `json:"mileage,omitempty"`
	Status        RecordStatus `json:"status"`
	OpeningPhoto  string       `json:"opening_photo,omitempty"` // opaque blob reference
	ClosingPhoto  string       `json:"closing_photo,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// DailyLogEntry is an odometer-only trip record, structurally parallel to
// FuelEntry but without quantity or cost. It exists to cross-check
// odometer-derived distance against fuel-entry-derived distance for the
// same vehicle.
type DailyLogEntry struct {
	ID           uuid.UUID    `json:"id"`
	ProjectID    string       `json:"project_id"`
	VehicleID    uuid.UUID    `json:"vehicle_id"`
	Date         time.Time    `json:"date"`
	OpeningKm    float64      `json:"opening_km"`
	ClosingKm    float64      `json:"closing_km,omitempty"`
	Distance     float64      `json:"distance,omitempty"`
	Status       RecordStatus `json:"status"`
	OpeningPhoto string       `json:"opening_photo,omitempty"`
	ClosingPhoto string       `json:"closing_photo,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
