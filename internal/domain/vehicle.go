// Package domain contains the core data types for the fleet fuel tracker.
// This package has no dependencies on the rest of the module and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a fleet vehicle belonging to a project. Its operational state
// over time is the Periods slice: an ordered, contiguous, non-overlapping
// sequence of StatusPeriod records in which only the last may be open-ended.
//
// There is no stored "current status" field. The current status, its start
// date and its end date are projections over the last period, so the history
// and the current state can never disagree.
type Vehicle struct {
	ID           uuid.UUID      `json:"id"`
	ProjectID    string         `json:"project_id"`
	Name         string         `json:"name"`
	Registration string         `json:"registration"`
	Class        VehicleClass   `json:"class"`
	FuelType     FuelType       `json:"fuel_type"`
	RentalRate   float64        `json:"rental_rate,omitempty"` // per billing unit; 0 for owned vehicles
	Periods      []StatusPeriod `json:"periods"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// StatusPeriod is a bounded or open-ended interval during which the vehicle
// held a single status. EndDate is nil while the period is ongoing. A period
// is immutable once closed: an end date, once set, is never revised.
type StatusPeriod struct {
	Status    VehicleStatus `json:"status"`
	StartDate time.Time     `json:"start_date"`
	EndDate   *time.Time    `json:"end_date,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

// DurationDays returns the inclusive day count of the period: both the start
// and end day are counted, so a period from day 1 to day 10 lasts 10 days.
// Open periods are measured up to now.
func (p StatusPeriod) DurationDays(now time.Time) int {
	end := now
	if p.EndDate != nil {
		end = *p.EndDate
	}
	return DaysBetween(p.StartDate, end) + 1
}

// CurrentPeriod returns the last status period. The second return is false
// for a vehicle with no history, which never occurs through the public
// contract (registration always creates the first period).
func (v Vehicle) CurrentPeriod() (StatusPeriod, bool) {
	if len(v.Periods) == 0 {
		return StatusPeriod{}, false
	}
	return v.Periods[len(v.Periods)-1], true
}

// Status returns the vehicle's current status, projected from the last period.
func (v Vehicle) Status() VehicleStatus {
	p, ok := v.CurrentPeriod()
	if !ok {
		return StatusInactive
	}
	return p.Status
}

// StatusSince returns the start date of the current period.
func (v Vehicle) StatusSince() time.Time {
	p, _ := v.CurrentPeriod()
	return p.StartDate
}

// HeldFrom returns the date the vehicle entered the fleet: the start of the
// first status period.
func (v Vehicle) HeldFrom() time.Time {
	if len(v.Periods) == 0 {
		return time.Time{}
	}
	return v.Periods[0].StartDate
}

// HeldUntil returns the end of the vehicle's timeline: the current period's
// end date, or now while the current period is still open.
func (v Vehicle) HeldUntil(now time.Time) time.Time {
	p, ok := v.CurrentPeriod()
	if !ok || p.EndDate == nil {
		return now
	}
	return *p.EndDate
}

// Supplier is a fuel supplier a project buys from. It has no lifecycle
// beyond create and delete.
type Supplier struct {
	ID        uuid.UUID `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
