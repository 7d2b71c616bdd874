package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/manigandan-posana/fuel/internal/domain"
)

func TestEntryFilter_ZeroFilterMatchesEverything(t *testing.T) {
	entry := domain.FuelEntry{ProjectID: "p1", VehicleID: uuid.New(), Status: domain.RecordOpen}

	assert.True(t, domain.EntryFilter{}.MatchFuel(entry))
}

func TestEntryFilter_CriteriaCompose(t *testing.T) {
	vehicleID := uuid.New()
	supplierID := uuid.New()
	entry := domain.FuelEntry{
		ProjectID:  "p1",
		VehicleID:  vehicleID,
		SupplierID: supplierID,
		FuelType:   domain.FuelDiesel,
		Status:     domain.RecordClosed,
		Date:       time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	all := domain.EntryFilter{
		ProjectID:  "p1",
		VehicleID:  vehicleID,
		SupplierID: supplierID,
		FuelType:   domain.FuelDiesel,
		Status:     domain.RecordClosed,
	}
	assert.True(t, all.MatchFuel(entry))

	// A single mismatching criterion excludes the entry.
	assert.False(t, domain.EntryFilter{ProjectID: "p2"}.MatchFuel(entry))
	assert.False(t, domain.EntryFilter{VehicleID: uuid.New()}.MatchFuel(entry))
	assert.False(t, domain.EntryFilter{SupplierID: uuid.New()}.MatchFuel(entry))
	assert.False(t, domain.EntryFilter{FuelType: domain.FuelPetrol}.MatchFuel(entry))
	assert.False(t, domain.EntryFilter{Status: domain.RecordOpen}.MatchFuel(entry))
}

func TestEntryFilter_DateRangeIsInclusiveByDay(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC) }
	// Entry timestamp carries a time-of-day; bounds are whole days.
	entry := domain.FuelEntry{Date: time.Date(2025, 6, 5, 18, 30, 0, 0, time.UTC)}

	from, to := d(5), d(5)
	assert.True(t, domain.EntryFilter{From: &from, To: &to}.MatchFuel(entry),
		"an entry on the boundary day matches regardless of its time-of-day")

	before := d(4)
	assert.False(t, domain.EntryFilter{To: &before}.MatchFuel(entry))
	after := d(6)
	assert.False(t, domain.EntryFilter{From: &after}.MatchFuel(entry))

	wideFrom, wideTo := d(1), d(30)
	assert.True(t, domain.EntryFilter{From: &wideFrom, To: &wideTo}.MatchFuel(entry))
}

func TestEntryFilter_DailyLogIgnoresFuelCriteria(t *testing.T) {
	log := domain.DailyLogEntry{ProjectID: "p1", VehicleID: uuid.New(), Status: domain.RecordOpen}

	// Supplier and fuel type have no meaning for daily logs.
	f := domain.EntryFilter{ProjectID: "p1", SupplierID: uuid.New(), FuelType: domain.FuelDiesel}
	assert.True(t, f.MatchDailyLog(log))

	assert.False(t, domain.EntryFilter{ProjectID: "p2"}.MatchDailyLog(log))
}
