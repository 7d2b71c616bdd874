package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/manigandan-posana/fuel/internal/domain"
)

func TestDateOnly(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already midnight UTC",
			in:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "afternoon truncates to the same day",
			in:   time.Date(2025, 6, 1, 15, 30, 45, 999, time.UTC),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "zoned timestamps convert to UTC first",
			in:   time.Date(2025, 6, 1, 2, 0, 0, 0, ist),
			want: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DateOnly(tt.in))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 0, domain.DaysBetween(d(1), d(1)))
	assert.Equal(t, 9, domain.DaysBetween(d(1), d(10)))
	assert.Equal(t, -9, domain.DaysBetween(d(10), d(1)))

	// Time-of-day never shifts the result.
	late := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 9, domain.DaysBetween(late, early))
}

func TestStatusPeriodDurationDays(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC) }

	end := d(10)
	closed := domain.StatusPeriod{Status: domain.StatusActive, StartDate: d(1), EndDate: &end}
	assert.Equal(t, 10, closed.DurationDays(d(30)), "both endpoints count")

	sameDayEnd := d(1)
	sameDay := domain.StatusPeriod{Status: domain.StatusActive, StartDate: d(1), EndDate: &sameDayEnd}
	assert.Equal(t, 1, sameDay.DurationDays(d(30)))

	open := domain.StatusPeriod{Status: domain.StatusActive, StartDate: d(1)}
	assert.Equal(t, 15, open.DurationDays(d(15)), "open periods run to now")
}

func TestVehicleProjections(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC) }
	end := d(10)

	v := domain.Vehicle{Periods: []domain.StatusPeriod{
		{Status: domain.StatusActive, StartDate: d(1), EndDate: &end},
		{Status: domain.StatusInactive, StartDate: d(10)},
	}}

	assert.Equal(t, domain.StatusInactive, v.Status())
	assert.Equal(t, d(10), v.StatusSince())
	assert.Equal(t, d(1), v.HeldFrom())
	assert.Equal(t, d(20), v.HeldUntil(d(20)), "open timeline runs to now")

	closedEnd := d(12)
	v.Periods[1].EndDate = &closedEnd
	assert.Equal(t, d(12), v.HeldUntil(d(20)))
}

func TestVehicleStatusNegate(t *testing.T) {
	assert.Equal(t, domain.StatusInactive, domain.StatusActive.Negate())
	assert.Equal(t, domain.StatusActive, domain.StatusInactive.Negate())
}
