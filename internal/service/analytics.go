package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/repo"
)

// AnalyticsService derives statistics from the record store. It is strictly
// read-only: every query recomputes from the current records, so two calls
// with no mutation in between always yield identical results.
//
// Throughout, distance is summed over closed entries only, while litres and
// cost are summed over all entries — fuel is consumed and paid for at open
// time, but the distance it bought is only known at close. Averages are
// zero, never NaN or infinite, when no litres have been recorded.
type AnalyticsService struct {
	vehicles repo.VehicleRepo
	entries  repo.FuelEntryRepo
	logs     repo.DailyLogRepo

	// now is the clock used for open-ended rent calculations.
	// Overridable in tests.
	now func() time.Time
}

// NewAnalyticsService constructs an AnalyticsService backed by the provided repos.
func NewAnalyticsService(vehicles repo.VehicleRepo, entries repo.FuelEntryRepo, logs repo.DailyLogRepo) *AnalyticsService {
	return &AnalyticsService{vehicles: vehicles, entries: entries, logs: logs, now: time.Now}
}

// WithClock replaces the service clock and returns the service.
// Intended for tests that need deterministic rent calculations.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

// VehicleSummary computes the full derived picture for one vehicle: fuel
// totals and average mileage, the same figures from the independent
// daily-log trail, the discrepancy between the two, and the rent cost when
// the vehicle is rented.
func (s *AnalyticsService) VehicleSummary(ctx context.Context, vehicleID uuid.UUID) (domain.VehicleSummary, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return domain.VehicleSummary{}, fmt.Errorf("service.AnalyticsService.VehicleSummary: %w", err)
	}

	entries, err := s.entries.List(ctx, domain.EntryFilter{VehicleID: vehicleID})
	if err != nil {
		return domain.VehicleSummary{}, fmt.Errorf("service.AnalyticsService.VehicleSummary: %w", err)
	}
	logs, err := s.logs.List(ctx, domain.EntryFilter{VehicleID: vehicleID})
	if err != nil {
		return domain.VehicleSummary{}, fmt.Errorf("service.AnalyticsService.VehicleSummary: %w", err)
	}

	sum := domain.VehicleSummary{VehicleID: vehicleID, EntryCount: len(entries)}
	for _, e := range entries {
		sum.TotalLitres += e.Litres
		sum.TotalCost += e.TotalCost
		if e.Status == domain.RecordClosed {
			sum.TotalDistance += e.Distance
		}
	}
	sum.AvgMileage = safeDiv(sum.TotalDistance, sum.TotalLitres)

	sum.DailyLogCount = len(logs)
	for _, d := range logs {
		if d.Status == domain.RecordClosed {
			sum.DailyLogTotalKm += d.Distance
		}
	}
	sum.DailyLogAvgMileage = safeDiv(sum.DailyLogTotalKm, sum.TotalLitres)
	sum.KmDifference = sum.DailyLogTotalKm - sum.TotalDistance
	sum.MileageDifference = sum.DailyLogAvgMileage - sum.AvgMileage

	if vehicle.Class.IsRental() {
		rent := rentCost(vehicle, s.now())
		sum.Rent = &rent
	}

	return sum, nil
}

// RentCost computes the rental charge for one vehicle over the time the
// fleet has held it. Calling it for a vehicle whose class is not a rental
// arrangement is a validation failure.
func (s *AnalyticsService) RentCost(ctx context.Context, vehicleID uuid.UUID) (domain.RentCost, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return domain.RentCost{}, fmt.Errorf("service.AnalyticsService.RentCost: %w", err)
	}
	if !vehicle.Class.IsRental() {
		return domain.RentCost{}, domain.Validationf("vehicle is not rented")
	}
	return rentCost(vehicle, s.now()), nil
}

// ProjectSummary aggregates fuel usage and rent across all vehicles of a
// project.
func (s *AnalyticsService) ProjectSummary(ctx context.Context, projectID string) (domain.ProjectSummary, error) {
	vehicles, err := s.vehicles.List(ctx, projectID)
	if err != nil {
		return domain.ProjectSummary{}, fmt.Errorf("service.AnalyticsService.ProjectSummary: %w", err)
	}
	entries, err := s.entries.List(ctx, domain.EntryFilter{ProjectID: projectID})
	if err != nil {
		return domain.ProjectSummary{}, fmt.Errorf("service.AnalyticsService.ProjectSummary: %w", err)
	}

	sum := domain.ProjectSummary{ProjectID: projectID, VehicleCount: len(vehicles), EntryCount: len(entries)}
	for _, e := range entries {
		sum.TotalLitres += e.Litres
		sum.TotalCost += e.TotalCost
		if e.Status == domain.RecordClosed {
			sum.TotalDistance += e.Distance
		}
	}
	sum.AvgMileage = safeDiv(sum.TotalDistance, sum.TotalLitres)

	now := s.now()
	for _, v := range vehicles {
		if v.Class.IsRental() {
			sum.TotalRentCost += rentCost(v, now).Total
		}
	}

	return sum, nil
}

// FuelTypeSummaries groups the entries matching the filter by fuel type,
// ordered by fuel type name.
func (s *AnalyticsService) FuelTypeSummaries(ctx context.Context, f domain.EntryFilter) ([]domain.FuelTypeSummary, error) {
	entries, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.AnalyticsService.FuelTypeSummaries: %w", err)
	}

	byType := map[domain.FuelType]*domain.FuelTypeSummary{}
	for _, e := range entries {
		sum, ok := byType[e.FuelType]
		if !ok {
			sum = &domain.FuelTypeSummary{FuelType: e.FuelType}
			byType[e.FuelType] = sum
		}
		sum.EntryCount++
		sum.TotalLitres += e.Litres
		sum.TotalCost += e.TotalCost
		if e.Status == domain.RecordClosed {
			sum.TotalDistance += e.Distance
		}
	}

	result := make([]domain.FuelTypeSummary, 0, len(byType))
	for _, sum := range byType {
		sum.AvgMileage = safeDiv(sum.TotalDistance, sum.TotalLitres)
		result = append(result, *sum)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FuelType < result[j].FuelType })
	return result, nil
}

// DailySummaries groups the entries matching the filter by calendar day,
// ordered by day ascending.
func (s *AnalyticsService) DailySummaries(ctx context.Context, f domain.EntryFilter) ([]domain.DaySummary, error) {
	entries, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.AnalyticsService.DailySummaries: %w", err)
	}

	byDay := map[time.Time]*domain.DaySummary{}
	for _, e := range entries {
		day := domain.DateOnly(e.Date)
		sum, ok := byDay[day]
		if !ok {
			sum = &domain.DaySummary{Day: day}
			byDay[day] = sum
		}
		sum.EntryCount++
		sum.TotalLitres += e.Litres
		sum.TotalCost += e.TotalCost
		if e.Status == domain.RecordClosed {
			sum.TotalDistance += e.Distance
		}
	}

	result := make([]domain.DaySummary, 0, len(byDay))
	for _, sum := range byDay {
		result = append(result, *sum)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.Before(result[j].Day) })
	return result, nil
}

// rentCost applies the stepped billing policy: the held span is converted
// to an inclusive day count (always rounding a partial day up), and the day
// count is converted to billing units, again rounding up — a monthly rental
// held 31 days is billed two months.
func rentCost(v domain.Vehicle, now time.Time) domain.RentCost {
	start := v.HeldFrom()
	end := v.HeldUntil(now)
	if end.Before(start) {
		end = start
	}

	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1

	var units int
	switch v.Class {
	case domain.ClassRentMonthly:
		units = int(math.Ceil(float64(days) / 30))
	case domain.ClassRentDaily:
		units = days
	case domain.ClassRentHourly:
		units = days * 24
	}

	return domain.RentCost{
		Days:  days,
		Units: units,
		Rate:  v.RentalRate,
		Total: v.RentalRate * float64(units),
	}
}

// safeDiv returns a/b, or 0 when b is zero. Aggregates must never be NaN
// or infinite, including over the empty set.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
