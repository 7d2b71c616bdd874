package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/repo"
)

// initialReason is the reason recorded on the first status period of every
// vehicle.
const initialReason = "Initial registration"

// VehicleService implements vehicle registration and the status history
// engine: every vehicle carries an ordered, contiguous sequence of
// Active/Inactive periods, and a status change closes the current period
// and opens the next one at the same date.
type VehicleService struct {
	vehicles repo.VehicleRepo
	entries  repo.FuelEntryRepo
	logs     repo.DailyLogRepo
}

// NewVehicleService constructs a VehicleService backed by the provided repos.
// The entry and log repos are needed for referential checks on delete.
func NewVehicleService(vehicles repo.VehicleRepo, entries repo.FuelEntryRepo, logs repo.DailyLogRepo) *VehicleService {
	return &VehicleService{vehicles: vehicles, entries: entries, logs: logs}
}

// RegisterVehicleInput carries the user-supplied fields for registration.
type RegisterVehicleInput struct {
	ProjectID     string
	Name          string
	Registration  string
	Class         domain.VehicleClass
	FuelType      domain.FuelType
	RentalRate    float64 // per billing unit; required for rental classes
	InitialStatus domain.VehicleStatus
	StartDate     time.Time
}

// Register validates the input and creates the vehicle with a single open
// status period starting at StartDate.
func (s *VehicleService) Register(ctx context.Context, in RegisterVehicleInput) (domain.Vehicle, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Vehicle{}, domain.Validationf("name is required")
	}
	if strings.TrimSpace(in.Registration) == "" {
		return domain.Vehicle{}, domain.Validationf("registration number is required")
	}
	if !in.Class.Valid() {
		return domain.Vehicle{}, domain.Validationf("unknown vehicle class %q", in.Class)
	}
	if !in.FuelType.Valid() {
		return domain.Vehicle{}, domain.Validationf("unknown fuel type %q", in.FuelType)
	}
	if !in.InitialStatus.Valid() {
		return domain.Vehicle{}, domain.Validationf("unknown status %q", in.InitialStatus)
	}
	if in.StartDate.IsZero() {
		return domain.Vehicle{}, domain.Validationf("start date is required")
	}
	if in.Class.IsRental() && in.RentalRate <= 0 {
		return domain.Vehicle{}, domain.Validationf("rental rate is required for rental vehicles")
	}

	vehicle := domain.Vehicle{
		ProjectID:    in.ProjectID,
		Name:         strings.TrimSpace(in.Name),
		Registration: strings.TrimSpace(in.Registration),
		Class:        in.Class,
		FuelType:     in.FuelType,
		RentalRate:   in.RentalRate,
		Periods: []domain.StatusPeriod{{
			Status:    in.InitialStatus,
			StartDate: domain.DateOnly(in.StartDate),
			Reason:    initialReason,
		}},
	}

	created, err := s.vehicles.Create(ctx, vehicle)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Register: %w", err)
	}
	return created, nil
}

// ChangeStatus flips the vehicle's status at effectiveDate: the open period
// is closed with endDate = effectiveDate and a new period with the opposite
// status starts at the same date, keeping the timeline contiguous. The
// reason is required — a status change without one is a caller error.
//
// A change dated before the current period began is rejected: it would
// produce a negative-duration period and break contiguity.
func (s *VehicleService) ChangeStatus(ctx context.Context, id uuid.UUID, effectiveDate time.Time, reason string) (domain.Vehicle, error) {
	if strings.TrimSpace(reason) == "" {
		return domain.Vehicle{}, domain.Validationf("reason is required")
	}
	if effectiveDate.IsZero() {
		return domain.Vehicle{}, domain.Validationf("effective date is required")
	}

	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.ChangeStatus: %w", err)
	}

	current, ok := vehicle.CurrentPeriod()
	if !ok {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.ChangeStatus: vehicle has no status history: %w", domain.ErrNotFound)
	}

	effective := domain.DateOnly(effectiveDate)
	if effective.Before(domain.DateOnly(current.StartDate)) {
		return domain.Vehicle{}, domain.Validationf("effective date is before the current period started")
	}

	closed := current
	end := effective
	closed.EndDate = &end

	next := domain.StatusPeriod{
		Status:    current.Status.Negate(),
		StartDate: effective,
		Reason:    strings.TrimSpace(reason),
	}

	vehicle.Periods[len(vehicle.Periods)-1] = closed
	vehicle.Periods = append(vehicle.Periods, next)

	updated, err := s.vehicles.Update(ctx, vehicle)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.ChangeStatus: %w", err)
	}
	return updated, nil
}

// GetByID returns a single vehicle by ID.
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return vehicle, nil
}

// List returns all vehicles, or only those of projectID when non-empty.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VehicleService) List(ctx context.Context, projectID string) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// Delete removes a vehicle. A vehicle still referenced by fuel entries or
// daily logs is protected: plain deletion fails validation, and the caller
// must pass cascade to remove the vehicle together with its records.
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID, cascade bool) error {
	if _, err := s.vehicles.GetByID(ctx, id); err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}

	filter := domain.EntryFilter{VehicleID: id}
	entries, err := s.entries.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	logs, err := s.logs.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}

	if (len(entries) > 0 || len(logs) > 0) && !cascade {
		return domain.Validationf("vehicle has %d fuel entries and %d daily logs; delete them first or cascade",
			len(entries), len(logs))
	}

	if cascade {
		if _, err := s.entries.DeleteByVehicle(ctx, id); err != nil {
			return fmt.Errorf("service.VehicleService.Delete: %w", err)
		}
		if _, err := s.logs.DeleteByVehicle(ctx, id); err != nil {
			return fmt.Errorf("service.VehicleService.Delete: %w", err)
		}
	}

	if err := s.vehicles.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	return nil
}
