// Package service contains the engines of the fleet fuel tracker: the fuel
// and daily-log lifecycles, vehicle status history, suppliers, and the
// read-only analytics. Services validate inputs, enforce the business rules,
// and orchestrate repo calls. No storage plumbing lives here — services
// depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/repo"
)

// FuelService implements the fuel entry lifecycle: an entry is opened with
// the litres dispensed and the opening odometer reading, and closed exactly
// once with the closing reading, at which point distance and mileage are
// derived.
type FuelService struct {
	vehicles  repo.VehicleRepo
	suppliers repo.SupplierRepo
	entries   repo.FuelEntryRepo
}

// NewFuelService constructs a FuelService backed by the provided repos.
func NewFuelService(vehicles repo.VehicleRepo, suppliers repo.SupplierRepo, entries repo.FuelEntryRepo) *FuelService {
	return &FuelService{vehicles: vehicles, suppliers: suppliers, entries: entries}
}

// OpenFuelEntryInput carries the user-supplied fields for opening an entry.
// The entry's fuel type is not an input: it is copied from the vehicle.
type OpenFuelEntryInput struct {
	ProjectID     string
	VehicleID     uuid.UUID
	SupplierID    uuid.UUID
	Date          time.Time
	Litres        float64
	OpeningKm     float64
	PricePerLitre float64 // optional; 0 means no price recorded
	OpeningPhoto  string
}

// Open validates the input and creates a fuel entry in the open state.
//
// Rules enforced:
//   - litres must be > 0 (this is what makes mileage division always defined)
//   - the opening reading must be >= 0
//   - the vehicle and supplier must exist (domain.ErrNotFound otherwise)
//   - the vehicle must not already have an open fuel entry; a second open
//     attempt is a validation failure and creates nothing
//
// TotalCost is derived at open time when a unit price was supplied: the fuel
// is paid for when dispensed, not when the trip closes.
func (s *FuelService) Open(ctx context.Context, in OpenFuelEntryInput) (domain.FuelEntry, error) {
	if in.Litres <= 0 {
		return domain.FuelEntry{}, domain.Validationf("litres must be greater than zero")
	}
	if in.OpeningKm < 0 {
		return domain.FuelEntry{}, domain.Validationf("opening reading must not be negative")
	}
	if in.PricePerLitre < 0 {
		return domain.FuelEntry{}, domain.Validationf("price per litre must not be negative")
	}
	if in.Date.IsZero() {
		return domain.FuelEntry{}, domain.Validationf("date is required")
	}

	vehicle, err := s.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.Open: vehicle: %w", err)
	}
	if _, err := s.suppliers.GetByID(ctx, in.SupplierID); err != nil {
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.Open: supplier: %w", err)
	}

	_, err = s.entries.FindOpenByVehicle(ctx, in.VehicleID)
	switch {
	case err == nil:
		return domain.FuelEntry{}, domain.Validationf("vehicle already has an open fuel entry")
	case !errors.Is(err, domain.ErrNotFound):
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.Open: %w", err)
	}

	entry := domain.FuelEntry{
		ProjectID:     in.ProjectID,
		VehicleID:     in.VehicleID,
		SupplierID:    in.SupplierID,
		FuelType:      vehicle.FuelType,
		Date:          in.Date,
		Litres:        in.Litres,
		PricePerLitre: in.PricePerLitre,
		TotalCost:     in.PricePerLitre * in.Litres,
		OpeningKm:     in.OpeningKm,
		Status:        domain.RecordOpen,
		OpeningPhoto:  in.OpeningPhoto,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.Open: %w", err)
	}
	return created, nil
}

// Close records the closing odometer reading on an open entry and derives
// distance and mileage. The transition happens exactly once: closing an
// already-closed entry is a validation failure, and a closing reading below
// the opening reading is rejected, never clamped. A closing reading equal to
// the opening reading is valid and yields zero distance and mileage.
//
// All other fields carry over unchanged; the update is in place, so the
// record identity is stable across the transition.
func (s *FuelService) Close(ctx context.Context, id uuid.UUID, closingKm float64, closingPhoto string) (domain.FuelEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.Close: %w", err)
	}
	if entry.Status != domain.RecordOpen {
		return domain.FuelEntry{}, domain.Validationf("entry is already closed")
	}
	if closingKm < entry.OpeningKm {
		return domain.FuelEntry{}, domain.Validationf("closing reading must not be below opening reading")
	}

	entry.ClosingKm = closingKm
	entry.Distance = closingKm - entry.OpeningKm
	entry.Mileage = entry.Distance / entry.Litres // litres > 0 guaranteed at open
	entry.Status = domain.RecordClosed
	if closingPhoto != "" {
		entry.ClosingPhoto = closingPhoto
	}

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.Close: %w", err)
	}
	return updated, nil
}

// GetByID returns a single fuel entry by ID.
func (s *FuelService) GetByID(ctx context.Context, id uuid.UUID) (domain.FuelEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.FuelEntry{}, fmt.Errorf("service.FuelService.GetByID: %w", err)
	}
	return entry, nil
}

// List returns the fuel entries matching the filter.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FuelService) List(ctx context.Context, f domain.EntryFilter) ([]domain.FuelEntry, error) {
	entries, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.FuelService.List: %w", err)
	}
	if entries == nil {
		return []domain.FuelEntry{}, nil
	}
	return entries, nil
}

// Delete removes a fuel entry unconditionally, open or closed.
// Returns domain.ErrNotFound if it does not exist.
func (s *FuelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.FuelService.Delete: %w", err)
	}
	return nil
}
