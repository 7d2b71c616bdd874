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

// DailyLogService implements the daily mileage log lifecycle. It mirrors
// FuelService without quantity or cost: a log is an odometer-only trip used
// to cross-check the distances derived from fuel entries.
//
// The one-open-record constraint applies independently of fuel entries: a
// vehicle may have one open fuel entry and one open daily log at the same
// time, but never two of either.
type DailyLogService struct {
	vehicles repo.VehicleRepo
	logs     repo.DailyLogRepo
}

// NewDailyLogService constructs a DailyLogService backed by the provided repos.
func NewDailyLogService(vehicles repo.VehicleRepo, logs repo.DailyLogRepo) *DailyLogService {
	return &DailyLogService{vehicles: vehicles, logs: logs}
}

// OpenDailyLogInput carries the user-supplied fields for opening a log.
type OpenDailyLogInput struct {
	ProjectID    string
	VehicleID    uuid.UUID
	Date         time.Time
	OpeningKm    float64
	OpeningPhoto string
}

// Open validates the input and creates a daily log in the open state.
func (s *DailyLogService) Open(ctx context.Context, in OpenDailyLogInput) (domain.DailyLogEntry, error) {
	if in.OpeningKm < 0 {
		return domain.DailyLogEntry{}, domain.Validationf("opening reading must not be negative")
	}
	if in.Date.IsZero() {
		return domain.DailyLogEntry{}, domain.Validationf("date is required")
	}

	if _, err := s.vehicles.GetByID(ctx, in.VehicleID); err != nil {
		return domain.DailyLogEntry{}, fmt.Errorf("service.DailyLogService.Open: vehicle: %w", err)
	}

	_, err := s.logs.FindOpenByVehicle(ctx, in.VehicleID)
	switch {
	case err == nil:
		return domain.DailyLogEntry{}, domain.Validationf("vehicle already has an open daily log")
	case !errors.Is(err, domain.ErrNotFound):
		return domain.DailyLogEntry{}, fmt.Errorf("service.DailyLogService.Open: %w", err)
	}

	log := domain.DailyLogEntry{
		ProjectID:    in.ProjectID,
		VehicleID:    in.VehicleID,
		Date:         in.Date,
		OpeningKm:    in.OpeningKm,
		Status:       domain.RecordOpen,
		OpeningPhoto: in.OpeningPhoto,
	}

	created, err := s.logs.Create(ctx, log)
	if err != nil {
		return domain.DailyLogEntry{}, fmt.Errorf("service.DailyLogService.Open: %w", err)
	}
	return created, nil
}

// Close records the closing reading on an open log and derives the distance.
// Same rules as FuelService.Close: one transition only, closing below
// opening rejected, closing equal to opening valid with zero distance.
func (s *DailyLogService) Close(ctx context.Context, id uuid.UUID, closingKm float64, closingPhoto string) (domain.DailyLogEntry, error) {
	log, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return domain.DailyLogEntry{}, fmt.Errorf("service.DailyLogService.Close: %w", err)
	}
	if log.Status != domain.RecordOpen {
		return domain.DailyLogEntry{}, domain.Validationf("daily log is already closed")
	}
	if closingKm < log.OpeningKm {
		return domain.DailyLogEntry{}, domain.Validationf("closing reading must not be below opening reading")
	}

	log.ClosingKm = closingKm
	log.Distance = closingKm - log.OpeningKm
	log.Status = domain.RecordClosed
	if closingPhoto != "" {
		log.ClosingPhoto = closingPhoto
	}

	updated, err := s.logs.Update(ctx, log)
	if err != nil {
		return domain.DailyLogEntry{}, fmt.Errorf("service.DailyLogService.Close: %w", err)
	}
	return updated, nil
}

// GetByID returns a single daily log by ID.
func (s *DailyLogService) GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLogEntry, error) {
	log, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return domain.DailyLogEntry{}, fmt.Errorf("service.DailyLogService.GetByID: %w", err)
	}
	return log, nil
}

// List returns the daily logs matching the filter.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DailyLogService) List(ctx context.Context, f domain.EntryFilter) ([]domain.DailyLogEntry, error) {
	logs, err := s.logs.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.DailyLogService.List: %w", err)
	}
	if logs == nil {
		return []domain.DailyLogEntry{}, nil
	}
	return logs, nil
}

// Delete removes a daily log unconditionally, open or closed.
func (s *DailyLogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DailyLogService.Delete: %w", err)
	}
	return nil
}
