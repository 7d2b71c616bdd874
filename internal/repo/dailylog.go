package repo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
)

// DailyLogRepo defines the containment operations for DailyLogEntries.
// It mirrors FuelEntryRepo; the two record kinds have independent
// collections and independent open-record constraints.
type DailyLogRepo interface {
	Create(ctx context.Context, d domain.DailyLogEntry) (domain.DailyLogEntry, error)

	// GetByID returns domain.ErrNotFound if no log with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLogEntry, error)

	// List returns all logs matching the filter, ordered by log date then
	// creation time.
	List(ctx context.Context, f domain.EntryFilter) ([]domain.DailyLogEntry, error)

	// FindOpenByVehicle returns domain.ErrNotFound when the vehicle has no
	// open log.
	FindOpenByVehicle(ctx context.Context, vehicleID uuid.UUID) (domain.DailyLogEntry, error)

	// Update replaces the stored log in place.
	Update(ctx context.Context, d domain.DailyLogEntry) (domain.DailyLogEntry, error)

	Delete(ctx context.Context, id uuid.UUID) error

	DeleteByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error)
}

// memDailyLogRepo is the record-store implementation of DailyLogRepo.
type memDailyLogRepo struct {
	store *Store
}

// NewDailyLogRepo constructs a DailyLogRepo backed by the given store.
func NewDailyLogRepo(s *Store) DailyLogRepo {
	return &memDailyLogRepo{store: s}
}

func (r *memDailyLogRepo) Create(ctx context.Context, d domain.DailyLogEntry) (domain.DailyLogEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.New()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	s.dailyLogs[d.ID] = d
	if err := s.flushDailyLogs(ctx); err != nil {
		delete(s.dailyLogs, d.ID)
		return domain.DailyLogEntry{}, fmt.Errorf("repo.DailyLogRepo.Create: %w", err)
	}
	return d, nil
}

func (r *memDailyLogRepo) GetByID(_ context.Context, id uuid.UUID) (domain.DailyLogEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.dailyLogs[id]
	if !ok {
		return domain.DailyLogEntry{}, fmt.Errorf("repo.DailyLogRepo.GetByID: %w", domain.ErrNotFound)
	}
	return d, nil
}

func (r *memDailyLogRepo) List(_ context.Context, f domain.EntryFilter) ([]domain.DailyLogEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := []domain.DailyLogEntry{}
	for _, d := range s.dailyLogs {
		if f.MatchDailyLog(d) {
			logs = append(logs, d)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].Date.Equal(logs[j].Date) {
			return logs[i].Date.Before(logs[j].Date)
		}
		return creationOrder(logs[i].CreatedAt, logs[i].ID, logs[j].CreatedAt, logs[j].ID)
	})
	return logs, nil
}

func (r *memDailyLogRepo) FindOpenByVehicle(_ context.Context, vehicleID uuid.UUID) (domain.DailyLogEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dailyLogs {
		if d.VehicleID == vehicleID && d.Status == domain.RecordOpen {
			return d, nil
		}
	}
	return domain.DailyLogEntry{}, fmt.Errorf("repo.DailyLogRepo.FindOpenByVehicle: %w", domain.ErrNotFound)
}

func (r *memDailyLogRepo) Update(ctx context.Context, d domain.DailyLogEntry) (domain.DailyLogEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.dailyLogs[d.ID]
	if !ok {
		return domain.DailyLogEntry{}, fmt.Errorf("repo.DailyLogRepo.Update: %w", domain.ErrNotFound)
	}
	d.CreatedAt = prev.CreatedAt
	d.UpdatedAt = time.Now().UTC()

	s.dailyLogs[d.ID] = d
	if err := s.flushDailyLogs(ctx); err != nil {
		s.dailyLogs[d.ID] = prev
		return domain.DailyLogEntry{}, fmt.Errorf("repo.DailyLogRepo.Update: %w", err)
	}
	return d, nil
}

func (r *memDailyLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.dailyLogs[id]
	if !ok {
		return fmt.Errorf("repo.DailyLogRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(s.dailyLogs, id)
	if err := s.flushDailyLogs(ctx); err != nil {
		s.dailyLogs[id] = prev
		return fmt.Errorf("repo.DailyLogRepo.Delete: %w", err)
	}
	return nil
}

func (r *memDailyLogRepo) DeleteByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := map[uuid.UUID]domain.DailyLogEntry{}
	for id, d := range s.dailyLogs {
		if d.VehicleID == vehicleID {
			removed[id] = d
			delete(s.dailyLogs, id)
		}
	}
	if len(removed) == 0 {
		return 0, nil
	}
	if err := s.flushDailyLogs(ctx); err != nil {
		for id, d := range removed {
			s.dailyLogs[id] = d
		}
		return 0, fmt.Errorf("repo.DailyLogRepo.DeleteByVehicle: %w", err)
	}
	return len(removed), nil
}
