package repo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
)

// FuelEntryRepo defines the containment operations for FuelEntries.
type FuelEntryRepo interface {
	// Create inserts a new entry and returns the stored record with id and
	// timestamps populated.
	Create(ctx context.Context, e domain.FuelEntry) (domain.FuelEntry, error)

	// GetByID retrieves a single entry.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.FuelEntry, error)

	// List returns all entries matching the filter, ordered by entry date
	// then creation time.
	List(ctx context.Context, f domain.EntryFilter) ([]domain.FuelEntry, error)

	// FindOpenByVehicle returns the vehicle's open entry.
	// Returns domain.ErrNotFound when the vehicle has none.
	FindOpenByVehicle(ctx context.Context, vehicleID uuid.UUID) (domain.FuelEntry, error)

	// Update replaces the stored entry in place — record identity and every
	// field not changed by the caller are preserved.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	Update(ctx context.Context, e domain.FuelEntry) (domain.FuelEntry, error)

	// Delete removes an entry by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVehicle removes every entry of the vehicle and reports how
	// many were removed.
	DeleteByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error)
}

// memFuelEntryRepo is the record-store implementation of FuelEntryRepo.
type memFuelEntryRepo struct {
	store *Store
}

// NewFuelEntryRepo constructs a FuelEntryRepo backed by the given store.
func NewFuelEntryRepo(s *Store) FuelEntryRepo {
	return &memFuelEntryRepo{store: s}
}

func (r *memFuelEntryRepo) Create(ctx context.Context, e domain.FuelEntry) (domain.FuelEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.New()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	s.fuelEntries[e.ID] = e
	if err := s.flushFuelEntries(ctx); err != nil {
		delete(s.fuelEntries, e.ID)
		return domain.FuelEntry{}, fmt.Errorf("repo.FuelEntryRepo.Create: %w", err)
	}
	return e, nil
}

func (r *memFuelEntryRepo) GetByID(_ context.Context, id uuid.UUID) (domain.FuelEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.fuelEntries[id]
	if !ok {
		return domain.FuelEntry{}, fmt.Errorf("repo.FuelEntryRepo.GetByID: %w", domain.ErrNotFound)
	}
	return e, nil
}

func (r *memFuelEntryRepo) List(_ context.Context, f domain.EntryFilter) ([]domain.FuelEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []domain.FuelEntry{}
	for _, e := range s.fuelEntries {
		if f.MatchFuel(e) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return creationOrder(entries[i].CreatedAt, entries[i].ID, entries[j].CreatedAt, entries[j].ID)
	})
	return entries, nil
}

func (r *memFuelEntryRepo) FindOpenByVehicle(_ context.Context, vehicleID uuid.UUID) (domain.FuelEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.fuelEntries {
		if e.VehicleID == vehicleID && e.Status == domain.RecordOpen {
			return e, nil
		}
	}
	return domain.FuelEntry{}, fmt.Errorf("repo.FuelEntryRepo.FindOpenByVehicle: %w", domain.ErrNotFound)
}

func (r *memFuelEntryRepo) Update(ctx context.Context, e domain.FuelEntry) (domain.FuelEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.fuelEntries[e.ID]
	if !ok {
		return domain.FuelEntry{}, fmt.Errorf("repo.FuelEntryRepo.Update: %w", domain.ErrNotFound)
	}
	e.CreatedAt = prev.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	s.fuelEntries[e.ID] = e
	if err := s.flushFuelEntries(ctx); err != nil {
		s.fuelEntries[e.ID] = prev
		return domain.FuelEntry{}, fmt.Errorf("repo.FuelEntryRepo.Update: %w", err)
	}
	return e, nil
}

func (r *memFuelEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.fuelEntries[id]
	if !ok {
		return fmt.Errorf("repo.FuelEntryRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(s.fuelEntries, id)
	if err := s.flushFuelEntries(ctx); err != nil {
		s.fuelEntries[id] = prev
		return fmt.Errorf("repo.FuelEntryRepo.Delete: %w", err)
	}
	return nil
}

func (r *memFuelEntryRepo) DeleteByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := map[uuid.UUID]domain.FuelEntry{}
	for id, e := range s.fuelEntries {
		if e.VehicleID == vehicleID {
			removed[id] = e
			delete(s.fuelEntries, id)
		}
	}
	if len(removed) == 0 {
		return 0, nil
	}
	if err := s.flushFuelEntries(ctx); err != nil {
		for id, e := range removed {
			s.fuelEntries[id] = e
		}
		return 0, fmt.Errorf("repo.FuelEntryRepo.DeleteByVehicle: %w", err)
	}
	return len(removed), nil
}
