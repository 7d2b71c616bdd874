package repo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
)

// VehicleRepo defines the containment operations for Vehicles.
// The service layer depends on this interface, not the store-backed
// implementation, which allows the service to be unit-tested with a double.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the stored record with
	// id and timestamps populated.
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a single vehicle.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// List returns all vehicles, or only those of projectID when non-empty,
	// ordered by creation time.
	List(ctx context.Context, projectID string) ([]domain.Vehicle, error)

	// Update replaces the stored vehicle and returns the updated record.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	Update(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// Delete removes a vehicle by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memVehicleRepo is the record-store implementation of VehicleRepo.
type memVehicleRepo struct {
	store *Store
}

// NewVehicleRepo constructs a VehicleRepo backed by the given store.
func NewVehicleRepo(s *Store) VehicleRepo {
	return &memVehicleRepo{store: s}
}

// cloneVehicle returns a copy whose Periods slice has its own backing array.
// The store must never hand out (or keep) a slice a caller can mutate:
// otherwise a service editing its copy would write through to the stored
// record outside the lock, and a failed-flush rollback could not restore it.
func cloneVehicle(v domain.Vehicle) domain.Vehicle {
	if v.Periods != nil {
		v.Periods = append([]domain.StatusPeriod(nil), v.Periods...)
	}
	return v
}

func (r *memVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = uuid.New()
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	s.vehicles[v.ID] = cloneVehicle(v)
	if err := s.flushVehicles(ctx); err != nil {
		delete(s.vehicles, v.ID)
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return v, nil
}

func (r *memVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", domain.ErrNotFound)
	}
	return cloneVehicle(v), nil
}

func (r *memVehicleRepo) List(_ context.Context, projectID string) ([]domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := []domain.Vehicle{}
	for _, v := range s.vehicles {
		if projectID != "" && v.ProjectID != projectID {
			continue
		}
		vehicles = append(vehicles, cloneVehicle(v))
	}
	sort.Slice(vehicles, func(i, j int) bool {
		return creationOrder(vehicles[i].CreatedAt, vehicles[i].ID, vehicles[j].CreatedAt, vehicles[j].ID)
	})
	return vehicles, nil
}

func (r *memVehicleRepo) Update(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.vehicles[v.ID]
	if !ok {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Update: %w", domain.ErrNotFound)
	}
	v.CreatedAt = prev.CreatedAt
	v.UpdatedAt = time.Now().UTC()

	s.vehicles[v.ID] = cloneVehicle(v)
	if err := s.flushVehicles(ctx); err != nil {
		s.vehicles[v.ID] = prev
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Update: %w", err)
	}
	return v, nil
}

func (r *memVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.vehicles[id]
	if !ok {
		return fmt.Errorf("repo.VehicleRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(s.vehicles, id)
	if err := s.flushVehicles(ctx); err != nil {
		s.vehicles[id] = prev
		return fmt.Errorf("repo.VehicleRepo.Delete: %w", err)
	}
	return nil
}
