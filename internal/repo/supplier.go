package repo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
)

// SupplierRepo defines the containment operations for Suppliers.
type SupplierRepo interface {
	Create(ctx context.Context, sup domain.Supplier) (domain.Supplier, error)

	// GetByID returns domain.ErrNotFound if no supplier with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Supplier, error)

	// List returns all suppliers, or only those of projectID when non-empty,
	// ordered by name.
	List(ctx context.Context, projectID string) ([]domain.Supplier, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// memSupplierRepo is the record-store implementation of SupplierRepo.
type memSupplierRepo struct {
	store *Store
}

// NewSupplierRepo constructs a SupplierRepo backed by the given store.
func NewSupplierRepo(s *Store) SupplierRepo {
	return &memSupplierRepo{store: s}
}

func (r *memSupplierRepo) Create(ctx context.Context, sup domain.Supplier) (domain.Supplier, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	sup.ID = uuid.New()
	sup.CreatedAt = time.Now().UTC()

	s.suppliers[sup.ID] = sup
	if err := s.flushSuppliers(ctx); err != nil {
		delete(s.suppliers, sup.ID)
		return domain.Supplier{}, fmt.Errorf("repo.SupplierRepo.Create: %w", err)
	}
	return sup, nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Supplier, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sup, ok := s.suppliers[id]
	if !ok {
		return domain.Supplier{}, fmt.Errorf("repo.SupplierRepo.GetByID: %w", domain.ErrNotFound)
	}
	return sup, nil
}

func (r *memSupplierRepo) List(_ context.Context, projectID string) ([]domain.Supplier, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	suppliers := []domain.Supplier{}
	for _, sup := range s.suppliers {
		if projectID != "" && sup.ProjectID != projectID {
			continue
		}
		suppliers = append(suppliers, sup)
	}
	sort.Slice(suppliers, func(i, j int) bool {
		if suppliers[i].Name != suppliers[j].Name {
			return suppliers[i].Name < suppliers[j].Name
		}
		return suppliers[i].ID.String() < suppliers[j].ID.String()
	})
	return suppliers, nil
}

func (r *memSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.suppliers[id]
	if !ok {
		return fmt.Errorf("repo.SupplierRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(s.suppliers, id)
	if err := s.flushSuppliers(ctx); err != nil {
		s.suppliers[id] = prev
		return fmt.Errorf("repo.SupplierRepo.Delete: %w", err)
	}
	return nil
}
