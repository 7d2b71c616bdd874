package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/repo"
)

// SupplierService implements supplier management. Suppliers have no
// lifecycle beyond create and delete.
type SupplierService struct {
	suppliers repo.SupplierRepo
}

// NewSupplierService constructs a SupplierService backed by the provided repo.
func NewSupplierService(suppliers repo.SupplierRepo) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create validates and stores a new supplier.
func (s *SupplierService) Create(ctx context.Context, sup domain.Supplier) (domain.Supplier, error) {
	if strings.TrimSpace(sup.Name) == "" {
		return domain.Supplier{}, domain.Validationf("name is required")
	}
	sup.Name = strings.TrimSpace(sup.Name)

	created, err := s.suppliers.Create(ctx, sup)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("service.SupplierService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single supplier by ID.
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (domain.Supplier, error) {
	sup, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("service.SupplierService.GetByID: %w", err)
	}
	return sup, nil
}

// List returns all suppliers, or only those of projectID when non-empty.
// Always returns a non-nil slice so callers can safely range over it.
func (s *SupplierService) List(ctx context.Context, projectID string) ([]domain.Supplier, error) {
	suppliers, err := s.suppliers.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service.SupplierService.List: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

// Delete removes a supplier by ID.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.SupplierService.Delete: %w", err)
	}
	return nil
}
