// Package handler implements the HTTP adapter for the fleet fuel tracker.
// Handlers decode requests, call the engines, and translate results and
// sentinel errors into HTTP responses. No business logic lives here — every
// rule is enforced by the service layer, and the handlers only map.
//
// Methods are split into domain-specific files (vehicle.go, fuel.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/service"
)

// VehicleServicer defines the vehicle operations the handlers depend on.
// Defining the interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a double without touching the store.
type VehicleServicer interface {
	Register(ctx context.Context, in service.RegisterVehicleInput) (domain.Vehicle, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, effectiveDate time.Time, reason string) (domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	List(ctx context.Context, projectID string) ([]domain.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID, cascade bool) error
}

// FuelServicer defines the fuel entry operations the handlers depend on.
type FuelServicer interface {
	Open(ctx context.Context, in service.OpenFuelEntryInput) (domain.FuelEntry, error)
	Close(ctx context.Context, id uuid.UUID, closingKm float64, closingPhoto string) (domain.FuelEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.FuelEntry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]domain.FuelEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DailyLogServicer defines the daily log operations the handlers depend on.
type DailyLogServicer interface {
	Open(ctx context.Context, in service.OpenDailyLogInput) (domain.DailyLogEntry, error)
	Close(ctx context.Context, id uuid.UUID, closingKm float64, closingPhoto string) (domain.DailyLogEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.DailyLogEntry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]domain.DailyLogEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierServicer defines the supplier operations the handlers depend on.
type SupplierServicer interface {
	Create(ctx context.Context, sup domain.Supplier) (domain.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Supplier, error)
	List(ctx context.Context, projectID string) ([]domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalyticsServicer defines the analytics queries the handlers depend on.
type AnalyticsServicer interface {
	VehicleSummary(ctx context.Context, vehicleID uuid.UUID) (domain.VehicleSummary, error)
	RentCost(ctx context.Context, vehicleID uuid.UUID) (domain.RentCost, error)
	ProjectSummary(ctx context.Context, projectID string) (domain.ProjectSummary, error)
	FuelTypeSummaries(ctx context.Context, f domain.EntryFilter) ([]domain.FuelTypeSummary, error)
	DailySummaries(ctx context.Context, f domain.EntryFilter) ([]domain.DaySummary, error)
}

// Server holds every handler dependency. Methods are in domain-specific
// files but all operate on this struct.
type Server struct {
	vehicles  VehicleServicer
	fuel      FuelServicer
	logs      DailyLogServicer
	suppliers SupplierServicer
	analytics AnalyticsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(vehicles VehicleServicer, fuel FuelServicer, logs DailyLogServicer, suppliers SupplierServicer, analytics AnalyticsServicer) *Server {
	return &Server{vehicles: vehicles, fuel: fuel, logs: logs, suppliers: suppliers, analytics: analytics}
}

// Routes registers every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/vehicles", func(r chi.Router) {
		r.Post("/", s.RegisterVehicle)
		r.Get("/", s.ListVehicles)
		r.Get("/{id}", s.GetVehicle)
		r.Delete("/{id}", s.DeleteVehicle)
		r.Post("/{id}/status", s.ChangeVehicleStatus)
		r.Get("/{id}/summary", s.GetVehicleSummary)
		r.Get("/{id}/rent", s.GetVehicleRentCost)
	})

	r.Route("/fuel-entries", func(r chi.Router) {
		r.Post("/", s.OpenFuelEntry)
		r.Get("/", s.ListFuelEntries)
		r.Get("/{id}", s.GetFuelEntry)
		r.Post("/{id}/close", s.CloseFuelEntry)
		r.Delete("/{id}", s.DeleteFuelEntry)
	})

	r.Route("/daily-logs", func(r chi.Router) {
		r.Post("/", s.OpenDailyLog)
		r.Get("/", s.ListDailyLogs)
		r.Get("/{id}", s.GetDailyLog)
		r.Post("/{id}/close", s.CloseDailyLog)
		r.Delete("/{id}", s.DeleteDailyLog)
	})

	r.Route("/suppliers", func(r chi.Router) {
		r.Post("/", s.CreateSupplier)
		r.Get("/", s.ListSuppliers)
		r.Get("/{id}", s.GetSupplier)
		r.Delete("/{id}", s.DeleteSupplier)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/projects/{projectID}", s.GetProjectSummary)
		r.Get("/fuel-types", s.GetFuelTypeSummaries)
		r.Get("/daily", s.GetDailySummaries)
	})

	return r
}
