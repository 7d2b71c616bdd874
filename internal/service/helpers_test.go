package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/persist"
	"github.com/manigandan-posana/fuel/internal/repo"
	"github.com/manigandan-posana/fuel/internal/service"
)

// env wires every service to one record store backed by an in-memory
// adapter, mirroring the production wiring in cmd/api.
type env struct {
	adapter   *persist.Memory
	vehicles  *service.VehicleService
	fuel      *service.FuelService
	logs      *service.DailyLogService
	suppliers *service.SupplierService
	analytics *service.AnalyticsService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	adapter := persist.NewMemory()
	store, err := repo.Open(context.Background(), adapter)
	require.NoError(t, err)

	vehicleRepo := repo.NewVehicleRepo(store)
	entryRepo := repo.NewFuelEntryRepo(store)
	logRepo := repo.NewDailyLogRepo(store)
	supplierRepo := repo.NewSupplierRepo(store)

	return &env{
		adapter:   adapter,
		vehicles:  service.NewVehicleService(vehicleRepo, entryRepo, logRepo),
		fuel:      service.NewFuelService(vehicleRepo, supplierRepo, entryRepo),
		logs:      service.NewDailyLogService(vehicleRepo, logRepo),
		suppliers: service.NewSupplierService(supplierRepo),
		analytics: service.NewAnalyticsService(vehicleRepo, entryRepo, logRepo),
	}
}

// day returns midnight UTC n-1 days after 2025-06-01, so day(1) is the
// first of June and day(10) is the tenth.
func day(n int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

// registerVehicle registers a petrol vehicle of the given class, active
// since day(1).
func (e *env) registerVehicle(t *testing.T, class domain.VehicleClass, rate float64) domain.Vehicle {
	t.Helper()

	v, err := e.vehicles.Register(context.Background(), service.RegisterVehicleInput{
		ProjectID:     "p1",
		Name:          "Excavator 3",
		Registration:  "KA-01-1234",
		Class:         class,
		FuelType:      domain.FuelPetrol,
		RentalRate:    rate,
		InitialStatus: domain.StatusActive,
		StartDate:     day(1),
	})
	require.NoError(t, err)
	return v
}

// createSupplier creates a supplier for project p1.
func (e *env) createSupplier(t *testing.T) domain.Supplier {
	t.Helper()

	sup, err := e.suppliers.Create(context.Background(), domain.Supplier{
		ProjectID: "p1",
		Name:      "City Fuels",
	})
	require.NoError(t, err)
	return sup
}

// openEntry opens a fuel entry for the vehicle with the given litres and
// opening reading on day(2).
func (e *env) openEntry(t *testing.T, v domain.Vehicle, sup domain.Supplier, litres, openingKm float64) domain.FuelEntry {
	t.Helper()

	entry, err := e.fuel.Open(context.Background(), service.OpenFuelEntryInput{
		ProjectID:  "p1",
		VehicleID:  v.ID,
		SupplierID: sup.ID,
		Date:       day(2),
		Litres:     litres,
		OpeningKm:  openingKm,
	})
	require.NoError(t, err)
	return entry
}
