package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/service"
)

// ---- Register --------------------------------------------------------------

func TestVehicleService_Register_OK(t *testing.T) {
	e := newEnv(t)

	v := e.registerVehicle(t, domain.ClassOwned, 0)

	assert.NotEqual(t, uuid.Nil, v.ID)
	require.Len(t, v.Periods, 1)
	assert.Equal(t, domain.StatusActive, v.Periods[0].Status)
	assert.Equal(t, "Initial registration", v.Periods[0].Reason)
	assert.Nil(t, v.Periods[0].EndDate)
	assert.Equal(t, domain.StatusActive, v.Status(), "current status is the last period's status")
}

func TestVehicleService_Register_Validation(t *testing.T) {
	e := newEnv(t)

	base := service.RegisterVehicleInput{
		ProjectID:     "p1",
		Name:          "Truck 1",
		Registration:  "KA-02-9999",
		Class:         domain.ClassOwned,
		FuelType:      domain.FuelDiesel,
		InitialStatus: domain.StatusActive,
		StartDate:     day(1),
	}

	cases := map[string]func(*service.RegisterVehicleInput){
		"blank name":          func(in *service.RegisterVehicleInput) { in.Name = "   " },
		"blank registration":  func(in *service.RegisterVehicleInput) { in.Registration = "" },
		"unknown class":       func(in *service.RegisterVehicleInput) { in.Class = "hovercraft" },
		"unknown fuel type":   func(in *service.RegisterVehicleInput) { in.FuelType = "plutonium" },
		"unknown status":      func(in *service.RegisterVehicleInput) { in.InitialStatus = "paused" },
		"zero start date":     func(in *service.RegisterVehicleInput) { in.StartDate = time.Time{} },
		"rental without rate": func(in *service.RegisterVehicleInput) { in.Class = domain.ClassRentDaily; in.RentalRate = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := e.vehicles.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ---- ChangeStatus ----------------------------------------------------------

// TestVehicleService_ChangeStatus_History walks the full scenario: register
// active on day 1, deactivate on day 10, reactivate on day 20. Three
// contiguous periods result, and the first lasts 10 days inclusive.
func TestVehicleService_ChangeStatus_History(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)

	v, err := e.vehicles.ChangeStatus(context.Background(), v.ID, day(10), "R1")
	require.NoError(t, err)
	v, err = e.vehicles.ChangeStatus(context.Background(), v.ID, day(20), "R2")
	require.NoError(t, err)

	require.Len(t, v.Periods, 3)

	first, second, third := v.Periods[0], v.Periods[1], v.Periods[2]

	assert.Equal(t, domain.StatusActive, first.Status)
	require.NotNil(t, first.EndDate)
	assert.Equal(t, day(10), *first.EndDate)

	assert.Equal(t, domain.StatusInactive, second.Status)
	assert.Equal(t, "R1", second.Reason)
	assert.Equal(t, day(10), second.StartDate, "periods stay contiguous")
	require.NotNil(t, second.EndDate)
	assert.Equal(t, day(20), *second.EndDate)

	assert.Equal(t, domain.StatusActive, third.Status)
	assert.Equal(t, "R2", third.Reason)
	assert.Equal(t, day(20), third.StartDate)
	assert.Nil(t, third.EndDate, "only the last period is open-ended")

	assert.Equal(t, 10, first.DurationDays(day(30)), "inclusive of both endpoints")
	assert.Equal(t, domain.StatusActive, v.Status())
	assert.Equal(t, day(20), v.StatusSince())
}

func TestVehicleService_ChangeStatus_MissingReason(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)

	_, err := e.vehicles.ChangeStatus(context.Background(), v.ID, day(10), "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVehicleService_ChangeStatus_BeforeCurrentPeriodRejected(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)

	_, err := e.vehicles.ChangeStatus(context.Background(), v.ID, day(10), "down")
	require.NoError(t, err)

	_, err = e.vehicles.ChangeStatus(context.Background(), v.ID, day(5), "backdated")
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := e.vehicles.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Len(t, got.Periods, 2, "rejected change mutates nothing")
}

func TestVehicleService_ChangeStatus_SameDayFlip(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)

	v, err := e.vehicles.ChangeStatus(context.Background(), v.ID, day(1), "wrong status at registration")

	require.NoError(t, err)
	require.Len(t, v.Periods, 2)
	assert.Equal(t, 1, v.Periods[0].DurationDays(day(30)))
	assert.Equal(t, domain.StatusInactive, v.Status())
}

// A failed persistence flush must leave the status history untouched: the
// current period stays open and no successor is recorded.
func TestVehicleService_ChangeStatus_FlushFailureLeavesHistoryUntouched(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)

	e.adapter.SaveErr = errors.New("disk full")
	_, err := e.vehicles.ChangeStatus(context.Background(), v.ID, day(10), "Engine overhaul")
	require.Error(t, err)

	e.adapter.SaveErr = nil
	got, err := e.vehicles.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	require.Len(t, got.Periods, 1)
	assert.Nil(t, got.Periods[0].EndDate, "the original period is still open")
	assert.Equal(t, domain.StatusActive, got.Status())
	assert.Equal(t, "Initial registration", got.Periods[0].Reason)
}

func TestVehicleService_ChangeStatus_NotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.vehicles.ChangeStatus(context.Background(), uuid.New(), day(10), "gone")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestVehicleService_Delete_Unreferenced(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)

	require.NoError(t, e.vehicles.Delete(context.Background(), v.ID, false))

	_, err := e.vehicles.GetByID(context.Background(), v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleService_Delete_ReferencedRequiresCascade(t *testing.T) {
	e := newEnv(t)
	v := e.registerVehicle(t, domain.ClassOwned, 0)
	sup := e.createSupplier(t)
	entry := e.openEntry(t, v, sup, 10, 1000)

	err := e.vehicles.Delete(context.Background(), v.ID, false)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.vehicles.GetByID(context.Background(), v.ID)
	require.NoError(t, err, "vehicle survives the rejected delete")

	require.NoError(t, e.vehicles.Delete(context.Background(), v.ID, true))

	_, err = e.fuel.GetByID(context.Background(), entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "cascade removes the vehicle's entries")
}

func TestVehicleService_Delete_NotFound(t *testing.T) {
	e := newEnv(t)

	err := e.vehicles.Delete(context.Background(), uuid.New(), false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List ------------------------------------------------------------------

func TestVehicleService_List_ByProject(t *testing.T) {
	e := newEnv(t)
	e.registerVehicle(t, domain.ClassOwned, 0)

	other, err := e.vehicles.Register(context.Background(), service.RegisterVehicleInput{
		ProjectID:     "p2",
		Name:          "Tipper 7",
		Registration:  "KA-03-0007",
		Class:         domain.ClassOwned,
		FuelType:      domain.FuelDiesel,
		InitialStatus: domain.StatusActive,
		StartDate:     day(1),
	})
	require.NoError(t, err)

	got, err := e.vehicles.List(context.Background(), "p2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].ID)

	all, err := e.vehicles.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
