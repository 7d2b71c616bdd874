package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVehicleSummary(t *testing.T) {
	r := newRouter(t)
	v := registerVehicle(t, r, "owned", 0)
	sup := createSupplier(t, r)
	entry := openFuelEntry(t, r, idOf(t, v), sup, 40)
	rec := do(t, r, http.MethodPost, "/fuel-entries/"+idOf(t, entry)+"/close", map[string]any{"closing_km": 1400.0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/vehicles/"+idOf(t, v)+"/summary", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var sum map[string]any
	decode(t, rec, &sum)
	assert.Equal(t, 1.0, sum["entry_count"])
	assert.Equal(t, 400.0, sum["total_distance"])
	assert.Equal(t, 40.0, sum["total_litres"])
	assert.Equal(t, 10.0, sum["avg_mileage"])
	assert.NotContains(t, sum, "rent", "owned vehicles carry no rent block")
}

func TestGetVehicleSummary_ZeroLitres(t *testing.T) {
	r := newRouter(t)
	v := registerVehicle(t, r, "owned", 0)

	rec := do(t, r, http.MethodGet, "/vehicles/"+idOf(t, v)+"/summary", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var sum map[string]any
	decode(t, rec, &sum)
	assert.Equal(t, 0.0, sum["avg_mileage"], "must be zero, never NaN")
}

func TestGetVehicleRentCost(t *testing.T) {
	r := newRouter(t)
	v := registerVehicle(t, r, "rent_daily", 100)

	rec := do(t, r, http.MethodGet, "/vehicles/"+idOf(t, v)+"/rent", nil)

	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var rent map[string]any
	decode(t, rec, &rent)
	assert.Equal(t, 100.0, rent["rate"])
	assert.GreaterOrEqual(t, rent["days"], 1.0, "the first held day always bills")
}

func TestGetVehicleRentCost_OwnedVehicle(t *testing.T) {
	r := newRouter(t)
	v := registerVehicle(t, r, "owned", 0)

	rec := do(t, r, http.MethodGet, "/vehicles/"+idOf(t, v)+"/rent", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestGetProjectSummary(t *testing.T) {
	r := newRouter(t)
	registerVehicle(t, r, "owned", 0)

	rec := do(t, r, http.MethodGet, "/analytics/projects/p1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var sum map[string]any
	decode(t, rec, &sum)
	assert.Equal(t, "p1", sum["project_id"])
	assert.Equal(t, 1.0, sum["vehicle_count"])
}

func TestGetFuelTypeSummaries(t *testing.T) {
	r := newRouter(t)
	v := registerVehicle(t, r, "owned", 0)
	sup := createSupplier(t, r)
	openFuelEntry(t, r, idOf(t, v), sup, 40)

	rec := do(t, r, http.MethodGet, "/analytics/fuel-types?project=p1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var sums []map[string]any
	decode(t, rec, &sums)
	require.Len(t, sums, 1)
	assert.Equal(t, "petrol", sums[0]["fuel_type"])
	assert.Equal(t, 40.0, sums[0]["total_litres"])
}

func TestGetDailySummaries(t *testing.T) {
	r := newRouter(t)
	v := registerVehicle(t, r, "owned", 0)
	sup := createSupplier(t, r)
	openFuelEntry(t, r, idOf(t, v), sup, 40)

	rec := do(t, r, http.MethodGet, "/analytics/daily?project=p1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var sums []map[string]any
	decode(t, rec, &sums)
	require.Len(t, sums, 1)
	assert.Equal(t, 1.0, sums[0]["entry_count"])
}

func TestGetDailySummaries_BadDateFilter(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/analytics/daily?to=soon", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
