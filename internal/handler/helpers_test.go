package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/manigandan-posana/fuel/internal/handler"
	"github.com/manigandan-posana/fuel/internal/persist"
	"github.com/manigandan-posana/fuel/internal/repo"
	"github.com/manigandan-posana/fuel/internal/service"
)

// newRouter wires the full stack — real services over an in-memory adapter —
// behind the HTTP routes. Handler tests exercise the same paths production
// traffic takes, minus the listener.
func newRouter(t *testing.T) chi.Router {
	t.Helper()

	store, err := repo.Open(context.Background(), persist.NewMemory())
	require.NoError(t, err)

	vehicles := repo.NewVehicleRepo(store)
	entries := repo.NewFuelEntryRepo(store)
	logs := repo.NewDailyLogRepo(store)
	suppliers := repo.NewSupplierRepo(store)

	server := handler.NewServer(
		service.NewVehicleService(vehicles, entries, logs),
		service.NewFuelService(vehicles, suppliers, entries),
		service.NewDailyLogService(vehicles, logs),
		service.NewSupplierService(suppliers),
		service.NewAnalyticsService(vehicles, entries, logs),
	)
	return server.Routes()
}

// do runs one request against the router. body may be a raw string (sent
// as-is) or any value marshalled to JSON.
func do(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into v, failing the test on bad JSON.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

// errorCode extracts the error.code field from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decode(t, rec, &body)
	return body.Error.Code
}

// errorMessage extracts the error.message field from an error response.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decode(t, rec, &body)
	return body.Error.Message
}

// registerVehicle registers a vehicle over HTTP and returns its decoded body.
func registerVehicle(t *testing.T, r chi.Router, class string, rate float64) map[string]any {
	t.Helper()

	rec := do(t, r, http.MethodPost, "/vehicles", map[string]any{
		"project_id":     "p1",
		"name":           "Excavator 3",
		"registration":   "KA-01-1234",
		"class":          class,
		"fuel_type":      "petrol",
		"rental_rate":    rate,
		"initial_status": "active",
		"start_date":     "2025-06-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var v map[string]any
	decode(t, rec, &v)
	return v
}

// createSupplier creates a supplier over HTTP and returns its ID.
func createSupplier(t *testing.T, r chi.Router) string {
	t.Helper()

	rec := do(t, r, http.MethodPost, "/suppliers", map[string]any{
		"project_id": "p1",
		"name":       "City Fuels",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var sup map[string]any
	decode(t, rec, &sup)
	return sup["id"].(string)
}

// openFuelEntry opens a fuel entry over HTTP and returns its decoded body.
func openFuelEntry(t *testing.T, r chi.Router, vehicleID, supplierID string, litres float64) map[string]any {
	t.Helper()

	rec := do(t, r, http.MethodPost, "/fuel-entries", map[string]any{
		"project_id":      "p1",
		"vehicle_id":      vehicleID,
		"supplier_id":     supplierID,
		"date":            "2025-06-02",
		"litres":          litres,
		"opening_km":      1000.0,
		"price_per_litre": 2.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var entry map[string]any
	decode(t, rec, &entry)
	return entry
}

// idOf returns the string id field of a decoded record.
func idOf(t *testing.T, record map[string]any) string {
	t.Helper()
	id, ok := record["id"].(string)
	require.True(t, ok, "record has no id: %v", record)
	return id
}
