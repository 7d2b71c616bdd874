package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/service"
)

// openFuelEntryRequest is the body for POST /fuel-entries.
type openFuelEntryRequest struct {
	ProjectID     string  `json:"project_id"`
	VehicleID     string  `json:"vehicle_id"`
	SupplierID    string  `json:"supplier_id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Litres        float64 `json:"litres"`
	OpeningKm     float64 `json:"opening_km"`
	PricePerLitre float64 `json:"price_per_litre,omitempty"`
	OpeningPhoto  string  `json:"opening_photo,omitempty"`
}

// OpenFuelEntry handles POST /fuel-entries.
func (s *Server) OpenFuelEntry(w http.ResponseWriter, r *http.Request) {
	var req openFuelEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		writeRequestError(w, "invalid vehicle_id")
		return
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		writeRequestError(w, "invalid supplier_id")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeRequestError(w, "invalid date, expected YYYY-MM-DD")
		return
	}

	entry, err := s.fuel.Open(r.Context(), service.OpenFuelEntryInput{
		ProjectID:     req.ProjectID,
		VehicleID:     vehicleID,
		SupplierID:    supplierID,
		Date:          date,
		Litres:        req.Litres,
		OpeningKm:     req.OpeningKm,
		PricePerLitre: req.PricePerLitre,
		OpeningPhoto:  req.OpeningPhoto,
	})
	if err != nil {
		writeServiceError(w, err, "vehicle or supplier not found")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// closeEntryRequest is the body for closing a fuel entry or a daily log.
type closeEntryRequest struct {
	ClosingKm    float64 `json:"closing_km"`
	ClosingPhoto string  `json:"closing_photo,omitempty"`
}

// CloseFuelEntry handles POST /fuel-entries/{id}/close.
func (s *Server) CloseFuelEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid fuel entry id")
		return
	}
	var req closeEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	entry, err := s.fuel.Close(r.Context(), id, req.ClosingKm, req.ClosingPhoto)
	if err != nil {
		writeServiceError(w, err, "fuel entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// ListFuelEntries handles GET /fuel-entries. Supports the shared filter
// query parameters (project, vehicle, supplier, fuel_type, status, from, to).
func (s *Server) ListFuelEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	entries, err := s.fuel.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "fuel entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetFuelEntry handles GET /fuel-entries/{id}.
func (s *Server) GetFuelEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid fuel entry id")
		return
	}
	entry, err := s.fuel.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "fuel entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteFuelEntry handles DELETE /fuel-entries/{id}.
func (s *Server) DeleteFuelEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid fuel entry id")
		return
	}
	if err := s.fuel.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "fuel entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
