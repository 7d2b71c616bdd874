package handler

import (
	"net/http"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/service"
)

// registerVehicleRequest is the body for POST /vehicles.
type registerVehicleRequest struct {
	ProjectID     string  `json:"project_id"`
	Name          string  `json:"name"`
	Registration  string  `json:"registration"`
	Class         string  `json:"class"`
	FuelType      string  `json:"fuel_type"`
	RentalRate    float64 `json:"rental_rate,omitempty"`
	InitialStatus string  `json:"initial_status"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
}

// RegisterVehicle handles POST /vehicles.
func (s *Server) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	var req registerVehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeRequestError(w, "invalid start_date, expected YYYY-MM-DD")
		return
	}

	vehicle, err := s.vehicles.Register(r.Context(), service.RegisterVehicleInput{
		ProjectID:     req.ProjectID,
		Name:          req.Name,
		Registration:  req.Registration,
		Class:         domain.VehicleClass(req.Class),
		FuelType:      domain.FuelType(req.FuelType),
		RentalRate:    req.RentalRate,
		InitialStatus: domain.VehicleStatus(req.InitialStatus),
		StartDate:     startDate,
	})
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// ListVehicles handles GET /vehicles. Supports ?project= to scope to one project.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context(), r.URL.Query().Get("project"))
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid vehicle id")
		return
	}
	vehicle, err := s.vehicles.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// changeStatusRequest is the body for POST /vehicles/{id}/status.
type changeStatusRequest struct {
	EffectiveDate string `json:"effective_date"` // YYYY-MM-DD
	Reason        string `json:"reason"`
}

// ChangeVehicleStatus handles POST /vehicles/{id}/status. The new status is
// always the negation of the current one, so the body carries only the
// effective date and the reason.
func (s *Server) ChangeVehicleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid vehicle id")
		return
	}
	var req changeStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		writeRequestError(w, "invalid effective_date, expected YYYY-MM-DD")
		return
	}

	vehicle, err := s.vehicles.ChangeStatus(r.Context(), id, effectiveDate, req.Reason)
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /vehicles/{id}. Pass ?cascade=true to also
// remove the vehicle's fuel entries and daily logs.
func (s *Server) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid vehicle id")
		return
	}
	cascade := r.URL.Query().Get("cascade") == "true"

	if err := s.vehicles.Delete(r.Context(), id, cascade); err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetVehicleSummary handles GET /vehicles/{id}/summary.
func (s *Server) GetVehicleSummary(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid vehicle id")
		return
	}
	summary, err := s.analytics.VehicleSummary(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetVehicleRentCost handles GET /vehicles/{id}/rent.
func (s *Server) GetVehicleRentCost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid vehicle id")
		return
	}
	rent, err := s.analytics.RentCost(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, rent)
}
