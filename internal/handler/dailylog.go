package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/service"
)

// openDailyLogRequest is the body for POST /daily-logs.
type openDailyLogRequest struct {
	ProjectID    string  `json:"project_id"`
	VehicleID    string  `json:"vehicle_id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	OpeningKm    float64 `json:"opening_km"`
	OpeningPhoto string  `json:"opening_photo,omitempty"`
}

// OpenDailyLog handles POST /daily-logs.
func (s *Server) OpenDailyLog(w http.ResponseWriter, r *http.Request) {
	var req openDailyLogRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		writeRequestError(w, "invalid vehicle_id")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeRequestError(w, "invalid date, expected YYYY-MM-DD")
		return
	}

	log, err := s.logs.Open(r.Context(), service.OpenDailyLogInput{
		ProjectID:    req.ProjectID,
		VehicleID:    vehicleID,
		Date:         date,
		OpeningKm:    req.OpeningKm,
		OpeningPhoto: req.OpeningPhoto,
	})
	if err != nil {
		writeServiceError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

// CloseDailyLog handles POST /daily-logs/{id}/close.
func (s *Server) CloseDailyLog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid daily log id")
		return
	}
	var req closeEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	log, err := s.logs.Close(r.Context(), id, req.ClosingKm, req.ClosingPhoto)
	if err != nil {
		writeServiceError(w, err, "daily log not found")
		return
	}
	writeJSON(w, http.StatusOK, log)
}

// ListDailyLogs handles GET /daily-logs with the shared filter parameters.
func (s *Server) ListDailyLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	logs, err := s.logs.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "daily log not found")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// GetDailyLog handles GET /daily-logs/{id}.
func (s *Server) GetDailyLog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid daily log id")
		return
	}
	log, err := s.logs.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "daily log not found")
		return
	}
	writeJSON(w, http.StatusOK, log)
}

// DeleteDailyLog handles DELETE /daily-logs/{id}.
func (s *Server) DeleteDailyLog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid daily log id")
		return
	}
	if err := s.logs.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "daily log not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
