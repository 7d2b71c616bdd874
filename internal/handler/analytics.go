package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetProjectSummary handles GET /analytics/projects/{projectID}.
func (s *Server) GetProjectSummary(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		writeRequestError(w, "project id is required")
		return
	}
	summary, err := s.analytics.ProjectSummary(r.Context(), projectID)
	if err != nil {
		writeServiceError(w, err, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetFuelTypeSummaries handles GET /analytics/fuel-types with the shared
// filter parameters.
func (s *Server) GetFuelTypeSummaries(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	summaries, err := s.analytics.FuelTypeSummaries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "fuel type summary not found")
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GetDailySummaries handles GET /analytics/daily with the shared filter
// parameters.
func (s *Server) GetDailySummaries(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	summaries, err := s.analytics.DailySummaries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "daily summary not found")
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
