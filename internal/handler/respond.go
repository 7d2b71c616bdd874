package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
)

// dateLayout is the wire format for day-granular dates in request bodies
// and query parameters. Responses carry full RFC 3339 timestamps.
const dateLayout = "2006-01-02"

// errorResponse is the JSON body for every error status.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures are ignored:
// the status line has already been written and there is nothing left to do.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps a service error onto an HTTP response:
// domain.ErrValidation → 422, domain.ErrNotFound → 404 with notFoundMsg,
// anything else → 500. The caller supplies notFoundMsg (e.g. "vehicle not
// found") because the handler is the layer that knows what was looked up.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: validationMessage(err)},
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: notFoundMsg},
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// writeRequestError reports a request rejected before reaching the service
// layer (malformed body, bad ID, bad date).
func writeRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// validationMessage extracts the human-readable part from a wrapped
// validation error, e.g.
// "service.FuelService.Open: validation error: litres must be greater than zero"
// → "litres must be greater than zero".
func validationMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// decodeBody decodes the request body into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// idParam parses the {id} URL parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// parseDate parses a required "2006-01-02" date string.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// filterFromQuery builds an EntryFilter from the shared list query
// parameters: project, vehicle, supplier, fuel_type, status, from, to.
// All are optional and compose.
func filterFromQuery(r *http.Request) (domain.EntryFilter, error) {
	q := r.URL.Query()
	f := domain.EntryFilter{
		ProjectID: q.Get("project"),
		FuelType:  domain.FuelType(q.Get("fuel_type")),
		Status:    domain.RecordStatus(q.Get("status")),
	}

	if v := q.Get("vehicle"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return domain.EntryFilter{}, errors.New("invalid vehicle id")
		}
		f.VehicleID = id
	}
	if v := q.Get("supplier"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return domain.EntryFilter{}, errors.New("invalid supplier id")
		}
		f.SupplierID = id
	}
	if v := q.Get("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return domain.EntryFilter{}, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		f.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return domain.EntryFilter{}, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		f.To = &t
	}

	return f, nil
}
