package handler

import (
	"net/http"

	"github.com/manigandan-posana/fuel/internal/domain"
)

// createSupplierRequest is the body for POST /suppliers.
type createSupplierRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Contact   string `json:"contact,omitempty"`
}

// CreateSupplier handles POST /suppliers.
func (s *Server) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := decodeBody(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	supplier, err := s.suppliers.Create(r.Context(), domain.Supplier{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Contact:   req.Contact,
	})
	if err != nil {
		writeServiceError(w, err, "supplier not found")
		return
	}
	writeJSON(w, http.StatusCreated, supplier)
}

// ListSuppliers handles GET /suppliers. Supports ?project= to scope to one project.
func (s *Server) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.suppliers.List(r.Context(), r.URL.Query().Get("project"))
	if err != nil {
		writeServiceError(w, err, "supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// GetSupplier handles GET /suppliers/{id}.
func (s *Server) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid supplier id")
		return
	}
	supplier, err := s.suppliers.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE /suppliers/{id}.
func (s *Server) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRequestError(w, "invalid supplier id")
		return
	}
	if err := s.suppliers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "supplier not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
