package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

// SupplierHandler handles supplier directory endpoints
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// Search handles GET /suppliers/search
func (h *SupplierHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	postcode := q.Get("postcode")
	if postcode == "" {
		response.BadRequest(w, "postcode is required")
		return
	}

	params := domain.SupplierSearch{
		Postcode:    postcode,
		Type:        q.Get("type"),
		RadiusMiles: service.DefaultSearchRadiusMiles,
		SortBy:      q.Get("sort_by"),
	}
	if raw := q.Get("radius_miles"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "invalid radius_miles")
			return
		}
		params.RadiusMiles = radius
	}

	result, err := h.supplierService.Search(r.Context(), params)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, result)
}

// Get handles GET /suppliers/{id}
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	supplier, err := h.supplierService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "supplier not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, supplier)
}
