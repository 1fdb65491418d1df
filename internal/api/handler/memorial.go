package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

// MemorialHandler handles memorial page endpoints
type MemorialHandler struct {
	memorialService *service.MemorialService
}

// NewMemorialHandler creates a new memorial handler
func NewMemorialHandler(memorialService *service.MemorialService) *MemorialHandler {
	return &MemorialHandler{memorialService: memorialService}
}

// Create handles POST /memorials
func (h *MemorialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.MemorialCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	memorial, err := h.memorialService.Create(r.Context(), req)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, memorial)
}

// GetBySlug handles GET /memorials/{slug}
func (h *MemorialHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	memorial, err := h.memorialService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "memorial not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, memorial)
}

// List handles GET /memorials
func (h *MemorialHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "invalid limit")
			return
		}
		limit = parsed
	}

	memorials, err := h.memorialService.ListRecent(r.Context(), limit)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, map[string]any{"memorials": memorials})
}
