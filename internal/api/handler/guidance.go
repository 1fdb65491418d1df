package handler

import (
	"errors"
	"net/http"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

// GuidanceHandler handles guidance content and support resource endpoints
type GuidanceHandler struct {
	guidanceService *service.GuidanceService
}

// NewGuidanceHandler creates a new guidance handler
func NewGuidanceHandler(guidanceService *service.GuidanceService) *GuidanceHandler {
	return &GuidanceHandler{guidanceService: guidanceService}
}

// ListGuidance handles GET /guidance-data. Every supplied query facet must
// match exactly; no match is a 404.
func (h *GuidanceHandler) ListGuidance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.GuidanceFilter{
		Category: q.Get("category"),
		Religion: q.Get("religion"),
		Location: q.Get("location"),
		Budget:   q.Get("budget"),
	}

	items, err := h.guidanceService.ListGuidance(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "no guidance found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, items)
}

// SupportResources handles GET /support-resources
func (h *GuidanceHandler) SupportResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SupportResourceFilter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
	}

	resources, err := h.guidanceService.ListSupportResources(r.Context(), filter)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, resources)
}
