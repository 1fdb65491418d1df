package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

// DocumentHandler handles document vault endpoints
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles POST /documents
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req domain.DocumentUpload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	doc, err := h.documentService.Upload(r.Context(), req)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, doc)
}

// Get handles GET /documents/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.documentService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "document not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, doc)
}

// List handles GET /documents, filtered by user_id or session_id.
// Listings never include document content.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.DocumentFilter{
		UserID:    q.Get("user_id"),
		SessionID: q.Get("session_id"),
	}

	docs, err := h.documentService.List(r.Context(), filter)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, map[string]any{"documents": docs})
}

// Delete handles DELETE /documents/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "document not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, map[string]string{"status": "deleted"})
}
