package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

var validate = validator.New()

// SessionHandler handles session, assessment and step-progress endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.UserSessionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), req)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, session)
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.sessionService.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "session not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, session)
}

// Update handles PUT /sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UserSessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.sessionService.UpdateSession(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "session not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, session)
}

// CreateAssessment handles POST /assessments
func (h *SessionHandler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req domain.AssessmentCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	assessment, err := h.sessionService.CreateAssessment(r.Context(), req)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, assessment)
}

// GetAssessment handles GET /assessments/{sessionID}
func (h *SessionHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	assessment, err := h.sessionService.GetAssessment(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "assessment not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, assessment)
}

// SaveProgress handles POST /step-progress
func (h *SessionHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req domain.StepProgressSave
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	progress, err := h.sessionService.SaveProgress(r.Context(), req)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, progress)
}

// ListProgress handles GET /step-progress/{sessionID}
func (h *SessionHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	progress, err := h.sessionService.ListProgress(r.Context(), sessionID)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	if progress == nil {
		progress = []domain.StepProgress{}
	}
	response.OK(w, progress)
}
