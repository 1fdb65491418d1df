package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/llm"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

// ChatHandler handles AI chat endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// chatRequest is the wire form of a chat turn: the message plus optional
// structured context folded into the system prompt.
type chatRequest struct {
	domain.ChatRequest
	Context struct {
		Jurisdiction string `json:"jurisdiction,omitempty"`
		Religion     string `json:"religion,omitempty"`
		Postcode     string `json:"postcode,omitempty"`
	} `json:"context,omitempty"`
}

// Chat handles POST /ai/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req.ChatRequest); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	resp, err := h.chatService.Chat(r.Context(), req.ChatRequest, llm.PromptContext{
		Jurisdiction: req.Context.Jurisdiction,
		Religion:     req.Context.Religion,
		Postcode:     req.Context.Postcode,
	})
	if err != nil {
		response.InternalError(w, "AI chat failed: "+err.Error())
		return
	}
	response.OK(w, resp)
}

// History handles GET /ai/history/{sessionID}
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatService.History(r.Context(), sessionID)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, map[string]any{
		"session_id": sessionID,
		"messages":   messages,
	})
}
