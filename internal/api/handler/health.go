package handler

import (
	"context"
	"net/http"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health returns service health status. The store check is advisory; the
// endpoint reports healthy as long as the process can serve requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			database = "unreachable"
		}
	}
	response.OK(w, map[string]string{
		"status":   "healthy",
		"database": database,
	})
}

// Root returns the API banner
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "AfterLife API",
		"status":  "operational",
	})
}
