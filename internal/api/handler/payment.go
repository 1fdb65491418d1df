package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PyedPyper01/Afterlife-1/internal/api/response"
	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/payments/stripe"
	"github.com/PyedPyper01/Afterlife-1/internal/service"
)

// maxWebhookBody caps the webhook payload read.
const maxWebhookBody = 1 << 20

// PaymentHandler handles checkout and webhook endpoints
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateCheckout handles POST /payments/checkout/session
func (h *PaymentHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.paymentService.CreateCheckout(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPackage), errors.Is(err, service.ErrFreePackage):
			response.BadRequest(w, err.Error())
		case errors.Is(err, domain.ErrNotConfigured):
			response.InternalError(w, "payment service not configured")
		default:
			response.InternalError(w, err.Error())
		}
		return
	}
	response.OK(w, session)
}

// CheckoutStatus handles GET /payments/checkout/status/{sessionID}
func (h *PaymentHandler) CheckoutStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.paymentService.GetCheckoutStatus(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			response.InternalError(w, "payment service not configured")
			return
		}
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, session)
}

// Webhook handles POST /webhook/stripe
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		response.BadRequest(w, "failed to read payload")
		return
	}

	err = h.paymentService.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			response.InternalError(w, "payment service not configured")
			return
		}
		if errors.Is(err, stripe.ErrInvalidSignature) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}
	response.OK(w, map[string]string{"status": "success"})
}
