package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sTrAy74/swi-web/internal/gateway"
	"github.com/sTrAy74/swi-web/internal/session"
)

// BookingHandler proxies booking and review operations to the gateway.
// All of its endpoints require a bearer token; the per-request session is
// hydrated from the Authorization header and passed down so the gateway
// client can attach it and retire it on a 401.
type BookingHandler struct {
	gw *gateway.Client
}

// NewBookingHandler creates a booking handler
func NewBookingHandler(gw *gateway.Client) *BookingHandler {
	return &BookingHandler{gw: gw}
}

func requireSession(w http.ResponseWriter, r *http.Request) *session.Store {
	s := session.FromRequest(r)
	if !s.Authenticated() {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return nil
	}
	return s
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	s := requireSession(w, r)
	if s == nil {
		return
	}

	var payload gateway.CreateBookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.ProviderID == 0 {
		respondWithError(w, http.StatusBadRequest, "providerId is required")
		return
	}
	if len(payload.Services) == 0 {
		respondWithError(w, http.StatusBadRequest, "at least one service is required")
		return
	}
	if payload.Date == "" {
		respondWithError(w, http.StatusBadRequest, "date is required")
		return
	}

	// New bookings always start in the same state; the gateway moves them on.
	payload.PaymentStatus = "pending"
	payload.CurrentStatus = "requested"

	resp, err := h.gw.CreateBooking(gateway.WithSession(r.Context(), s), payload)
	if err != nil {
		respondGatewayError(w, err, "Failed to create booking")
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

// MyBookings handles GET /api/bookings
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	s := requireSession(w, r)
	if s == nil {
		return
	}

	resp, err := h.gw.MyBookings(gateway.WithSession(r.Context(), s))
	if err != nil {
		respondGatewayError(w, err, "Failed to load bookings")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// CreateReview handles POST /api/reviews
func (h *BookingHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	s := requireSession(w, r)
	if s == nil {
		return
	}

	var payload gateway.CreateReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Booking == 0 {
		respondWithError(w, http.StatusBadRequest, "booking is required")
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		respondWithError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	resp, err := h.gw.CreateReview(gateway.WithSession(r.Context(), s), payload)
	if err != nil {
		respondGatewayError(w, err, "Failed to submit review")
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}
