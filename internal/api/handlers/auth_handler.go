package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sTrAy74/swi-web/internal/gateway"
	"github.com/sTrAy74/swi-web/internal/infrastructure/observability"
	"github.com/sTrAy74/swi-web/pkg/validate"
)

// AuthHandler proxies login and registration to the gateway, applying
// input validation locally so obviously bad submissions never leave us.
type AuthHandler struct {
	gw *gateway.Client
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(gw *gateway.Client) *AuthHandler {
	return &AuthHandler{gw: gw}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload gateway.LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Identifier == "" || payload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "identifier and password are required")
		return
	}

	resp, err := h.gw.Login(r.Context(), payload)
	if err != nil {
		respondGatewayError(w, err, "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

type registerCustomerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone_number"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// RegisterCustomer handles POST /api/auth/register/customer
func (h *AuthHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateIdentity(req.Email, req.Password, req.Phone); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Pincode != "" && !validate.IsValidPincode(req.Pincode) {
		respondWithError(w, http.StatusBadRequest, "invalid pincode")
		return
	}

	resp, err := h.gw.RegisterCustomer(r.Context(), gateway.RegisterCustomerPayload{
		FullName: validate.SanitizeString(req.FullName),
		Email:    req.Email,
		Password: req.Password,
		Role:     "customer",
		Profile: gateway.CustomerProfileInput{
			PhoneNumber: req.Phone,
			Address:     validate.SanitizeString(req.Address),
			City:        validate.SanitizeString(req.City),
			State:       validate.SanitizeString(req.State),
			Pincode:     req.Pincode,
		},
	})
	if err != nil {
		respondGatewayError(w, err, "Registration failed")
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

type registerProviderRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Phone           string  `json:"phone_number"`
	BusinessName    string  `json:"business_name"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Pincode         string  `json:"pincode"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ExperienceYears int     `json:"experience_years"`
	About           string  `json:"about"`
	Services        []int   `json:"services"`
}

// RegisterProvider handles POST /api/auth/register/provider
func (h *AuthHandler) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	var req registerProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateIdentity(req.Email, req.Password, req.Phone); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if req.BusinessName == "" {
		respondWithError(w, http.StatusBadRequest, "business name is required")
		return
	}
	if req.Pincode != "" && !validate.IsValidPincode(req.Pincode) {
		respondWithError(w, http.StatusBadRequest, "invalid pincode")
		return
	}

	resp, err := h.gw.RegisterProvider(r.Context(), gateway.RegisterProviderPayload{
		FullName: validate.SanitizeString(req.FullName),
		Email:    req.Email,
		Password: req.Password,
		Role:     "provider",
		Profile: gateway.ProviderProfileInput{
			PhoneNumber:     req.Phone,
			BusinessName:    validate.SanitizeString(req.BusinessName),
			Address:         validate.SanitizeString(req.Address),
			City:            validate.SanitizeString(req.City),
			State:           validate.SanitizeString(req.State),
			Pincode:         req.Pincode,
			Latitude:        req.Latitude,
			Longitude:       req.Longitude,
			ExperienceYears: req.ExperienceYears,
			About:           validate.SanitizeString(req.About),
			Services:        req.Services,
		},
	})
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("provider registration rejected upstream")
		respondGatewayError(w, err, "Registration failed")
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

// validateIdentity runs the shared registration checks, returning a
// user-facing message or "" when everything passes.
func validateIdentity(email, password, phone string) string {
	if !validate.IsValidEmail(email) {
		return "invalid email address"
	}
	if result := validate.ValidatePassword(password); !result.Valid {
		return result.Message
	}
	if phone != "" && !validate.IsValidPhone(phone) {
		return "invalid phone number"
	}
	return ""
}
