package gateway

import (
	"context"
	"net/http"
)

// User is the minimal account record returned by auth endpoints
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginPayload carries login credentials. Identifier is an email or username.
type LoginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse is the login endpoint payload. JWT is the bearer token for
// subsequent authenticated calls.
type LoginResponse struct {
	Message string `json:"message"`
	JWT     string `json:"jwt"`
	User    User   `json:"user"`
}

// Login authenticates against the gateway
func (c *Client) Login(ctx context.Context, payload LoginPayload) (*LoginResponse, error) {
	out := &LoginResponse{}
	if err := c.doJSON(ctx, http.MethodPost, basePath+"/login", nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomerProfileInput is the profile block of a customer registration
type CustomerProfileInput struct {
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

// RegisterCustomerPayload registers a customer account
type RegisterCustomerPayload struct {
	FullName string               `json:"full_name"`
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Role     string               `json:"role"`
	Profile  CustomerProfileInput `json:"profile"`
}

// ProviderProfileInput is the profile block of a provider registration
type ProviderProfileInput struct {
	PhoneNumber     string  `json:"phone_number"`
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

// RegisterProviderPayload registers a provider account
type RegisterProviderPayload struct {
	FullName string               `json:"full_name"`
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Role     string               `json:"role"`
	Profile  ProviderProfileInput `json:"profile"`
}

// RegisterResponse is the registration payload. JWT and User are only set
// for provider registrations, which log the account in immediately.
type RegisterResponse struct {
	Message string `json:"message"`
	JWT     string `json:"jwt,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// RegisterCustomer creates a customer account
func (c *Client) RegisterCustomer(ctx context.Context, payload RegisterCustomerPayload) (*RegisterResponse, error) {
	out := &RegisterResponse{}
	if err := c.doJSON(ctx, http.MethodPost, basePath+"/register", nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterProvider creates a provider account
func (c *Client) RegisterProvider(ctx context.Context, payload RegisterProviderPayload) (*RegisterResponse, error) {
	out := &RegisterResponse{}
	if err := c.doJSON(ctx, http.MethodPost, basePath+"/register", nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}
