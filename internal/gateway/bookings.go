package gateway

import (
	"context"
	"net/http"
)

// CreateBookingPayload requests a booking with a provider
type CreateBookingPayload struct {
	ProviderID     int     `json:"providerId"`
	Services       []int   `json:"services"`
	Date           string  `json:"date"`
	Notes          string  `json:"notes"`
	Address        string  `json:"address"`
	Location       string  `json:"location"`
	PriceAtBooking float64 `json:"price_at_booking"`
	PaymentStatus  string  `json:"payment_status"`
	CurrentStatus  string  `json:"current_status"`
}

// Booking is one booking record as returned by the gateway
type Booking struct {
	ID             int             `json:"id"`
	Date           string          `json:"date"`
	CurrentStatus  string          `json:"current_status"`
	PaymentStatus  string          `json:"payment_status"`
	Notes          string          `json:"notes"`
	Address        string          `json:"address"`
	Location       string          `json:"location"`
	PriceAtBooking float64         `json:"price_at_booking"`
	CreatedAt      string          `json:"createdAt"`
	Services       []ServiceDetail `json:"services"`
	Provider       *BookingProfile `json:"provider"`
	Customer       *BookingProfile `json:"customer"`
}

// BookingProfile is the party attached to a booking
type BookingProfile struct {
	ID            int     `json:"id"`
	FullName      string  `json:"full_name"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email"`
	BusinessName  string  `json:"business_name,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	ProfileType   string  `json:"profile_type"`
	Verified      bool    `json:"verified"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// CreateBookingResponse wraps the created booking
type CreateBookingResponse struct {
	Data Booking `json:"data"`
}

// CreateBooking books a provider for the authenticated customer
func (c *Client) CreateBooking(ctx context.Context, payload CreateBookingPayload) (*CreateBookingResponse, error) {
	out := &CreateBookingResponse{}
	if err := c.doJSON(ctx, http.MethodPost, basePath+"/book", nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyBookingsResponse lists the authenticated account's bookings
type MyBookingsResponse struct {
	Message  string    `json:"message"`
	Count    int       `json:"count"`
	Bookings []Booking `json:"bookings"`
}

// MyBookings lists bookings for the authenticated account
func (c *Client) MyBookings(ctx context.Context) (*MyBookingsResponse, error) {
	out := &MyBookingsResponse{}
	if err := c.doJSON(ctx, http.MethodGet, basePath+"/my-bookings", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReviewPayload reviews a completed booking
type CreateReviewPayload struct {
	Booking int    `json:"booking"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReviewResponse confirms a created review
type CreateReviewResponse struct {
	Message string `json:"message"`
	Data    *struct {
		ID      int    `json:"id"`
		Booking int    `json:"booking"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	} `json:"data,omitempty"`
}

// CreateReview submits a review for a booking
func (c *Client) CreateReview(ctx context.Context, payload CreateReviewPayload) (*CreateReviewResponse, error) {
	out := &CreateReviewResponse{}
	if err := c.doJSON(ctx, http.MethodPost, basePath+"/create-review", nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}
