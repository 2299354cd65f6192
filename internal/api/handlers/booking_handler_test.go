package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set("Authorization", "Bearer test-token")
	return r
}

func TestBookingHandler_RequiresAuth(t *testing.T) {
	handler := NewBookingHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	rec := httptest.NewRecorder()
	handler.MyBookings(rec, httptest.NewRequest("GET", "/api/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	handler.CreateBooking(rec, httptest.NewRequest("POST", "/api/bookings", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	handler.CreateReview(rec, httptest.NewRequest("POST", "/api/reviews", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	var gotAuth string
	var upstream map[string]any
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/custom-auth/book", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&upstream))
		w.Write([]byte(`{"data":{"id":55,"current_status":"requested"}}`))
	})
	handler := NewBookingHandler(gw)

	body := `{"providerId":12,"services":[1,2],"date":"2026-09-01","current_status":"completed","payment_status":"paid"}`
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, authedRequest("POST", "/api/bookings", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer test-token", gotAuth)
	// Initial state is pinned regardless of what the client sent.
	assert.Equal(t, "pending", upstream["payment_status"])
	assert.Equal(t, "requested", upstream["current_status"])
}

func TestBookingHandler_CreateBooking_Validation(t *testing.T) {
	handler := NewBookingHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing provider", `{"services":[1],"date":"2026-09-01"}`, "providerId is required"},
		{"missing services", `{"providerId":1,"date":"2026-09-01"}`, "at least one service"},
		{"missing date", `{"providerId":1,"services":[1]}`, "date is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.CreateBooking(rec, authedRequest("POST", "/api/bookings", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestBookingHandler_MyBookings(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/custom-auth/my-bookings", r.URL.Path)
		w.Write([]byte(`{"message":"ok","count":1,"bookings":[{"id":3,"current_status":"completed"}]}`))
	})
	handler := NewBookingHandler(gw)

	rec := httptest.NewRecorder()
	handler.MyBookings(rec, authedRequest("GET", "/api/bookings", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestBookingHandler_CreateReview(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/custom-auth/create-review", r.URL.Path)
		w.Write([]byte(`{"message":"review created"}`))
	})
	handler := NewBookingHandler(gw)

	rec := httptest.NewRecorder()
	handler.CreateReview(rec, authedRequest("POST", "/api/reviews", `{"booking":3,"rating":5,"comment":"Great"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBookingHandler_CreateReview_RatingBounds(t *testing.T) {
	handler := NewBookingHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	for _, rating := range []string{"0", "6", "-1"} {
		rec := httptest.NewRecorder()
		handler.CreateReview(rec, authedRequest("POST", "/api/reviews", `{"booking":3,"rating":`+rating+`}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %s", rating)
	}
}
