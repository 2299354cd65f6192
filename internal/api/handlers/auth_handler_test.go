package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Login(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/custom-auth/login", r.URL.Path)
		w.Write([]byte(`{"message":"ok","jwt":"tok","user":{"id":1,"email":"a@b.com","role":"customer"}}`))
	})
	handler := NewAuthHandler(gw)

	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"identifier":"a@b.com","password":"pw"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jwt":"tok"`)
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	handler := NewAuthHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"identifier":"a@b.com"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_BadCredentialsPassThrough(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid identifier or password"}`))
	})
	handler := NewAuthHandler(gw)

	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"identifier":"a@b.com","password":"wrong"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid identifier or password")
}

func TestAuthHandler_RegisterCustomer(t *testing.T) {
	var upstream map[string]any
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/custom-auth/register", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&upstream))
		w.Write([]byte(`{"message":"registered"}`))
	})
	handler := NewAuthHandler(gw)

	body := `{"full_name":"Asha <script>","email":"asha@example.com","password":"Str0ng!pass",
		"phone_number":"9876543210","city":"Pune","pincode":"411001"}`
	rec := httptest.NewRecorder()
	handler.RegisterCustomer(rec, httptest.NewRequest("POST", "/api/auth/register/customer", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "customer", upstream["role"])
	// Angle brackets stripped before the payload leaves us.
	assert.Equal(t, "Asha script", upstream["full_name"])
}

func TestAuthHandler_RegisterCustomer_Validation(t *testing.T) {
	handler := NewAuthHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad email", `{"email":"not-an-email","password":"Str0ng!pass"}`, "invalid email"},
		{"weak password", `{"email":"a@b.com","password":"short"}`, "at least 8 characters"},
		{"bad phone", `{"email":"a@b.com","password":"Str0ng!pass","phone_number":"12345"}`, "invalid phone"},
		{"bad pincode", `{"email":"a@b.com","password":"Str0ng!pass","pincode":"1234"}`, "invalid pincode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.RegisterCustomer(rec, httptest.NewRequest("POST", "/x", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestAuthHandler_RegisterProvider(t *testing.T) {
	var upstream map[string]any
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&upstream))
		w.Write([]byte(`{"message":"registered","jwt":"tok","user":{"id":5,"email":"p@b.com","role":"provider"}}`))
	})
	handler := NewAuthHandler(gw)

	body := `{"full_name":"Ravi","email":"p@b.com","password":"Str0ng!pass","business_name":"Sunrise Solar",
		"experience_years":6,"services":[1,2]}`
	rec := httptest.NewRecorder()
	handler.RegisterProvider(rec, httptest.NewRequest("POST", "/api/auth/register/provider", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "provider", upstream["role"])
	profile := upstream["profile"].(map[string]any)
	assert.Equal(t, "Sunrise Solar", profile["business_name"])
	assert.Contains(t, rec.Body.String(), `"jwt":"tok"`)
}

func TestAuthHandler_RegisterProvider_RequiresBusinessName(t *testing.T) {
	handler := NewAuthHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	rec := httptest.NewRecorder()
	handler.RegisterProvider(rec, httptest.NewRequest("POST", "/x",
		strings.NewReader(`{"email":"p@b.com","password":"Str0ng!pass"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "business name is required")
}
