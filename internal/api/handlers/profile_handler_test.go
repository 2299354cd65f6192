package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileHandler_RequiresAuth(t *testing.T) {
	handler := NewProfileHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway should not be called")
	}))

	rec := httptest.NewRecorder()
	handler.GetProfile(rec, httptest.NewRequest("GET", "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"profile":{"id":9,"full_name":"Asha","city":"Pune"}}`))
	})
	handler := NewProfileHandler(gw)

	rec := httptest.NewRecorder()
	handler.GetProfile(rec, authedRequest("GET", "/api/profile", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"full_name":"Asha"`)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Jaipur", r.MultipartForm.Value["city"][0])
		assert.Len(t, r.MultipartForm.File["logo"], 1)
		w.Write([]byte(`{"profile":{"id":9,"city":"Jaipur"}}`))
	})
	handler := NewProfileHandler(gw)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("city", "Jaipur")
	part, err := writer.CreateFormFile("logo", "logo.png")
	assert.NoError(t, err)
	part.Write([]byte("png-bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPatch, "/api/profile", &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"city":"Jaipur"`)
}
