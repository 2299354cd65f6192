package gateway

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"top-level message wins", `{"message":"bad input","error":"ignored"}`, "bad input"},
		{"error string", `{"error":"service down"}`, "service down"},
		{"nested error message", `{"error":{"message":"nested detail"}}`, "nested detail"},
		{"errors array string", `{"errors":["first problem","second"]}`, "first problem"},
		{"errors array object", `{"errors":[{"message":"field missing"}]}`, "field missing"},
		{"whitespace message skipped", `{"message":"  ","error":"fallback"}`, "fallback"},
		{"nothing recognizable", `{"detail":"unknown shape"}`, ""},
		{"not json", `<html>boom</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newHTTPError(http.StatusBadRequest, "Bad Request", []byte(tt.body), false)
			if tt.want == "" {
				assert.Equal(t, "Bad Request", err.Message)
			} else {
				assert.Equal(t, tt.want, err.Message)
			}
		})
	}
}

func TestSanitizeMessage_ProductionCategories(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusInternalServerError, "An internal server error occurred. Please try again later."},
		{http.StatusBadGateway, "An internal server error occurred. Please try again later."},
		{http.StatusUnauthorized, "Authentication required. Please log in."},
		{http.StatusForbidden, "You do not have permission to perform this action."},
		{http.StatusNotFound, "The requested resource was not found."},
		{http.StatusUnprocessableEntity, "Invalid request. Please check your input and try again."},
	}
	for _, tt := range tests {
		got := sanitizeMessage("SELECT failed at /srv/app/db.js:42", tt.status, true)
		assert.Equal(t, tt.want, got, "status %d", tt.status)
	}
}

func TestSanitizeMessage_DevelopmentPassesThrough(t *testing.T) {
	raw := "SELECT failed at /srv/app/db.js:42"
	assert.Equal(t, raw, sanitizeMessage(raw, http.StatusInternalServerError, false))
}

func TestUserMessage(t *testing.T) {
	httpErr := &HTTPError{Status: 403, Message: "You do not have permission to perform this action."}
	assert.Equal(t, httpErr.Message, UserMessage(httpErr, "Something went wrong"))

	blank := &HTTPError{Status: 502}
	assert.Equal(t, "Something went wrong (HTTP 502)", UserMessage(blank, "Something went wrong"))

	assert.Equal(t, "Something went wrong", UserMessage(errors.New("dial tcp: refused"), "Something went wrong"))
	assert.Equal(t, "Something went wrong", UserMessage(nil, "Something went wrong"))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, StatusOf(&HTTPError{Status: 404}))
	assert.Equal(t, 0, StatusOf(errors.New("not http")))
	assert.Equal(t, 0, StatusOf(nil))
}
