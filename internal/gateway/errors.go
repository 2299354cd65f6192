package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// HTTPError is a non-2xx gateway response. Message has already been through
// extraction and, in production mode, sanitization.
type HTTPError struct {
	Status  int
	Message string
	Data    map[string]any
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Message)
}

func newHTTPError(status int, statusText string, body []byte, production bool) *HTTPError {
	var data map[string]any
	_ = json.Unmarshal(body, &data)

	message := extractMessage(data)
	if message == "" {
		message = statusText
	}
	if message == "" {
		message = "Request failed"
	}

	return &HTTPError{
		Status:  status,
		Message: sanitizeMessage(message, status, production),
		Data:    data,
	}
}

// extractMessage walks the recognized error payload shapes in priority
// order: message, error (string or {message}), errors[0] (string or {message}).
func extractMessage(data map[string]any) string {
	if data == nil {
		return ""
	}
	if msg, ok := data["message"].(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	switch errField := data["error"].(type) {
	case string:
		if strings.TrimSpace(errField) != "" {
			return errField
		}
	case map[string]any:
		if msg, ok := errField["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if list, ok := data["errors"].([]any); ok && len(list) > 0 {
		switch first := list[0].(type) {
		case string:
			if strings.TrimSpace(first) != "" {
				return first
			}
		case map[string]any:
			if msg, ok := first["message"].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
		}
	}
	return ""
}

var (
	stackLineRe = regexp.MustCompile(`at\s+.*`)
	filePathRe  = regexp.MustCompile(`file:///.*`)
)

// sanitizeMessage replaces backend detail with a fixed category message per
// status class when running in production mode.
func sanitizeMessage(message string, status int, production bool) string {
	if !production {
		return message
	}
	switch {
	case status >= 500:
		return "An internal server error occurred. Please try again later."
	case status == http.StatusUnauthorized:
		return "Authentication required. Please log in."
	case status == http.StatusForbidden:
		return "You do not have permission to perform this action."
	case status == http.StatusNotFound:
		return "The requested resource was not found."
	case status >= 400:
		return "Invalid request. Please check your input and try again."
	}

	// Strip stack traces and file paths from anything else that leaks through.
	firstLine := strings.SplitN(message, "\n", 2)[0]
	firstLine = stackLineRe.ReplaceAllString(firstLine, "")
	firstLine = filePathRe.ReplaceAllString(firstLine, "")
	return strings.TrimSpace(firstLine)
}

// UserMessage resolves a user-presentable message for any error coming out of
// a gateway call, falling back when nothing better is available.
func UserMessage(err error, fallback string) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return fmt.Sprintf("%s (HTTP %d)", fallback, httpErr.Status)
	}
	return fallback
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not a
// gateway response error.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
