package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsolutizeURL(t *testing.T) {
	base := "https://cms.example.com"

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil value", nil, ""},
		{"empty string", "", ""},
		{"literal undefined", "undefined", ""},
		{"literal null", "null", ""},
		{"relative path", "/uploads/logo.png", base + "/uploads/logo.png"},
		{"relative without slash", "uploads/logo.png", base + "/uploads/logo.png"},
		{"absolute http", "http://cdn.example.com/a.png", "http://cdn.example.com/a.png"},
		{"absolute https uppercase", "HTTPS://cdn.example.com/a.png", "HTTPS://cdn.example.com/a.png"},
		{"asset value", Asset{URL: "/uploads/cover.jpg"}, base + "/uploads/cover.jpg"},
		{"asset pointer", &Asset{URL: "/uploads/cover.jpg"}, base + "/uploads/cover.jpg"},
		{"nil asset pointer", (*Asset)(nil), ""},
		{"map with url", map[string]any{"url": "/uploads/x.png"}, base + "/uploads/x.png"},
		{"map without url", map[string]any{"name": "x.png"}, ""},
		{"unsupported type", 42, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsolutizeURL(base, tt.value))
		})
	}
}

func TestAbsolutizeURL_BaseHandling(t *testing.T) {
	// Trailing slash on the base never doubles the separator.
	assert.Equal(t, "https://cms.example.com/uploads/a.png",
		AbsolutizeURL("https://cms.example.com/", "/uploads/a.png"))

	// No base configured: the candidate passes through unchanged.
	assert.Equal(t, "/uploads/a.png", AbsolutizeURL("", "/uploads/a.png"))
}
