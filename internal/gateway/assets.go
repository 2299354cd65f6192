package gateway

import (
	"regexp"
	"strings"
)

var absoluteURLRe = regexp.MustCompile(`(?i)^https?://`)

// AbsolutizeURL resolves an asset reference into a fully-qualified URL
// against baseURL. It accepts a plain string path, an Asset, or a decoded
// JSON object carrying a "url" field, and returns "" when no usable value
// is present. The literal strings "undefined" and "null" come out of the
// gateway's loosely-typed payloads and count as absent.
func AbsolutizeURL(baseURL string, value any) string {
	candidate := assetURL(value)
	if candidate == "" || candidate == "undefined" || candidate == "null" {
		return ""
	}
	if absoluteURLRe.MatchString(candidate) {
		return candidate
	}
	if baseURL == "" {
		return candidate
	}
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(candidate, "/") {
		candidate = "/" + candidate
	}
	return base + candidate
}

func assetURL(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Asset:
		return v.URL
	case *Asset:
		if v == nil {
			return ""
		}
		return v.URL
	case map[string]any:
		if u, ok := v["url"].(string); ok {
			return u
		}
		return ""
	default:
		return ""
	}
}
