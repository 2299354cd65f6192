package discovery

import (
	"encoding/json"
	"strings"
)

// PlainText flattens a rich-text field into plain text. Upstream stores
// these as either a bare string or an array of blocks, each carrying
// children with text leaves; anything else flattens to "".
func PlainText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var blocks []struct {
		Children []struct {
			Text string `json:"text"`
		} `json:"children"`
	}
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}

	var parts []string
	for _, block := range blocks {
		var line strings.Builder
		for _, child := range block.Children {
			line.WriteString(child.Text)
		}
		if line.Len() > 0 {
			parts = append(parts, line.String())
		}
	}
	return strings.Join(parts, " ")
}

// StringList decodes a field that may be a JSON array of strings, an array
// of objects with url fields, or absent. Used for portfolio images.
func StringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var asStrings []string
	if err := json.Unmarshal(raw, &asStrings); err == nil {
		return asStrings
	}

	var asObjects []struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &asObjects); err != nil {
		return nil
	}
	out := make([]string, 0, len(asObjects))
	for _, obj := range asObjects {
		if obj.URL != "" {
			out = append(out, obj.URL)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
