package gateway

import (
	"context"
	"encoding/json"
	"net/http"
)

// Profile is the self-profile record. Customer and provider profiles share
// a shape; provider-only fields stay at their zero values for customers.
type Profile struct {
	ID              int      `json:"id"`
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	PhoneNumber     string   `json:"phone_number"`
	BusinessName    string   `json:"business_name,omitempty"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Pincode         string   `json:"pincode"`
	Latitude        float64  `json:"latitude,omitempty"`
	Longitude       float64  `json:"longitude,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	About           string   `json:"about,omitempty"`
	ProfileType     string   `json:"profile_type,omitempty"`
	Services        []int    `json:"services,omitempty"`
	Logo            string   `json:"logo,omitempty"`
	CoverPhoto      string   `json:"cover_photo,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
	PortfolioImages []string `json:"portfolio_images,omitempty"`
}

// decodeProfile handles both response shapes the gateway uses: a bare
// profile object and one wrapped in a "profile" field.
func decodeProfile(raw json.RawMessage) (*Profile, error) {
	var wrapper struct {
		Profile *Profile `json:"profile"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Profile != nil {
		return wrapper.Profile, nil
	}
	profile := &Profile{}
	if err := json.Unmarshal(raw, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile reads the authenticated account's profile
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, basePath+"/profile", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeProfile(raw)
}

// UpdateProfile patches the authenticated account's profile. Image uploads
// ride along as multipart file parts.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]string, files []FileUpload) (*Profile, error) {
	var raw json.RawMessage
	if err := c.doMultipart(ctx, http.MethodPatch, basePath+"/profile", fields, files, &raw); err != nil {
		return nil, err
	}
	return decodeProfile(raw)
}
