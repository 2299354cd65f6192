package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Asset is an uploaded file reference (logo, cover photo, certification)
type Asset struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ServiceTag is the compact service reference used on list items
type ServiceTag struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description json.RawMessage `json:"description,omitempty"`
}

// ProviderListItem is one row of the provider list endpoint
type ProviderListItem struct {
	ID              int          `json:"id"`
	FullName        string       `json:"full_name"`
	Email           string       `json:"email"`
	PhoneNumber     string       `json:"phone_number"`
	BusinessName    string       `json:"business_name"`
	Address         string       `json:"address"`
	City            string       `json:"city"`
	State           string       `json:"state"`
	Pincode         string       `json:"pincode"`
	Latitude        *float64     `json:"latitude"`
	Longitude       *float64     `json:"longitude"`
	ExperienceYears int          `json:"experience_years"`
	About           string       `json:"about"`
	ProfileType     string       `json:"profile_type"`
	AvgRating       *float64     `json:"avg_rating"`
	Certifications  []Asset      `json:"certifications"`
	Services        []ServiceTag `json:"services"`
	Logo            *Asset       `json:"logo"`
	CoverPhoto      *Asset       `json:"cover_photo"`
}

// ProvidersListMeta is the pagination metadata the gateway computes. The
// client never derives total or totalPages itself.
type ProvidersListMeta struct {
	Total       int    `json:"total"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
	SortBy      string `json:"sortBy,omitempty"`
	Order       string `json:"order,omitempty"`
}

// ProvidersListResponse is the provider list endpoint payload
type ProvidersListResponse struct {
	Meta ProvidersListMeta  `json:"meta"`
	Data []ProviderListItem `json:"data"`
}

// ProvidersQuery holds the provider list filter parameters. Zero values and
// nil pointers are omitted from the request, matching the URL contract.
type ProvidersQuery struct {
	Page          int
	PageSize      int
	Search        string
	City          string
	State         string
	MinExperience *int
	MaxExperience *int
	MinRating     *float64
	MaxRating     *float64
	Service       string
	SortBy        string
	Order         string
}

// Values encodes the query for the wire. Bounds pass through uncorrected;
// an inverted min/max range is the gateway's to resolve.
func (q ProvidersQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.City != "" {
		values.Set("city", q.City)
	}
	if q.State != "" {
		values.Set("state", q.State)
	}
	if q.MinExperience != nil {
		values.Set("min_experience", strconv.Itoa(*q.MinExperience))
	}
	if q.MaxExperience != nil {
		values.Set("max_experience", strconv.Itoa(*q.MaxExperience))
	}
	if q.MinRating != nil {
		values.Set("min_rating", formatRating(*q.MinRating))
	}
	if q.MaxRating != nil {
		values.Set("max_rating", formatRating(*q.MaxRating))
	}
	if q.Service != "" {
		values.Set("service", q.Service)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.Order != "" {
		values.Set("order", q.Order)
	}
	return values
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ListProviders fetches one page of providers matching the query
func (c *Client) ListProviders(ctx context.Context, query ProvidersQuery) (*ProvidersListResponse, error) {
	out := &ProvidersListResponse{}
	if err := c.doJSON(ctx, http.MethodGet, basePath+"/providers", query.Values(), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServiceDetail is the full service entry on a provider detail page
type ServiceDetail struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description json.RawMessage `json:"description"`
	Price       float64         `json:"price"`
}

// Review is one customer review on a provider detail page
type Review struct {
	ID      int    `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	User    *struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	CreatedAt string `json:"createdAt"`
}

// ProviderDetail is the full provider record
type ProviderDetail struct {
	ID              int             `json:"id"`
	FullName        string          `json:"full_name"`
	BusinessName    string          `json:"business_name"`
	PhoneNumber     string          `json:"phone_number"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Pincode         string          `json:"pincode"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	ExperienceYears int             `json:"experience_years"`
	About           string          `json:"about"`
	ProfileType     string          `json:"profile_type"`
	AverageRating   float64         `json:"average_rating"`
	TotalReviews    int             `json:"total_reviews"`
	Logo            *Asset          `json:"logo"`
	CoverPhoto      *Asset          `json:"cover_photo"`
	Certifications  []Asset         `json:"certifications"`
	PortfolioImages json.RawMessage `json:"portfolio_images"`
	Services        []ServiceDetail `json:"services"`
	Reviews         []Review        `json:"reviews"`
}

// ProviderDetailResponse wraps the detail payload
type ProviderDetailResponse struct {
	Data ProviderDetail `json:"data"`
}

// GetProvider fetches one provider by ID
func (c *Client) GetProvider(ctx context.Context, id string) (*ProviderDetailResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	out := &ProviderDetailResponse{}
	if err := c.doJSON(ctx, http.MethodGet, basePath+"/providers/"+url.PathEscape(id), nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
